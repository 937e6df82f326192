package pddl

import (
	"strings"

	"github.com/viant/bpmnplan/bpmn"
	"github.com/viant/bpmnplan/structure"
)

// encodeGateways emits one action per Exclusive, Parallel and Event-Based
// gateway, plus a generic fallback action for any Inclusive gateway that
// inclusive.go's optimized diverge/converge encoding does not cover: an
// unpaired converging gateway (structure.PairInclusiveGateways already
// recorded an UnpairedGateway warning for it) or a gateway that is both
// diverging and converging. The fallback block at the bottom of this
// function only ever fires for such an Inclusive gateway — a Parallel
// gateway that is both diverging and converging still matches the join
// branch above since that branch does not require purity, and Exclusive
// and Event-Based are always handled by their own branch.
func (e *Encoder) encodeGateways() []string {
	var out []string
	for _, n := range e.g.Nodes {
		if !n.Kind.IsGateway() {
			continue
		}
		if n.Kind == bpmn.InclusiveGateway && e.isOptimizedInclusive(n.ID) {
			continue
		}
		targets := e.g.Outgoing[n.ID]
		gwPred := sanitize(n.ID)
		precondition := "(" + gwPred + ")"

		var prefix string
		switch n.Kind {
		case bpmn.ExclusiveGateway:
			prefix = "exclusive"
		case bpmn.ParallelGateway:
			prefix = "parallel"
		case bpmn.EventBasedGateway:
			prefix = "event"
		case bpmn.InclusiveGateway:
			prefix = "inclusive"
		default:
			prefix = "gateway"
		}
		name := e.ctx.UniqueActionName(sanitize(prefix + "_" + displayName(n)))

		if n.Kind == bpmn.ParallelGateway && !structure.IsConverging(e.g, n.ID) {
			armEffect := e.arming.consumeArmingEffect(targets)
			var effects []string
			for _, tgt := range targets {
				effects = append(effects, "("+sanitize(tgt)+")")
			}
			out = append(out, action(name,
				"(and "+precondition+")",
				"(and "+strings.Join(effects, " ")+" (not "+precondition+")"+armEffect+")"))
			continue
		}

		if n.Kind == bpmn.ParallelGateway {
			count := e.arming.incomingCount[n.ID]
			preconds := []string{precondition}
			for i := 0; i < count; i++ {
				preconds = append(preconds, "("+armingPredicateName(n.ID, i)+")")
			}
			var effects []string
			for _, tgt := range targets {
				effects = append(effects, "("+sanitize(tgt)+")")
			}
			armEffect := e.arming.consumeArmingEffect(targets)
			out = append(out, action(name,
				"(and "+strings.Join(preconds, " ")+")",
				"(and "+strings.Join(effects, " ")+" (not "+precondition+")"+armEffect+")"))
			continue
		}

		if n.Kind == bpmn.ExclusiveGateway || n.Kind == bpmn.EventBasedGateway {
			var oneofEffects []string
			for _, tgt := range targets {
				preds := []string{"(" + sanitize(tgt) + ")"}
				if n.Kind == bpmn.EventBasedGateway {
					for _, next := range e.g.Outgoing[tgt] {
						if nextNode := e.g.NodeByID(next); nextNode != nil && nextNode.Kind.IsGateway() {
							preds = append(preds, "("+sanitize(next)+")")
						}
					}
				}
				if len(preds) == 1 {
					oneofEffects = append(oneofEffects, preds[0])
				} else {
					oneofEffects = append(oneofEffects, "(and "+strings.Join(preds, " ")+")")
				}
			}
			armEffect := e.arming.consumeArmingEffect(targets)
			var effectBody string
			switch len(oneofEffects) {
			case 0:
				effectBody = ""
			case 1:
				effectBody = " " + oneofEffects[0]
			default:
				effectBody = " (oneof " + strings.Join(oneofEffects, " ") + ")"
			}
			out = append(out, action(name,
				"(and "+precondition+")",
				"(and"+effectBody+" (not "+precondition+")"+armEffect+")"))
			continue
		}

		// Fallback for any other gateway shape (or a diverging-and-converging
		// gateway the corpus does not expect to see at all).
		armEffect := e.arming.consumeArmingEffect(targets)
		switch len(targets) {
		case 1:
			out = append(out, action(name,
				"(and "+precondition+")",
				"(and ("+sanitize(targets[0])+") (not "+precondition+")"+armEffect+")"))
		default:
			var effects []string
			for _, tgt := range targets {
				effects = append(effects, "("+sanitize(tgt)+")")
			}
			out = append(out, action(name,
				"(and "+precondition+")",
				"(and "+strings.Join(effects, " ")+" (not "+precondition+")"+armEffect+")"))
		}
	}
	return out
}

