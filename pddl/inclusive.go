package pddl

import (
	"strconv"
	"strings"

	"github.com/viant/bpmnplan/bpmn"
)

// encodeInclusiveDiverge emits, for every diverging inclusive gateway, the
// counter-arithmetic pair (inclusive_increase_<gw>, inclusive_decrease_<gw>)
// followed by the diverge action itself: a conjunction of k independent
// oneof branches, each either firing the branch and bumping the counter
// or doing nothing.
func (e *Encoder) encodeInclusiveDiverge() []string {
	var out []string
	for _, n := range e.g.Nodes {
		if n.Kind != bpmn.InclusiveGateway {
			continue
		}
		if !(len(e.g.Incoming[n.ID]) == 1 && len(e.g.Outgoing[n.ID]) > 1) {
			continue
		}
		gw := sanitize(n.ID)
		branches := e.g.Outgoing[n.ID]
		k := len(branches)

		out = append(out, counterActions(gw, k)...)

		var b strings.Builder
		b.WriteString("  (:action inclusive_diverge_" + gw + "\n")
		b.WriteString("    :precondition (and (" + gw + "))\n")
		b.WriteString("    :effect (and\n")
		for _, tgt := range branches {
			tgtPred := sanitize(tgt)
			b.WriteString("      (oneof\n")
			b.WriteString("        (and (" + tgtPred + ") (increase_" + gw + ") (at_least_one_branch_" + gw + ") (not (" + gw + ")))\n")
			b.WriteString("        (and)\n")
			b.WriteString("      )\n")
		}
		b.WriteString("    )\n")
		b.WriteString("  )\n\n")
		out = append(out, b.String())
	}
	return out
}

// counterActions emits the increase/decrease actions shared by a
// diverging inclusive gateway's k branches. Increase walks the counter
// levels descending, decrease ascending, so a single application never
// re-triggers its own conditional effect.
func counterActions(gw string, k int) []string {
	var inc strings.Builder
	inc.WriteString("  (:action inclusive_increase_" + gw + "\n")
	inc.WriteString("    :precondition (and (increase_" + gw + "))\n")
	inc.WriteString("    :effect (and\n")
	inc.WriteString("      (not (increase_" + gw + "))\n")
	for i := k - 1; i >= 0; i-- {
		inc.WriteString(levelTransition(gw, i, i+1))
	}
	inc.WriteString("    )\n")
	inc.WriteString("  )\n\n")

	var dec strings.Builder
	dec.WriteString("  (:action inclusive_decrease_" + gw + "\n")
	dec.WriteString("    :precondition (and (decrease_" + gw + "))\n")
	dec.WriteString("    :effect (and\n")
	dec.WriteString("      (not (decrease_" + gw + "))\n")
	for i := 1; i <= k; i++ {
		dec.WriteString(levelTransition(gw, i, i-1))
	}
	dec.WriteString("    )\n")
	dec.WriteString("  )\n\n")

	return []string{inc.String(), dec.String()}
}

func levelTransition(gw string, from, to int) string {
	fromP := "inclusive_counter_" + gw + "_" + strconv.Itoa(from)
	toP := "inclusive_counter_" + gw + "_" + strconv.Itoa(to)
	return "      (when (" + fromP + ") (and (not (" + fromP + ")) (" + toP + ")))\n"
}

// isOptimizedInclusive reports whether inclusive gateway id already gets an
// action from encodeInclusiveDiverge or encodeInclusiveConverge, so
// encodeGateways must not also emit a generic fallback action for it. A
// pure diverge (one incoming, many outgoing) is always optimized — the
// diverge action never needs the gateway's converging partner. A pure
// converge (many incoming, one outgoing) is optimized only when
// structure.PairInclusiveGateways actually found it a diverging partner;
// left unpaired, or both diverging and converging at once, it has no
// counter/marker predicates to reference and must fall back to the
// generic gateway encoding in gateways.go.
func (e *Encoder) isOptimizedInclusive(id string) bool {
	incoming, outgoing := len(e.g.Incoming[id]), len(e.g.Outgoing[id])
	switch {
	case incoming == 1 && outgoing > 1:
		return true
	case incoming > 1 && outgoing == 1:
		_, paired := e.res.InclusivePairs[id]
		return paired
	default:
		return false
	}
}

// encodeInclusiveConverge emits, for every converging inclusive gateway
// with exactly one outgoing edge that PairInclusiveGateways paired with a
// diverging partner, the converge action. Its precondition requires that
// partner to have fully drained (counter level 0) with at least one
// branch having fired. An unpaired converging gateway is left to
// encodeGateways' generic fallback instead: its diverging partner's
// counter and marker predicates were never declared for it, so the
// optimized precondition/effect below would reference undeclared
// predicates.
func (e *Encoder) encodeInclusiveConverge() []string {
	var out []string
	for _, n := range e.g.Nodes {
		if n.Kind != bpmn.InclusiveGateway {
			continue
		}
		if len(e.g.Incoming[n.ID]) <= 1 {
			continue
		}
		nexts := e.g.Outgoing[n.ID]
		if len(nexts) != 1 {
			continue
		}
		divergeID, paired := e.res.InclusivePairs[n.ID]
		if !paired {
			continue
		}
		gw := sanitize(n.ID)
		nextPred := sanitize(nexts[0])
		divergeGW := sanitize(divergeID)

		armEffect := e.arming.consumeArmingEffect(nexts)

		var b strings.Builder
		b.WriteString("  (:action inclusive_converge_" + gw + "\n")
		b.WriteString("    :precondition (and (" + gw + ") (at_least_one_branch_" + divergeGW + ") (inclusive_counter_" + divergeGW + "_0))\n")
		b.WriteString("    :effect (and (" + nextPred + ") (not (" + gw + ")) (not (at_least_one_branch_" + divergeGW + "))" + armEffect + ")\n")
		b.WriteString("  )\n\n")
		out = append(out, b.String())
	}
	return out
}
