package pddl

import (
	"strings"

	"github.com/viant/bpmnplan/bpmn"
)

// encodeStartActions emits the process-start action: a single start_<name>
// action for one Start Event, or a start_process action with a oneof
// effect over every Start Event's predicate when there are several.
func (e *Encoder) encodeStartActions() []string {
	starts := e.g.NodesOfKind(bpmn.StartEvent)
	switch len(starts) {
	case 0:
		return nil
	case 1:
		s := starts[0]
		startPred := sanitize(s.ID)
		name := e.ctx.UniqueActionName(sanitize("start_" + displayName(s)))
		return []string{
			action(name,
				"(and (not (started)) (not ("+startPred+")))",
				"(and ("+startPred+") (started))"),
		}
	default:
		var preds []string
		for _, s := range starts {
			preds = append(preds, sanitize(s.ID))
		}
		var notClauses strings.Builder
		var oneofClauses strings.Builder
		for _, p := range preds {
			notClauses.WriteString(" (not (" + p + "))")
			oneofClauses.WriteString(" (" + p + ")")
		}
		precondition := "(and (not (started))" + notClauses.String() + ")"
		effect := "(and (oneof" + oneofClauses.String() + ") (started))"
		return []string{action("start_process", precondition, effect)}
	}
}

// encodeGatewayActivation bridges a Start Event token to every gateway
// whose sole predecessor is that Start Event.
func (e *Encoder) encodeGatewayActivation() []string {
	var out []string
	for _, n := range e.g.Nodes {
		if !n.Kind.IsGateway() {
			continue
		}
		inc := e.g.Incoming[n.ID]
		if len(inc) != 1 {
			continue
		}
		src := e.g.NodeByID(inc[0])
		if src == nil || src.Kind != bpmn.StartEvent {
			continue
		}
		startPred := sanitize(src.ID)
		gwPred := sanitize(n.ID)
		name := e.ctx.UniqueActionName("activate_" + gwPred)
		out = append(out, action(name,
			"(and ("+startPred+"))",
			"(and ("+gwPred+") (not("+startPred+")))"))
	}
	return out
}

func displayName(n *bpmn.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

func action(name, precondition, effect string) string {
	var b strings.Builder
	b.WriteString("  (:action " + name + "\n")
	b.WriteString("    :precondition " + precondition + "\n")
	b.WriteString("    :effect " + effect + "\n")
	b.WriteString("  )\n\n")
	return b.String()
}
