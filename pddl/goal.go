package pddl

import "github.com/viant/bpmnplan/bpmn"

// encodeGoals emits one goal_<name> action per End Event, lifting its
// predicate into the shared (done) sentinel.
func (e *Encoder) encodeGoals() []string {
	var out []string
	for _, n := range e.g.NodesOfKind(bpmn.EndEvent) {
		name := e.ctx.UniqueActionName(sanitize("goal_" + displayName(n)))
		out = append(out, action(name, "(and ("+sanitize(n.ID)+"))", "(done)"))
	}
	return out
}
