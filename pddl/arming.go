package pddl

import (
	"strconv"

	"github.com/viant/bpmnplan/bpmn"
)

// armingTokens tracks, per converging parallel gateway, how many of its
// `n` arming tokens (one per incoming edge) have been assigned so far.
// Assignment happens in action-emission order, which matches the
// ascending-by-index requirement from spec.md §5: every emission site
// that produces an effect feeding into a converging parallel gateway
// claims the next unused index.
type armingTokens struct {
	incomingCount map[string]int
	next          map[string]int
}

func newArmingTokens(g *bpmn.Graph) *armingTokens {
	a := &armingTokens{incomingCount: map[string]int{}, next: map[string]int{}}
	for _, n := range g.NodesOfKind(bpmn.ParallelGateway) {
		if count := len(g.Incoming[n.ID]); count > 1 {
			a.incomingCount[n.ID] = count
		}
	}
	return a
}

// armingPredicateName returns the sanitized predicate name for the i-th
// arming token of converging parallel gateway gwID: `<gw>_precondition_<i>`.
func armingPredicateName(gwID string, i int) string {
	return bpmn.Sanitize(gwID) + "_precondition_" + strconv.Itoa(i)
}

// consumeArmingEffect inspects targets (an action's outgoing edge
// targets) for the first one that names a converging parallel gateway
// with unassigned capacity, claims the next index, and returns the PDDL
// effect literal to append. It returns "" if none of targets is such a
// gateway, or its capacity is already fully claimed.
func (a *armingTokens) consumeArmingEffect(targets []string) string {
	for _, tgt := range targets {
		count, ok := a.incomingCount[tgt]
		if !ok {
			continue
		}
		idx := a.next[tgt]
		if idx >= count {
			continue
		}
		a.next[tgt] = idx + 1
		return " (" + armingPredicateName(tgt, idx) + ")"
	}
	return ""
}
