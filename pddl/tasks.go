package pddl

import (
	"sort"
	"strings"

	"github.com/viant/bpmnplan/bpmn"
)

// encodeTasks emits one or more actions per task node, covering the three
// shapes spec.md §4.4 item 8 distinguishes: merged sources (one action
// per incoming edge), controlled-predecessor (an Exclusive or Parallel
// Gateway immediately upstream), and the general predecessor-inherited
// case.
func (e *Encoder) encodeTasks() []string {
	var out []string
	for _, n := range e.g.Nodes {
		if !n.Kind.IsTask() {
			continue
		}
		out = append(out, e.encodeTask(n)...)
	}
	return out
}

// outgoingEffects builds the effect literal for each outgoing target,
// widening an Event target to also set an immediately following gateway.
func (e *Encoder) outgoingEffects(targets []string) []string {
	var out []string
	for _, tgt := range targets {
		parts := []string{"(" + sanitize(tgt) + ")"}
		if tgtNode := e.g.NodeByID(tgt); tgtNode != nil && tgtNode.Kind.IsEvent() {
			seen := map[string]bool{parts[0]: true}
			for _, next := range e.g.Outgoing[tgt] {
				if nextNode := e.g.NodeByID(next); nextNode != nil && nextNode.Kind.IsGateway() {
					lit := "(" + sanitize(next) + ")"
					if !seen[lit] {
						seen[lit] = true
						parts = append(parts, lit)
					}
				}
			}
		}
		if len(parts) == 1 {
			out = append(out, parts[0])
		} else {
			out = append(out, "(and "+strings.Join(parts, " ")+")")
		}
	}
	return out
}

// isPureDivergingInclusive reports whether src is an Inclusive gateway with
// exactly one incoming edge and more than one outgoing edge — the only
// shape that gets the diverge/counter actions in inclusive.go
// (declarePredicates declares the counter and marker predicates for every
// diverging, non-converging Inclusive gateway). A task downstream of an Inclusive gateway that also
// converges (both diverging and converging, or an unpaired converge) must
// not be treated as a diverge successor: its branch marker and
// inclusive_counter_*_0 predicates were never declared.
func isPureDivergingInclusive(g *bpmn.Graph, src *bpmn.Node) bool {
	return src.Kind == bpmn.InclusiveGateway &&
		len(g.Incoming[src.ID]) == 1 &&
		len(g.Outgoing[src.ID]) > 1
}

func hasOutgoingMessageFlow(g *bpmn.Graph, id string) bool {
	for _, edge := range g.EdgesOfKind(bpmn.MessageFlowEdge) {
		if edge.SourceID == id {
			return true
		}
	}
	return false
}

func (e *Encoder) decreaseEffects(taskID string) []string {
	var out []string
	for _, tgt := range e.g.Outgoing[taskID] {
		tgtNode := e.g.NodeByID(tgt)
		if tgtNode == nil || tgtNode.Kind != bpmn.InclusiveGateway || len(e.g.Incoming[tgt]) <= 1 {
			continue
		}
		divergeID, ok := e.res.InclusivePairs[tgt]
		if !ok {
			continue
		}
		out = append(out, "(decrease_"+sanitize(divergeID)+")")
	}
	return out
}

func (e *Encoder) encodeTask(n *bpmn.Node) []string {
	incoming := e.g.Incoming[n.ID]

	mergedSources := map[string]bool{}
	for _, src := range incoming {
		mergedSources[src] = true
	}

	outgoing := e.g.Outgoing[n.ID]
	effects := e.outgoingEffects(outgoing)
	decreaseEffects := e.decreaseEffects(n.ID)
	armEffect := e.arming.consumeArmingEffect(outgoing)
	hasMsgFlow := hasOutgoingMessageFlow(e.g, n.ID)

	if len(mergedSources) > 1 {
		return e.encodeMergedSourcesTask(n, incoming, effects, decreaseEffects, armEffect, hasMsgFlow)
	}
	return e.encodeSingleTask(n, incoming, effects, decreaseEffects, armEffect, hasMsgFlow)
}

func (e *Encoder) encodeMergedSourcesTask(n *bpmn.Node, incoming []string, effects, decreaseEffects []string, armEffect string, hasMsgFlow bool) []string {
	var out []string
	taskPred := sanitize(n.ID)

	for _, srcID := range incoming {
		src := e.g.NodeByID(srcID)
		if src == nil {
			continue
		}
		base := sanitize(displayName(n) + "_from_" + sanitize(src.ID))
		name := e.ctx.UniqueActionName(base)

		standard := map[string]bool{}
		switch {
		case src.Kind == bpmn.ExclusiveGateway:
			standard["("+taskPred+")"] = true
		default:
			standard["("+sanitize(src.ID)+")"] = true
		}

		var branchMarker string
		if isPureDivergingInclusive(e.g, src) {
			branchMarker = branchStartedPredicate(sanitize(src.ID), taskPred)
		}

		var preconds []string
		for p := range standard {
			preconds = append(preconds, p)
		}
		sort.Strings(preconds)
		precondition := "(and " + strings.Join(preconds, " ")
		if branchMarker != "" {
			precondition += " (not (" + branchMarker + "))"
		}
		precondition += ")"

		var b strings.Builder
		b.WriteString(taskEffectBody(effects, armEffect, hasMsgFlow))
		for _, p := range preconds {
			b.WriteString(" (not " + p + ")")
		}
		if branchMarker != "" {
			b.WriteString(" (" + branchMarker + ")")
		}
		for _, d := range decreaseEffects {
			b.WriteString(" " + d)
		}

		out = append(out, action(name, precondition, "(and"+b.String()+")"))
	}
	return out
}

func (e *Encoder) encodeSingleTask(n *bpmn.Node, incoming []string, effects, decreaseEffects []string, armEffect string, hasMsgFlow bool) []string {
	taskPred := sanitize(n.ID)

	hasControlGateway := false
	for _, srcID := range incoming {
		src := e.g.NodeByID(srcID)
		if src != nil && (src.Kind == bpmn.ExclusiveGateway || src.Kind == bpmn.ParallelGateway) {
			hasControlGateway = true
			break
		}
	}

	var standard map[string]bool
	if hasControlGateway {
		standard = map[string]bool{"(" + taskPred + ")": true}
	} else {
		standard = e.immediatePreconditions(n.ID, incoming)
	}

	var branchNotPre, branchEffects []string
	var inclusiveDivergeSrc *bpmn.Node
	for _, srcID := range incoming {
		src := e.g.NodeByID(srcID)
		if src == nil || !isPureDivergingInclusive(e.g, src) {
			continue
		}
		branch := branchStartedPredicate(sanitize(src.ID), taskPred)
		branchNotPre = append(branchNotPre, "(not ("+branch+"))")
		branchEffects = append(branchEffects, "("+branch+")")
		if inclusiveDivergeSrc == nil {
			inclusiveDivergeSrc = src
		}
	}

	// drop the task's own predicate if a branch marker already shares its name
	for _, be := range branchEffects {
		trimmed := strings.Trim(be, "()")
		delete(standard, "("+trimmed+")")
	}

	base := sanitize(displayName(n))
	name := e.ctx.UniqueActionName(base)

	var extraPre []string
	if inclusiveDivergeSrc != nil {
		extraPre = append(extraPre, "(not (inclusive_counter_"+sanitize(inclusiveDivergeSrc.ID)+"_0))")
	}

	var allPre []string
	for p := range standard {
		allPre = append(allPre, p)
	}
	allPre = append(allPre, branchNotPre...)
	allPre = append(allPre, extraPre...)
	sort.Strings(allPre)
	if len(allPre) == 0 {
		if starts := e.g.NodesOfKind(bpmn.StartEvent); len(starts) == 1 {
			allPre = []string{"(" + sanitize(starts[0].ID) + ")"}
		}
	}
	precondition := "(and " + strings.Join(allPre, " ") + ")"

	var b strings.Builder
	b.WriteString(taskEffectBody(effects, armEffect, hasMsgFlow))

	var standardSorted []string
	for p := range standard {
		standardSorted = append(standardSorted, p)
	}
	sort.Strings(standardSorted)
	for _, p := range standardSorted {
		b.WriteString(" (not " + p + ")")
	}
	if inclusiveDivergeSrc != nil {
		for _, be := range branchEffects {
			b.WriteString(" " + be)
		}
	}
	for _, d := range decreaseEffects {
		b.WriteString(" " + d)
	}

	return []string{action(name, precondition, "(and"+b.String()+")")}
}

// immediatePreconditions mirrors how a task inherits its precondition set
// from each predecessor: an Exclusive Gateway predecessor hands back the
// task's own predicate (the gateway already toggled it), a branching
// Inclusive Gateway predecessor also contributes the task's own predicate
// (its branch marker is added by encodeSingleTask, not here), any other
// Event or Gateway predecessor contributes
// its own predicate, and a Task predecessor contributes its own predicate.
func (e *Encoder) immediatePreconditions(taskID string, incoming []string) map[string]bool {
	taskPred := sanitize(taskID)
	out := map[string]bool{}
	for _, srcID := range incoming {
		src := e.g.NodeByID(srcID)
		if src == nil {
			continue
		}
		switch {
		case src.Kind == bpmn.ExclusiveGateway,
			isPureDivergingInclusive(e.g, src):
			out["("+taskPred+")"] = true
		default:
			out["("+sanitize(src.ID)+")"] = true
		}
	}
	return out
}

func taskEffectBody(effects []string, armEffect string, hasMsgFlow bool) string {
	var b strings.Builder
	switch len(effects) {
	case 0:
	case 1:
		b.WriteString(" " + effects[0] + armEffect)
	default:
		unique := dedupSorted(effects)
		if hasMsgFlow {
			b.WriteString(" " + strings.Join(unique, " ") + armEffect)
		} else if len(unique) == 1 {
			b.WriteString(" " + unique[0] + armEffect)
		} else {
			b.WriteString(" (oneof " + strings.Join(unique, " ") + armEffect + ")")
		}
	}
	return b.String()
}

func dedupSorted(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	sort.Strings(out)
	return out
}
