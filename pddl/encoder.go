package pddl

import (
	"strconv"
	"strings"

	"github.com/viant/bpmnplan/bpmn"
	"github.com/viant/bpmnplan/structure"
)

// Encoder lowers a normalized, structurally analyzed BPMN graph into a
// PDDL domain. It is single-use: create one per translation.
type Encoder struct {
	g   *bpmn.Graph
	res *structure.Result
	ctx *Context

	predicates *predicateTable
	arming     *armingTokens
}

// NewEncoder returns an Encoder for graph g with structural analysis
// result res.
func NewEncoder(g *bpmn.Graph, res *structure.Result) *Encoder {
	return &Encoder{
		g:          g,
		res:        res,
		ctx:        NewContext(),
		predicates: newPredicateTable(),
		arming:     newArmingTokens(g),
	}
}

// EncodeDomain emits the full PDDL domain text and returns it alongside
// the declared predicate table (consumed by the problem generator).
func (e *Encoder) EncodeDomain(domainName string) (string, *predicateTable, error) {
	e.declarePredicates()

	var actions []string
	actions = append(actions, e.encodeStartActions()...)
	actions = append(actions, e.encodeGatewayActivation()...)
	actions = append(actions, e.encodeInclusiveDiverge()...)
	actions = append(actions, e.encodeInclusiveConverge()...)
	actions = append(actions, e.encodeGateways()...)
	actions = append(actions, e.encodeTasks()...)
	actions = append(actions, e.encodeGoals()...)

	var b strings.Builder
	b.WriteString("(define (domain " + domainName + ")\n")
	b.WriteString("  (:requirements :strips :typing)\n")
	b.WriteString("  (:types task event gateway)\n\n")
	b.WriteString("  (:predicates\n")
	for _, p := range e.predicates.order {
		b.WriteString("    (" + p + ")\n")
	}
	b.WriteString("  )\n\n")
	for _, a := range actions {
		b.WriteString(a)
	}
	b.WriteString(")")

	return b.String(), e.predicates, nil
}

func classOf(k bpmn.Kind) ObjectClass {
	switch {
	case k.IsGateway():
		return ClassGateway
	case k.IsEvent():
		return ClassEvent
	case k.IsTask():
		return ClassTask
	default:
		return ClassMarker
	}
}

// declarePredicates builds the :predicates section in the same order the
// teacher's generic-node-plus-gateway-extras passes would: node
// predicates and exclusive-gateway branch pre-declarations first, then
// inclusive-gateway machinery, then parallel arming tokens, then the two
// sentinels.
func (e *Encoder) declarePredicates() {
	for _, n := range e.g.Nodes {
		if n.Kind.IsContainer() {
			continue
		}
		e.predicates.declare(sanitize(n.ID), classOf(n.Kind))
		if n.Kind == bpmn.ExclusiveGateway {
			for _, tgt := range e.g.Outgoing[n.ID] {
				if tgtNode := e.g.NodeByID(tgt); tgtNode != nil {
					e.predicates.declare(sanitize(tgt), classOf(tgtNode.Kind))
				}
			}
		}
	}

	for _, n := range e.g.NodesOfKind(bpmn.InclusiveGateway) {
		if !structure.IsDiverging(e.g, n.ID) || structure.IsConverging(e.g, n.ID) {
			continue
		}
		gw := sanitize(n.ID)
		branches := e.g.Outgoing[n.ID]
		for i := 0; i <= len(branches); i++ {
			e.predicates.declare(counterPredicate(gw, i), ClassMarker)
		}
		e.predicates.declare("increase_"+gw, ClassMarker)
		e.predicates.declare("decrease_"+gw, ClassMarker)
		e.predicates.declare("at_least_one_branch_"+gw, ClassMarker)
		for _, tgt := range branches {
			e.predicates.declare(branchStartedPredicate(gw, sanitize(tgt)), ClassMarker)
		}
	}

	for _, n := range e.g.NodesOfKind(bpmn.ParallelGateway) {
		count, ok := e.arming.incomingCount[n.ID]
		if !ok {
			continue
		}
		for i := 0; i < count; i++ {
			e.predicates.declare(armingPredicateName(n.ID, i), ClassMarker)
		}
	}

	e.predicates.declare("done", ClassMarker)
	e.predicates.declare("started", ClassMarker)
}

func sanitize(id string) string { return bpmn.Sanitize(id) }

func counterPredicate(gw string, level int) string {
	return "inclusive_counter_" + gw + "_" + strconv.Itoa(level)
}

func branchStartedPredicate(gw, target string) string {
	return "branch_started_" + sanitize(gw+"_"+target)
}
