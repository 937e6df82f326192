package pddl

import (
	"strconv"
	"strings"

	"github.com/viant/bpmnplan/bpmn"
)

// Problem is one generated PDDL problem file: a name (without extension)
// and its full text.
type Problem struct {
	Name string
	Text string
}

// GenerateProblems emits p0 (goal-only, no Start Event fact) plus one
// p0<i> per Start Event, each seeding that Start Event's predicate and
// every diverging inclusive gateway's zero-level counter fact.
func GenerateProblems(domainName string, predicates *predicateTable, g *bpmn.Graph) []Problem {
	counters := zeroLevelCounters(predicates)
	objects := objectSections(predicates)

	var problems []Problem
	problems = append(problems, Problem{
		Name: "p0",
		Text: renderProblem(domainName, "p0", objects, counters, nil),
	})

	for i, start := range g.NodesOfKind(bpmn.StartEvent) {
		name := "p0" + strconv.Itoa(i+1)
		init := append([]string{"(" + sanitize(start.ID) + ")"}, counters...)
		problems = append(problems, Problem{
			Name: name,
			Text: renderProblem(domainName, name, objects, init, nil),
		})
	}
	return problems
}

func zeroLevelCounters(predicates *predicateTable) []string {
	var out []string
	for _, p := range predicates.order {
		if strings.HasPrefix(p, "inclusive_counter_") && strings.HasSuffix(p, "_0") {
			out = append(out, "("+p+")")
		}
	}
	return out
}

// objectSections groups every declared, non-marker predicate into its
// typed :objects line.
func objectSections(predicates *predicateTable) []string {
	byClass := map[ObjectClass][]string{}
	for _, p := range predicates.order {
		class := predicates.class[p]
		if class == ClassMarker {
			continue
		}
		byClass[class] = append(byClass[class], p)
	}

	var out []string
	for _, class := range []ObjectClass{ClassTask, ClassEvent, ClassGateway} {
		names := byClass[class]
		if len(names) == 0 {
			continue
		}
		out = append(out, "    "+strings.Join(names, " ")+" - "+string(class))
	}
	return out
}

func renderProblem(domainName, problemName string, objects, init, goalExtra []string) string {
	var b strings.Builder
	b.WriteString("(define (problem " + problemName + ")\n")
	b.WriteString("  (:domain " + domainName + ")\n")
	if len(objects) > 0 {
		b.WriteString("  (:objects\n")
		for _, o := range objects {
			b.WriteString(o + "\n")
		}
		b.WriteString("  )\n")
	}
	b.WriteString("  (:init")
	for _, f := range init {
		b.WriteString(" " + f)
	}
	b.WriteString(")\n")
	b.WriteString("  (:goal (and (done)" + strings.Join(goalExtra, " ") + "))\n")
	b.WriteString(")")
	return b.String()
}
