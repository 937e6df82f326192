package structure

import "github.com/viant/bpmnplan/bpmn"

// IsDiverging reports whether node id has more than one outgoing edge.
func IsDiverging(g *bpmn.Graph, id string) bool {
	return len(g.Outgoing[id]) > 1
}

// IsConverging reports whether node id has more than one incoming edge.
func IsConverging(g *bpmn.Graph, id string) bool {
	return len(g.Incoming[id]) > 1
}

// IsBothDivergingAndConverging reports the malformed-gateway shape the
// encoder must reject its optimized emission for (spec invariant: "the
// encoder rejects ... any gateway that is both").
func IsBothDivergingAndConverging(g *bpmn.Graph, id string) bool {
	return IsDiverging(g, id) && IsConverging(g, id)
}
