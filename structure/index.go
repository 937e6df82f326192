// Package structure implements the third pipeline stage: building
// adjacency over the normalized graph, classifying gateways as diverging
// or converging, pairing inclusive gateways, and recognizing parallel
// fork/join regions.
package structure

import "github.com/viant/bpmnplan/bpmn"

// BuildIndex populates g.Outgoing and g.Incoming from sequence-flow edges
// (including the synthetic ones normalization spliced in), which by this
// point have already had their endpoints rewritten through the alias
// map. It fails with an unresolved-reference error if any endpoint names
// no node.
func BuildIndex(g *bpmn.Graph) error {
	g.Outgoing = map[string][]string{}
	g.Incoming = map[string][]string{}
	for _, e := range g.EdgesOfKind(bpmn.SequenceFlowEdge) {
		if g.NodeByID(e.SourceID) == nil {
			return bpmn.UnresolvedReference(e.ID, e.SourceID)
		}
		if g.NodeByID(e.TargetID) == nil {
			return bpmn.UnresolvedReference(e.ID, e.TargetID)
		}
		g.Outgoing[e.SourceID] = append(g.Outgoing[e.SourceID], e.TargetID)
		g.Incoming[e.TargetID] = append(g.Incoming[e.TargetID], e.SourceID)
	}
	return nil
}
