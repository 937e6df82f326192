package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/bpmnplan/bpmn"
)

func buildGraph(nodes []*bpmn.Node, edges []*bpmn.Edge) *bpmn.Graph {
	g := bpmn.NewGraph()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		g.AddEdge(e)
	}
	return g
}

func TestCollapseDuplicates(t *testing.T) {
	g := buildGraph(
		[]*bpmn.Node{
			{ID: "A1", Kind: bpmn.UserTask, Name: "Review"},
			{ID: "A2", Kind: bpmn.UserTask, Name: "Review"},
			{ID: "B", Kind: bpmn.EndEvent, Name: "Done"},
		},
		[]*bpmn.Edge{
			{ID: "f1", Kind: bpmn.SequenceFlowEdge, SourceID: "A1", TargetID: "B"},
			{ID: "f2", Kind: bpmn.SequenceFlowEdge, SourceID: "A2", TargetID: "B"},
		},
	)

	Normalize(g)

	assert.Len(t, g.Nodes, 2)
	assert.Equal(t, "A1", g.ResolveAlias("A2"))
	assert.Equal(t, "A1", g.Alias["A2"])
}

func TestCollapseDuplicatesKeepsDistinctOutgoingSets(t *testing.T) {
	g := buildGraph(
		[]*bpmn.Node{
			{ID: "A1", Kind: bpmn.UserTask, Name: "Review"},
			{ID: "A2", Kind: bpmn.UserTask, Name: "Review"},
			{ID: "A3", Kind: bpmn.UserTask, Name: "Review"},
			{ID: "B", Kind: bpmn.EndEvent, Name: "Done"},
			{ID: "C", Kind: bpmn.EndEvent, Name: "Cancelled"},
		},
		[]*bpmn.Edge{
			{ID: "f1", Kind: bpmn.SequenceFlowEdge, SourceID: "A1", TargetID: "B"},
			{ID: "f2", Kind: bpmn.SequenceFlowEdge, SourceID: "A2", TargetID: "B"},
			{ID: "f3", Kind: bpmn.SequenceFlowEdge, SourceID: "A3", TargetID: "C"},
		},
	)

	Normalize(g)

	// A1 and A2 share (kind, name, {B}) and collapse; A3 has a distinct
	// outgoing set ({C}) and must survive as its own node even though it
	// shares (kind, name) with A1/A2 — the triple key, not the pair.
	assert.Len(t, g.Nodes, 4)
	assert.Equal(t, "A1", g.ResolveAlias("A2"))
	assert.Equal(t, "A3", g.ResolveAlias("A3"))
}

func TestPromoteMessageFlowReclassifiesStartEvent(t *testing.T) {
	g := buildGraph(
		[]*bpmn.Node{
			{ID: "S1", Kind: bpmn.StartEvent, Name: "Wait"},
			{ID: "T1", Kind: bpmn.UserTask, Name: "Notify"},
		},
		[]*bpmn.Edge{
			{ID: "mf1", Kind: bpmn.MessageFlowEdge, SourceID: "T1", TargetID: "S1"},
		},
	)

	Normalize(g)

	assert.Equal(t, bpmn.IntermediateCatchEvent, g.NodeByID("S1").Kind)
	syntheticFound := false
	for _, e := range g.EdgesOfKind(bpmn.SequenceFlowEdge) {
		if e.SourceID == "T1" && e.TargetID == "S1" {
			syntheticFound = true
		}
	}
	assert.True(t, syntheticFound, "expected a synthetic sequence flow spliced in for the valid message flow")
}

func TestPromoteMessageFlowIgnoresInvalidPairs(t *testing.T) {
	g := buildGraph(
		[]*bpmn.Node{
			{ID: "T1", Kind: bpmn.UserTask},
			{ID: "T2", Kind: bpmn.UserTask},
		},
		[]*bpmn.Edge{
			{ID: "mf1", Kind: bpmn.MessageFlowEdge, SourceID: "T1", TargetID: "T2"},
		},
	)

	Normalize(g)

	assert.Empty(t, g.EdgesOfKind(bpmn.SequenceFlowEdge))
}
