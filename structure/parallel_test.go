package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/bpmnplan/bpmn"
)

func TestFindParallelRegionsAccepted(t *testing.T) {
	g := buildGraph(t,
		[]*bpmn.Node{
			{ID: "Fork", Kind: bpmn.ParallelGateway},
			{ID: "A", Kind: bpmn.UserTask},
			{ID: "B", Kind: bpmn.UserTask},
			{ID: "Join", Kind: bpmn.ParallelGateway},
			{ID: "End", Kind: bpmn.EndEvent},
		},
		[]*bpmn.Edge{
			{Kind: bpmn.SequenceFlowEdge, SourceID: "Fork", TargetID: "A"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "Fork", TargetID: "B"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "A", TargetID: "Join"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "B", TargetID: "Join"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "Join", TargetID: "End"},
		},
	)

	regions, warnings := FindParallelRegions(g)

	assert.Empty(t, warnings)
	region, ok := regions["Fork"]
	assert.True(t, ok)
	assert.Equal(t, "Join", region.Join)
	assert.Equal(t, "End", region.Exit)
	assert.ElementsMatch(t, []string{"A", "B"}, region.Tasks)
}

func TestFindParallelRegionsRejectsDivergentJoins(t *testing.T) {
	g := buildGraph(t,
		[]*bpmn.Node{
			{ID: "Fork", Kind: bpmn.ParallelGateway},
			{ID: "A", Kind: bpmn.UserTask},
			{ID: "B", Kind: bpmn.UserTask},
			{ID: "JoinA", Kind: bpmn.ParallelGateway},
			{ID: "JoinB", Kind: bpmn.ParallelGateway},
			{ID: "End", Kind: bpmn.EndEvent},
		},
		[]*bpmn.Edge{
			{Kind: bpmn.SequenceFlowEdge, SourceID: "Fork", TargetID: "A"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "Fork", TargetID: "B"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "A", TargetID: "JoinA"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "B", TargetID: "JoinB"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "JoinA", TargetID: "End"},
			{Kind: bpmn.SequenceFlowEdge, SourceID: "JoinB", TargetID: "End"},
		},
	)

	regions, warnings := FindParallelRegions(g)

	assert.Empty(t, regions)
	assert.Len(t, warnings, 1)
	assert.Equal(t, UnpairedGateway, warnings[0].Kind)
}
