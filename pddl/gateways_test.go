package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/viant/bpmnplan/bpmn"
	"github.com/viant/bpmnplan/structure"
)

// gatewayCase is a table-driven end-to-end scenario: build a graph, encode
// it, and check that every expected fragment (decoded from a YAML list,
// mirroring viant-linager/analyzer's expectYaml fixtures) appears in the
// rendered domain text.
type gatewayCase struct {
	description string
	build       func(t *testing.T) *bpmn.Graph
	expectYaml  string
}

func runGatewayCase(t *testing.T, tc gatewayCase) (string, *predicateTable) {
	t.Helper()
	g := tc.build(t)
	require.NoError(t, structure.BuildIndex(g))
	res, err := structure.Analyze(g)
	require.NoError(t, err)

	enc := NewEncoder(g, res)
	domain, predicates, err := enc.EncodeDomain("bpmn_generated")
	require.NoError(t, err)

	var expect []string
	require.NoError(t, yaml.Unmarshal([]byte(tc.expectYaml), &expect))
	for _, fragment := range expect {
		assert.Contains(t, domain, fragment, tc.description)
	}
	assertEveryReferencedPredicateIsDeclared(t, domain, predicates)
	return domain, predicates
}

// exclusiveSplitGraph builds spec.md §8 end-to-end scenario 2: Start s,
// Exclusive Gateway g with branches to Tasks a, b, both joining into End e.
func exclusiveSplitGraph(t *testing.T) *bpmn.Graph {
	t.Helper()
	g := bpmn.NewGraph()
	g.AddNode(&bpmn.Node{ID: "s", Kind: bpmn.StartEvent})
	g.AddNode(&bpmn.Node{ID: "g", Kind: bpmn.ExclusiveGateway})
	g.AddNode(&bpmn.Node{ID: "a", Kind: bpmn.UserTask})
	g.AddNode(&bpmn.Node{ID: "b", Kind: bpmn.UserTask})
	g.AddNode(&bpmn.Node{ID: "e", Kind: bpmn.EndEvent})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "s", TargetID: "g"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "g", TargetID: "a"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "g", TargetID: "b"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "a", TargetID: "e"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "b", TargetID: "e"})
	return g
}

func TestEncodeDomainExclusiveSplit(t *testing.T) {
	runGatewayCase(t, gatewayCase{
		description: "exclusive split",
		build:       exclusiveSplitGraph,
		expectYaml: `
- "(:action activate_g"
- ":precondition (and (s))"
- "(:action exclusive_g"
- ":precondition (and (g))"
- "(oneof (a) (b))"
- "(not (g))"
- "(:action goal_e"
- ":effect (done)"
`,
	})
}

// parallelRegionGraph builds spec.md §8 end-to-end scenario 3: Start s,
// Parallel fork f with two branches Tasks a, b joining at Parallel j, then
// End e.
func parallelRegionGraph(t *testing.T) *bpmn.Graph {
	t.Helper()
	g := bpmn.NewGraph()
	g.AddNode(&bpmn.Node{ID: "s", Kind: bpmn.StartEvent})
	g.AddNode(&bpmn.Node{ID: "f", Kind: bpmn.ParallelGateway})
	g.AddNode(&bpmn.Node{ID: "a", Kind: bpmn.UserTask})
	g.AddNode(&bpmn.Node{ID: "b", Kind: bpmn.UserTask})
	g.AddNode(&bpmn.Node{ID: "j", Kind: bpmn.ParallelGateway})
	g.AddNode(&bpmn.Node{ID: "e", Kind: bpmn.EndEvent})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "s", TargetID: "f"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "f", TargetID: "a"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "f", TargetID: "b"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "a", TargetID: "j"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "b", TargetID: "j"})
	g.AddEdge(&bpmn.Edge{Kind: bpmn.SequenceFlowEdge, SourceID: "j", TargetID: "e"})
	return g
}

func TestEncodeDomainParallelRegion(t *testing.T) {
	domain, predicates := runGatewayCase(t, gatewayCase{
		description: "parallel region",
		build:       parallelRegionGraph,
		expectYaml: `
- "(:action activate_f"
- "(:action parallel_f"
- ":precondition (and (f))"
- "(a) (b)"
- "(:action parallel_j"
- ":precondition (and (j) (j_precondition_0) (j_precondition_1))"
- ":effect (and (e) (not (j)))"
- "(:action goal_e"
`,
	})

	assert.True(t, predicates.has("j_precondition_0"))
	assert.True(t, predicates.has("j_precondition_1"))
	assert.False(t, predicates.has("j_precondition_2"))
	// The fork sets neither arming token; each branch task's effect sets
	// one of them (a sets j_precondition_0, b sets j_precondition_1).
	assert.Contains(t, domain, "j_precondition_0")
	assert.Contains(t, domain, "j_precondition_1")
}
