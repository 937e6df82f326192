// Package normalize implements the second pipeline stage: collapsing
// structurally duplicate nodes, promoting message-flow endpoints that are
// Start Events, and splicing the synthetic sequence flows that stand in
// for cross-pool message hand-offs.
package normalize

import (
	"sort"
	"strings"

	"github.com/viant/bpmnplan/bpmn"
)

// mergeCandidate reports whether a node's kind participates in duplicate
// collapse. Gateways and flow edges are never collapsed.
func mergeCandidate(k bpmn.Kind) bool {
	return !k.IsGateway()
}

type dupKey struct {
	kind      bpmn.Kind
	name      string
	outgoing  string
}

// Normalize mutates g in place: it collapses duplicate nodes (recording
// the alias map), promotes valid message-flow endpoints that are Start
// Events to Intermediate Catch Events, splices a synthetic sequence flow
// per valid message flow, and finally rewrites every sequence-flow
// endpoint (including the synthetic ones) through the alias map.
func Normalize(g *bpmn.Graph) {
	g.Alias = map[string]string{}
	collapseDuplicates(g)
	promoteMessageFlows(g)
	rewriteAliases(g)
}

// collapseDuplicates implements normalizer step (b): for every
// non-gateway node, compute key (kind, name, outgoing-target-id-set) over
// sequence flows only. The first occurrence of a key is canonical;
// later occurrences alias to it and union their list-valued extras into
// the canonical node.
func collapseDuplicates(g *bpmn.Graph) {
	outgoing := map[string][]string{}
	for _, e := range g.EdgesOfKind(bpmn.SequenceFlowEdge) {
		outgoing[e.SourceID] = append(outgoing[e.SourceID], e.TargetID)
	}

	seen := map[dupKey]*bpmn.Node{}
	var toRemove []string
	for _, n := range g.Nodes {
		if !mergeCandidate(n.Kind) {
			continue
		}
		key := dupKey{kind: n.Kind, name: n.Name, outgoing: outgoingKey(outgoing[n.ID])}
		canonical, ok := seen[key]
		if !ok {
			seen[key] = n
			continue
		}
		g.Alias[n.ID] = canonical.ID
		canonical.FlowNodeRefs = unionStrings(canonical.FlowNodeRefs, n.FlowNodeRefs)
		toRemove = append(toRemove, n.ID)
	}
	for _, id := range toRemove {
		g.RemoveNode(id)
	}
}

func outgoingKey(targets []string) string {
	uniq := map[string]bool{}
	for _, t := range targets {
		uniq[t] = true
	}
	sorted := make([]string, 0, len(uniq))
	for t := range uniq {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}

func unionStrings(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	uniq := map[string]bool{}
	for _, v := range a {
		uniq[v] = true
	}
	for _, v := range b {
		uniq[v] = true
	}
	out := make([]string, 0, len(uniq))
	for v := range uniq {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// isValidMessageFlow reports whether a message flow's endpoints form a
// (task, event) or (event, task) pair, the only pairing BPMN message
// flows carry structural meaning for in this translation.
func isValidMessageFlow(source, target *bpmn.Node) bool {
	if source == nil || target == nil {
		return false
	}
	sourceTask, targetTask := source.Kind.IsTask(), target.Kind.IsTask()
	sourceEvent, targetEvent := source.Kind.IsEvent(), target.Kind.IsEvent()
	return (sourceTask && targetEvent) || (sourceEvent && targetTask)
}

// promoteMessageFlows implements normalizer step (c). It looks up
// endpoints by their raw (pre-alias) id, matching the point in the
// pipeline where duplicate collapse has already run but full alias
// rewriting (step d) has not: a message flow that references a
// collapsed-away duplicate id is simply invalid, same as a missing
// endpoint.
func promoteMessageFlows(g *bpmn.Graph) {
	var synthetic []*bpmn.Edge
	for _, e := range g.EdgesOfKind(bpmn.MessageFlowEdge) {
		source := g.NodeByID(e.SourceID)
		target := g.NodeByID(e.TargetID)
		if !isValidMessageFlow(source, target) {
			continue
		}
		if source.Kind == bpmn.StartEvent {
			source.Kind = bpmn.IntermediateCatchEvent
		}
		if target.Kind == bpmn.StartEvent {
			target.Kind = bpmn.IntermediateCatchEvent
		}
		synthetic = append(synthetic, &bpmn.Edge{
			ID:       e.ID + "_from_msgflow",
			Kind:     bpmn.SequenceFlowEdge,
			Name:     e.Name,
			SourceID: e.SourceID,
			TargetID: e.TargetID,
		})
	}
	for _, s := range synthetic {
		g.AddEdge(s)
	}
}

// rewriteAliases implements normalizer step (d): every sequence-flow
// endpoint, including the synthetic ones just spliced in, is rewritten
// through the alias map so downstream stages never see a collapsed id.
func rewriteAliases(g *bpmn.Graph) {
	for _, e := range g.EdgesOfKind(bpmn.SequenceFlowEdge) {
		e.SourceID = g.ResolveAlias(e.SourceID)
		e.TargetID = g.ResolveAlias(e.TargetID)
	}
}
