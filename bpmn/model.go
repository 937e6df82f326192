package bpmn

// Node represents any BPMN flow element recognized by ingest. Extras that
// are specific to a handful of kinds (Lane's member list, Pool's process
// reference) are struct fields below that stay empty for every other
// kind.
type Node struct {
	ID   string
	Kind Kind
	Name string

	// ProcessRef is set for Pool nodes: the processRef attribute of the
	// owning participant.
	ProcessRef string
	// FlowNodeRefs is set for Lane nodes: the ids of flow nodes the lane
	// contains. List-valued, merged with set semantics on duplicate
	// collapse.
	FlowNodeRefs []string
}

// Edge is a sequence or message flow between two node ids.
type Edge struct {
	ID       string
	Kind     EdgeKind
	Name     string
	SourceID string
	TargetID string
}

// Graph owns every Node and Edge ingest collected. Outgoing, Incoming and
// Alias are derived during normalization and structural analysis; they
// are nil until those stages run and read-only afterwards.
type Graph struct {
	Nodes []*Node
	Edges []*Edge

	// Alias maps a collapsed duplicate node id to its canonical id.
	Alias map[string]string
	// Outgoing maps a canonical node id to the ordered ids of its
	// successors, computed over sequence flows (including synthetic
	// ones spliced in by normalization) after alias rewriting.
	Outgoing map[string][]string
	// Incoming is the mirror of Outgoing.
	Incoming map[string][]string

	nodeByID map[string]*Node
}

// NewGraph returns an empty, ready-to-populate Graph.
func NewGraph() *Graph {
	return &Graph{nodeByID: map[string]*Node{}}
}

// AddNode registers n, indexing it by id. Later additions with the same
// id replace the index entry but not prior slice entries; ingest never
// adds the same id twice.
func (g *Graph) AddNode(n *Node) {
	g.Nodes = append(g.Nodes, n)
	g.nodeByID[n.ID] = n
}

// AddEdge appends e to the edge list.
func (g *Graph) AddEdge(e *Edge) {
	g.Edges = append(g.Edges, e)
}

// NodeByID returns the node registered under id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	return g.nodeByID[id]
}

// RemoveNode drops the node with id from both the slice and the index.
// Used by normalization to discard collapsed duplicates.
func (g *Graph) RemoveNode(id string) {
	delete(g.nodeByID, id)
	kept := g.Nodes[:0]
	for _, n := range g.Nodes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	g.Nodes = kept
}

// EdgesOfKind returns every edge matching kind, in source order.
func (g *Graph) EdgesOfKind(kind EdgeKind) []*Edge {
	var out []*Edge
	for _, e := range g.Edges {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// NodesOfKind returns every node matching kind, in source order.
func (g *Graph) NodesOfKind(kind Kind) []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// ResolveAlias follows the alias map to the canonical id for id. Ids with
// no alias entry resolve to themselves.
func (g *Graph) ResolveAlias(id string) string {
	if g.Alias == nil {
		return id
	}
	if canon, ok := g.Alias[id]; ok {
		return canon
	}
	return id
}
