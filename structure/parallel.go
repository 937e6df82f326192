package structure

import "github.com/viant/bpmnplan/bpmn"

// ParallelRegion records a diverging parallel gateway successfully paired
// with a converging parallel gateway: every outgoing branch of Fork walks
// a chain of single-successor nodes to Join, none of the chains fork
// again before converging, and Join has exactly one outgoing edge (Exit).
type ParallelRegion struct {
	Fork   string
	Join   string
	Exit   string
	Chains map[string][]string // branch target id -> intermediate node ids on the way to Join (Join excluded)
	Tasks  []string            // union of every task-kind id across all chains
}

// FindParallelRegions runs the region-recognition walk from every
// diverging parallel gateway in g. Forks that fail acceptance are
// reported as Warnings. The encoder does not read the returned regions:
// every parallel gateway gets the same fork or join action, and every
// converging parallel gateway gets arming tokens, whether or not its
// region was accepted, so a rejected region only adds a Warning.
func FindParallelRegions(g *bpmn.Graph) (map[string]*ParallelRegion, []Warning) {
	regions := map[string]*ParallelRegion{}
	var warnings []Warning

	for _, fork := range g.NodesOfKind(bpmn.ParallelGateway) {
		if !IsDiverging(g, fork.ID) {
			continue
		}
		region, reason := traceRegion(g, fork.ID)
		if region == nil {
			warnings = append(warnings, Warning{
				Kind:      UnpairedGateway,
				GatewayID: fork.ID,
				Message:   reason,
			})
			continue
		}
		regions[fork.ID] = region
	}
	return regions, warnings
}

func traceRegion(g *bpmn.Graph, forkID string) (*ParallelRegion, string) {
	branches := g.Outgoing[forkID]
	chains := map[string][]string{}
	var tasks []string
	var join string

	for _, branchStart := range branches {
		chain, candidateJoin, ok := walkChain(g, branchStart)
		if !ok {
			return nil, "branch from " + forkID + " forks again before converging"
		}
		if candidateJoin == "" {
			return nil, "branch from " + forkID + " never reaches a converging node"
		}
		if join == "" {
			join = candidateJoin
		} else if join != candidateJoin {
			return nil, "branches from " + forkID + " converge at different gateways"
		}
		chains[branchStart] = chain
		for _, id := range chain {
			if n := g.NodeByID(id); n != nil && n.Kind.IsTask() {
				tasks = append(tasks, id)
			}
		}
	}

	if join == "" {
		return nil, "fork " + forkID + " has no outgoing branches"
	}
	joinNode := g.NodeByID(join)
	if joinNode == nil || joinNode.Kind != bpmn.ParallelGateway {
		return nil, "convergence point for " + forkID + " is not a parallel gateway"
	}
	if len(g.Outgoing[join]) != 1 {
		return nil, "converging gateway for " + forkID + " does not have a single exit"
	}

	return &ParallelRegion{
		Fork:   forkID,
		Join:   join,
		Exit:   g.Outgoing[join][0],
		Chains: chains,
		Tasks:  tasks,
	}, ""
}

// walkChain follows a chain of single-successor nodes starting at id
// until it meets a converging node (len(incoming) > 1), which it returns
// as the candidate join without including it in the chain. It returns
// ok=false if any node along the way itself diverges (fan-out > 1),
// violating the "no branch forks again before converging" condition, or
// if the chain runs into a dead end.
func walkChain(g *bpmn.Graph, id string) (chain []string, join string, ok bool) {
	visited := map[string]bool{}
	cur := id
	for {
		if visited[cur] {
			return nil, "", false
		}
		visited[cur] = true

		if len(g.Incoming[cur]) > 1 {
			return chain, cur, true
		}
		out := g.Outgoing[cur]
		if len(out) > 1 {
			return nil, "", false
		}
		chain = append(chain, cur)
		if len(out) == 0 {
			return nil, "", false
		}
		cur = out[0]
	}
}
