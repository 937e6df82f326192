package structure

import "github.com/viant/bpmnplan/bpmn"

// PairInclusiveGateways walks forward from every Start Event, maintaining
// a LIFO stack of currently-open diverging inclusive gateways. When the
// walk meets a diverging inclusive gateway (one incoming, more than one
// outgoing) it pushes it; when it meets a converging one (more than one
// incoming, one outgoing) it pops a partner and records the pairing in
// both directions. Traversal follows outgoing edges only and never
// revisits a node.
//
// If the stack is empty when a converging inclusive gateway is reached,
// the gateway is left unpaired and a Warning is recorded — it is never
// recorded as pairing to itself (the self-pairing case DESIGN.md lists
// among its resolved open questions).
func PairInclusiveGateways(g *bpmn.Graph, startEvents []*bpmn.Node) (map[string]string, []Warning) {
	pairs := map[string]string{}
	var warnings []Warning

	for _, start := range startEvents {
		visited := map[string]bool{}
		var stack []string
		queue := []string{start.ID}

		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if visited[id] {
				continue
			}
			visited[id] = true

			node := g.NodeByID(id)
			if node != nil && node.Kind == bpmn.InclusiveGateway {
				switch {
				case len(g.Incoming[id]) == 1 && len(g.Outgoing[id]) > 1:
					stack = append(stack, id)
				case len(g.Incoming[id]) > 1 && len(g.Outgoing[id]) == 1:
					if len(stack) == 0 {
						warnings = append(warnings, Warning{
							Kind:      UnpairedGateway,
							GatewayID: id,
							Message:   "converging inclusive gateway has no open diverging partner on the traversal stack",
						})
					} else {
						diverge := stack[len(stack)-1]
						stack = stack[:len(stack)-1]
						pairs[diverge] = id
						pairs[id] = diverge
					}
				}
			}

			for _, tgt := range g.Outgoing[id] {
				if !visited[tgt] {
					queue = append(queue, tgt)
				}
			}
		}

		for _, leftOpen := range stack {
			warnings = append(warnings, Warning{
				Kind:      UnpairedGateway,
				GatewayID: leftOpen,
				Message:   "diverging inclusive gateway never reached a converging partner",
			})
		}
	}

	return pairs, warnings
}
