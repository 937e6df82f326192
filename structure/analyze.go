package structure

import "github.com/viant/bpmnplan/bpmn"

// Result is the read-only output of structural analysis, consumed by the
// encoder without further mutation.
type Result struct {
	InclusivePairs  map[string]string // bidirectional: diverge id <-> converge id
	ParallelRegions map[string]*ParallelRegion
	Warnings        []Warning
}

// Analyze runs adjacency construction, gateway pairing and parallel
// region recognition over g. Analyze (re)builds g.Outgoing/g.Incoming via
// BuildIndex, replacing any existing maps. It returns a fatal error
// only for an unresolved reference; everything else local-recovers into
// Result.Warnings.
func Analyze(g *bpmn.Graph) (*Result, error) {
	if err := BuildIndex(g); err != nil {
		return nil, err
	}

	startEvents := g.NodesOfKind(bpmn.StartEvent)
	pairs, inclusiveWarnings := PairInclusiveGateways(g, startEvents)
	regions, parallelWarnings := FindParallelRegions(g)

	result := &Result{
		InclusivePairs:  pairs,
		ParallelRegions: regions,
	}
	result.Warnings = append(result.Warnings, inclusiveWarnings...)
	result.Warnings = append(result.Warnings, parallelWarnings...)
	return result, nil
}
