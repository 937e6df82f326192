// Package translate wires the ingest, normalize, structure and pddl
// stages into a single entry point: one BPMN diagram in, one domain plus
// its problem files out.
package translate

import (
	"context"
	"path"
	"strings"

	"github.com/viant/afs"

	"github.com/viant/bpmnplan/bpmn"
	"github.com/viant/bpmnplan/normalize"
	"github.com/viant/bpmnplan/pddl"
	"github.com/viant/bpmnplan/structure"
)

// Result is everything a translation produced, returned to the caller
// for logging or further inspection.
type Result struct {
	DomainName    string
	DomainURL     string
	ProblemURLs   []string
	Warnings      []structure.Warning
	ContentDigest uint64
}

// Option configures a Translator.
type Option func(*Translator)

// WithFS overrides the afs.Service used for both reading the diagram and
// writing artifacts.
func WithFS(fs afs.Service) Option {
	return func(t *Translator) { t.fs = fs }
}

// Translator runs the full BPMN XML -> PDDL pipeline.
type Translator struct {
	fs afs.Service
}

// New returns a Translator, defaulting to afs.New() when no WithFS
// option is given.
func New(opts ...Option) *Translator {
	t := &Translator{fs: afs.New()}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Run reads the diagram at diagramURL, runs it through every pipeline
// stage, and writes the resulting domain and problem files under
// <outURL>/<diagram-stem>/not_flattened/. domainName overrides only the
// domain name baked into the generated PDDL text; the artifact directory
// and domain file name always follow the diagram's stem. An empty
// domainName falls back to the diagram file's stem.
func (t *Translator) Run(ctx context.Context, diagramURL, domainName, outURL string) (*Result, error) {
	parser := bpmn.NewParser(bpmn.WithFS(t.fs))
	g, data, err := parser.ParseFile(ctx, diagramURL)
	if err != nil {
		return nil, err
	}

	digest, err := bpmn.ContentDigest(data)
	if err != nil {
		return nil, err
	}

	normalize.Normalize(g)

	analysis, err := structure.Analyze(g)
	if err != nil {
		return nil, err
	}

	stem := diagramStem(diagramURL)
	if domainName == "" {
		domainName = stem
	}
	encoder := pddl.NewEncoder(g, analysis)
	domainText, predicates, err := encoder.EncodeDomain(domainName)
	if err != nil {
		return nil, err
	}
	problems := pddl.GenerateProblems(domainName, predicates, g)

	writer := pddl.NewWriter(t.fs)
	written, err := writer.Write(ctx, outURL, stem, pddl.Artifacts{
		DomainName: domainName,
		Domain:     domainText,
		Problems:   problems,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		DomainName:    domainName,
		Warnings:      analysis.Warnings,
		ContentDigest: digest,
	}
	if len(written) > 0 {
		result.DomainURL = written[0]
		result.ProblemURLs = written[1:]
	}
	return result, nil
}

func diagramStem(diagramURL string) string {
	base := path.Base(diagramURL)
	return strings.TrimSuffix(base, path.Ext(base))
}
