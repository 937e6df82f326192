package bpmn

import "github.com/viant/afs"

// Option configures a Parser.
type Option func(*Parser)

// WithFS overrides the abstract filesystem service used to read the
// input diagram. Defaults to afs.New(), which handles plain local paths
// as well as any afs-registered scheme.
func WithFS(fs afs.Service) Option {
	return func(p *Parser) {
		p.fs = fs
	}
}
