package pddl

import (
	"bytes"
	"context"

	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"github.com/viant/bpmnplan/bpmn"
)

// Writer uploads a domain and its problem files to an afs-addressable
// location. All artifacts are built in memory first; Write only starts
// uploading once every artifact has been rendered, so a rendering
// failure never leaves a partial output tree behind.
type Writer struct {
	fs afs.Service
}

// NewWriter returns a Writer backed by fs. A nil fs defaults to afs.New().
func NewWriter(fs afs.Service) *Writer {
	if fs == nil {
		fs = afs.New()
	}
	return &Writer{fs: fs}
}

// Artifacts is the full output of one translation, ready to persist.
type Artifacts struct {
	DomainName string
	Domain     string
	Problems   []Problem
}

// Write persists domain and problem files under
// <baseURL>/<diagramStem>/not_flattened/. The domain file is named after
// diagramStem (spec.md §6: "<diagram_stem>_domain_no_flatten.pddl"), which
// may differ from artifacts.DomainName when a -domain override renames the
// PDDL domain without changing the diagram's own output directory.
func (w *Writer) Write(ctx context.Context, baseURL, diagramStem string, artifacts Artifacts) ([]string, error) {
	dir := url.Join(baseURL, diagramStem, "not_flattened")

	type file struct {
		url     string
		content string
	}
	files := []file{{url.Join(dir, diagramStem+"_domain_no_flatten.pddl"), artifacts.Domain}}
	for _, p := range artifacts.Problems {
		files = append(files, file{url.Join(dir, p.Name+".pddl"), p.Text})
	}

	var written []string
	for _, f := range files {
		if err := w.fs.Upload(ctx, f.url, 0644, bytes.NewReader([]byte(f.content))); err != nil {
			return written, bpmn.IOFailure("writing "+f.url, err)
		}
		written = append(written, f.url)
	}
	return written, nil
}
