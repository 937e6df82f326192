// Command bpmn2pddl translates BPMN 2.0 XML process diagrams into PDDL
// planning domains and problems.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/afs"

	"github.com/viant/bpmnplan/translate"
)

type batchEntry struct {
	Input  string `yaml:"input"`
	Domain string `yaml:"domain"`
	Out    string `yaml:"out"`
}

type batchManifest struct {
	Jobs []batchEntry `yaml:"jobs"`
}

func main() {
	input := flag.String("input", "", "path or URL to a BPMN 2.0 XML diagram")
	domain := flag.String("domain", "", "override domain name (defaults to the diagram's file stem)")
	out := flag.String("out", ".", "base directory or URL to write generated PDDL files under")
	batch := flag.String("batch", "", "path to a YAML batch manifest listing multiple input/out jobs")
	flag.Parse()

	if *batch == "" && *input == "" {
		fmt.Fprintln(os.Stderr, "bpmn2pddl: -input or -batch is required")
		os.Exit(1)
	}

	ctx := context.Background()
	t := translate.New(translate.WithFS(afs.New()))

	var jobs []batchEntry
	if *batch != "" {
		manifest, err := loadBatchManifest(*batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bpmn2pddl: %v\n", err)
			os.Exit(1)
		}
		jobs = manifest.Jobs
	} else {
		jobs = []batchEntry{{Input: *input, Domain: *domain, Out: *out}}
	}

	for _, job := range jobs {
		jobOut := job.Out
		if jobOut == "" {
			jobOut = *out
		}
		result, err := t.Run(ctx, job.Input, job.Domain, jobOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bpmn2pddl: %s: %v\n", job.Input, err)
			os.Exit(1)
		}
		fmt.Printf("\nPDDL domain saved to %s\n", result.DomainURL)
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "bpmn2pddl: warning: %s: %s\n", w.Kind, w.Message)
		}
	}
}

func loadBatchManifest(manifestPath string) (*batchManifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading batch manifest %s: %w", manifestPath, err)
	}
	var manifest batchManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing batch manifest %s: %w", manifestPath, err)
	}
	return &manifest, nil
}
