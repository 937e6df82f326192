package bpmn

import (
	"context"

	"github.com/viant/afs"
)

// Parser turns BPMN 2.0 XML bytes into a Graph. It carries no state across
// calls to Parse; each call is an independent translation, matching this
// system's single-pass, no-persistent-state pipeline.
type Parser struct {
	fs afs.Service
}

// NewParser returns a Parser ready to read diagrams via the local
// filesystem (or any afs scheme an Option registers).
func NewParser(opts ...Option) *Parser {
	p := &Parser{fs: afs.New()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// ParseFile downloads the diagram at url and parses it. It returns the
// raw bytes read alongside the Graph so callers can compute a
// ContentDigest without re-reading the file.
func (p *Parser) ParseFile(ctx context.Context, url string) (*Graph, []byte, error) {
	data, err := p.fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, nil, IOFailure("reading "+url, err)
	}
	g, err := p.Parse(data)
	return g, data, err
}

// Parse ingests raw BPMN 2.0 XML bytes into a Graph. Fails with
// MalformedInput if the XML is unparseable or the root is not a BPMN
// definitions element.
func (p *Parser) Parse(data []byte) (*Graph, error) {
	root, err := parseXMLTree(data)
	if err != nil {
		return nil, err
	}
	if root.Local != "definitions" || root.Space != bpmnNamespace {
		return nil, MalformedInput("root element is %q (namespace %q), not a BPMN definitions element", root.Local, root.Space)
	}

	g := NewGraph()
	all := root.descendants()

	addSimple := func(tag string, kind Kind) {
		for _, e := range all {
			if e.Local != tag || e.Space != bpmnNamespace {
				continue
			}
			g.AddNode(&Node{ID: e.attr("id"), Kind: kind, Name: CleanName(e.attr("name"))})
		}
	}

	addSimple("startEvent", StartEvent)
	addSimple("endEvent", EndEvent)
	addSimple("userTask", UserTask)
	addSimple("serviceTask", ServiceTask)
	addSimple("manualTask", ManualTask)
	addSimple("scriptTask", ScriptTask)
	addSimple("task", Task)

	for _, e := range all {
		if e.Local != "intermediateCatchEvent" || e.Space != bpmnNamespace {
			continue
		}
		kind := IntermediateCatchEvent
		for _, child := range e.Children {
			switch child.Local {
			case "messageEventDefinition":
				kind = MessageCatchEvent
			case "timerEventDefinition":
				kind = TimerCatchEvent
			default:
				continue
			}
			break
		}
		g.AddNode(&Node{ID: e.attr("id"), Kind: kind, Name: CleanName(e.attr("name"))})
	}

	addSimple("eventBasedGateway", EventBasedGateway)
	addSimple("exclusiveGateway", ExclusiveGateway)
	addSimple("parallelGateway", ParallelGateway)
	addSimple("inclusiveGateway", InclusiveGateway)

	for _, e := range all {
		if e.Local != "sequenceFlow" || e.Space != bpmnNamespace {
			continue
		}
		g.AddEdge(&Edge{
			ID:       e.attr("id"),
			Kind:     SequenceFlowEdge,
			Name:     CleanName(e.attr("name")),
			SourceID: e.attr("sourceRef"),
			TargetID: e.attr("targetRef"),
		})
	}

	for _, e := range all {
		if e.Local != "messageFlow" || e.Space != bpmnNamespace {
			continue
		}
		g.AddEdge(&Edge{
			ID:       e.attr("id"),
			Kind:     MessageFlowEdge,
			Name:     CleanName(e.attr("name")),
			SourceID: e.attr("sourceRef"),
			TargetID: e.attr("targetRef"),
		})
	}

	for _, e := range all {
		if e.Local != "lane" || e.Space != bpmnNamespace {
			continue
		}
		var refs []string
		for _, ref := range e.childrenNamed("flowNodeRef") {
			if ref.Text != "" {
				refs = append(refs, ref.Text)
			}
		}
		g.AddNode(&Node{ID: e.attr("id"), Kind: Lane, Name: CleanName(e.attr("name")), FlowNodeRefs: refs})
	}

	for _, e := range all {
		if e.Local != "participant" || e.Space != bpmnNamespace {
			continue
		}
		g.AddNode(&Node{ID: e.attr("id"), Kind: Pool, Name: CleanName(e.attr("name")), ProcessRef: e.attr("processRef")})
	}

	return g, nil
}
