// Copyright © 2025 The lpyac authors

package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentHover handles the textDocument/hover request.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	col := int(params.Position.Character)

	word := wordAtPosition(doc.Content, line, col)
	if word == "" {
		return nil, nil
	}

	content := s.buildHoverContent(word)
	if content == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content,
		},
	}, nil
}

// buildHoverContent builds Markdown hover text for a candidate symbol.
func (s *Server) buildHoverContent(word string) string {
	annotation := s.api.Annotate(word)
	kind, name := splitAnnotation(annotation)
	if kind == "unknown" {
		return ""
	}

	var sb strings.Builder

	// Header: **kind** `name`
	fmt.Fprintf(&sb, "**%s** `%s`", kind, name)

	if docs := s.api.Docs(word); docs != "" {
		fmt.Fprintf(&sb, "\n\n%s", docs)
	}
	if full := s.api.FullDocs(word); full != "" {
		if _, rest, ok := strings.Cut(full, "\n\n"); ok && rest != "" {
			fmt.Fprintf(&sb, "\n\n%s", rest)
		}
	}

	return sb.String()
}

// splitAnnotation unpacks a "<kind name>" tag.
func splitAnnotation(annotation string) (kind, name string) {
	tag := strings.TrimSuffix(strings.TrimPrefix(annotation, "<"), ">")
	kind, name, _ = strings.Cut(tag, " ")
	return kind, name
}
