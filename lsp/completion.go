// Copyright © 2025 The lpyac authors

package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentCompletion handles the textDocument/completion request.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	col := int(params.Position.Character)
	prefix := prefixAtPosition(doc.Content, line, col)

	var items []protocol.CompletionItem
	for _, candidate := range s.api.Complete(prefix) {
		kind := completionItemKind(s.api.Annotate(candidate))
		item := protocol.CompletionItem{
			Label: candidate,
			Kind:  &kind,
		}
		if docs := s.api.Docs(candidate); docs != "" {
			item.Documentation = &protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: docs,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// completionItemKind derives the LSP item kind from a candidate's
// "<kind name>" annotation tag.
func completionItemKind(annotation string) protocol.CompletionItemKind {
	tag := strings.TrimPrefix(annotation, "<")
	kind, _, _ := strings.Cut(tag, " ")
	switch kind {
	case "function":
		return protocol.CompletionItemKindFunction
	case "class":
		return protocol.CompletionItemKindClass
	case "module":
		return protocol.CompletionItemKindModule
	case "macro":
		return protocol.CompletionItemKindKeyword
	default:
		return protocol.CompletionItemKindVariable
	}
}
