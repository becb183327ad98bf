// Copyright © 2025 The lpyac authors

package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// docWidth is the wrap column for terminal documentation output.
const docWidth = 72

// RenderDoc writes documentation text to w wrapped and indented for
// terminal display. The text itself is produced by Docs or FullDocs;
// rendering is purely presentational.
func RenderDoc(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	doc := indent.String(wordwrap.String(text, docWidth), 2)
	doc = strings.TrimSuffix(doc, "\n")
	_, err := fmt.Fprintln(w, doc)
	return err
}
