// Copyright © 2025 The lpyac authors

package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lispython/lpyac/host"
	"github.com/lispython/lpyac/symbol"
)

// compileTableDoc is the docstring first line the host runtime reports
// for its compile-table sequence type. Documentation for such values
// is suppressed and replaced with a fixed placeholder.
const compileTableDoc = "Built-in immutable sequence."

// Inspect composes name, signature, and docstring into one-line and
// full documentation strings for a resolved object.
type Inspect struct {
	refl host.Reflector
	obj  *host.Object
}

// New returns an Inspect over obj. The object must be non-nil; callers
// resolve candidates first and treat an unresolved candidate as having
// no documentation.
func New(refl host.Reflector, obj *host.Object) *Inspect {
	return &Inspect{refl: refl, obj: obj}
}

func (in *Inspect) docLines() []string {
	doc := in.refl.Doc(in.obj)
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}

func (in *Inspect) docsFirstLine() string {
	lines := in.docLines()
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

func (in *Inspect) docsRestLines() string {
	lines := in.docLines()
	if len(lines) < 2 {
		return ""
	}
	return strings.Join(lines[1:], "\n")
}

// argsDocsDelim separates the rendered signature from the first
// docstring line, present only when a docstring exists.
func (in *Inspect) argsDocsDelim() string {
	if len(in.docLines()) > 0 {
		return " - "
	}
	return ""
}

// ObjName returns the object's surface-form name.
func (in *Inspect) ObjName() string {
	return symbol.Unmangle(in.refl.Name(in.obj))
}

// IsClass reports whether the object is a class.
func (in *Inspect) IsClass() bool {
	return in.refl.ClassName(in.obj) == host.ClassType
}

// IsMethodWrapper reports whether the object is a bound slot wrapper.
func (in *Inspect) IsMethodWrapper() bool {
	return in.refl.ClassName(in.obj) == host.ClassWrapper
}

// IsCompileTable reports whether the object is the distinguished
// compile-table sequence.
func (in *Inspect) IsCompileTable() bool {
	return in.docsFirstLine() == compileTableDoc
}

// Signature returns the object's structured signature, or nil when the
// object is not introspectable.
func (in *Inspect) Signature() *Signature {
	sig, err := NewSignature(in.refl, in.obj)
	if errors.Is(err, host.ErrNotIntrospectable) {
		return nil
	}
	return sig
}

// cutSelfMaybe strips the self parameter from rendered docs for
// classes and method wrappers.
func (in *Inspect) cutSelfMaybe(docs string) string {
	if in.IsClass() || in.IsMethodWrapper() {
		docs = strings.ReplaceAll(docs, "self ", "")
		docs = strings.ReplaceAll(docs, "self", "")
	}
	return docs
}

// cutMethodWrapperMaybe replaces everything before the first ":" with
// the literal "method-wrapper" for wrapper objects.
func (in *Inspect) cutMethodWrapperMaybe(docs string) string {
	if !in.IsMethodWrapper() {
		return docs
	}
	idx := strings.Index(docs, ":")
	if idx < 0 {
		return docs
	}
	return "method-wrapper" + docs[idx:]
}

func (in *Inspect) formatDocs(docs string) string {
	return in.cutMethodWrapperMaybe(in.cutSelfMaybe(docs))
}

// Docs returns the one-line documentation: "name: (signature)" with
// the first docstring line appended when present. Objects without
// structured metadata fall back to the legacy docstring parser; the
// compile table renders as a fixed placeholder.
func (in *Inspect) Docs() string {
	sig := in.Signature()

	var formatted string
	switch {
	case sig != nil && !in.IsCompileTable():
		formatted = fmt.Sprintf("%s: (%s)%s%s",
			in.ObjName(), sig, in.argsDocsDelim(), in.docsFirstLine())
	case in.IsCompileTable():
		formatted = "Compile table"
	default:
		formatted = ParseLegacyDoc(in.docsFirstLine())
	}

	return in.formatDocs(formatted)
}

// FullDocs returns the one-line documentation followed by the rest of
// the docstring, separated by a blank line. The compile table has no
// full documentation.
func (in *Inspect) FullDocs() string {
	if in.IsCompileTable() {
		return ""
	}
	if rest := in.docsRestLines(); rest != "" {
		return in.Docs() + "\n\n" + rest
	}
	return in.Docs()
}
