// Copyright © 2025 The lpyac authors

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lispython/lpyac/complete"
	"github.com/lispython/lpyac/host"
)

// newAPI builds the completion API all subcommands share: the bundled
// demonstration namespace, or the scope file named by --scope.
func newAPI() (*complete.API, error) {
	api := complete.New(host.MapReflector{})
	if scopeFile != "" {
		f, err := os.Open(scopeFile)
		if err != nil {
			return nil, fmt.Errorf("scope file: %w", err)
		}
		defer f.Close() //nolint:errcheck // read-only file
		scope, err := loadScope(f)
		if err != nil {
			return nil, fmt.Errorf("scope file %s: %w", scopeFile, err)
		}
		api.SetNamespace(nil, scope)
		return api, nil
	}
	api.SetNamespace(demoMacros(), demoGlobals())
	return api, nil
}

// loadScope reads a JSON object into a namespace scope. Object values
// become nested scopes; scalar and array values become opaque
// instances of the corresponding host class. Key order in the file is
// preserved so completion output follows the document.
func loadScope(r io.Reader) (*host.Scope, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected top-level object, got %v", tok)
	}
	return decodeScope(dec)
}

// decodeScope consumes an object body token stream, having already
// consumed the opening brace. Using the token stream rather than
// unmarshalling into a map keeps key order.
func decodeScope(dec *json.Decoder) (*host.Scope, error) {
	scope := host.NewScope()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := valTok.(type) {
		case json.Delim:
			if v == json.Delim('{') {
				nested, err := decodeScope(dec)
				if err != nil {
					return nil, err
				}
				scope.BindScope(key, nested)
				continue
			}
			// Array: consume and bind as an opaque list instance.
			if err := skipArray(dec); err != nil {
				return nil, err
			}
			scope.Bind(key, host.NewInstance(key, "list", ""))
		default:
			scope.Bind(key, host.NewInstance(key, jsonClass(valTok), ""))
		}
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return scope, nil
}

func skipArray(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('['), json.Delim('{'):
			depth++
		case json.Delim(']'), json.Delim('}'):
			depth--
		}
	}
	return nil
}

// jsonClass maps a decoded JSON scalar to the host class name used for
// annotation.
func jsonClass(v any) string {
	switch v.(type) {
	case string:
		return "str"
	case float64, json.Number:
		return "float"
	case bool:
		return "bool"
	case nil:
		return "NoneType"
	default:
		return "object"
	}
}

// demoGlobals builds the bundled demonstration namespace: a handful of
// builtins with docstring signatures, a module, a class, and plain
// instances, enough to exercise completion, annotation, and both
// documentation paths.
func demoGlobals() *host.Scope {
	printObj := host.NewBuiltin("print",
		"print(value, ..., sep=' ', end='\\n', file=None, flush=False)\n\nPrints the values to a stream, or to sys.stdout by default.")
	printObj.Set("__call__", host.NewMethodWrapper("__call__", "Call self as a function."))
	printObj.Set("__class__", host.NewClass("builtin_function_or_method", ""))
	printObj.Set("__str__", host.NewMethodWrapper("__str__", "Return str(self)."))

	itertools := host.NewModule("itertools", "Functional tools for creating and using iterators.")
	itertools.Set("chain", host.NewBuiltin("chain",
		"chain(*iterables) --> chain object\n\nReturn a chain object whose next method returns elements from the\nfirst iterable until it is exhausted."))
	itertools.Set("islice", host.NewBuiltin("islice",
		"islice(iterable, stop) --> islice object"))
	itertools.Set("repeat", host.NewBuiltin("repeat",
		"repeat(object, times=None) --> repeat object"))

	point := host.NewClass("Point", "A 2D point.\n\nSupports translation and scaling.",
		host.Param{Symbol: "self"},
		host.Param{Symbol: "x"},
		host.Param{Symbol: "y"},
		host.Param{Symbol: "label", HasDefault: true, Default: "''"},
	)

	scope := host.NewScope()
	scope.Bind("print", printObj)
	scope.Bind("len", host.NewBuiltin("len",
		"len(obj, /)\n\nReturn the number of items in a container."))
	scope.Bind("str", host.NewClass("str", "str(object='') -> str"))
	scope.Bind("itertools", itertools)
	scope.Bind("Point", point)
	scope.Bind("reduce_with", host.NewFunction("reduce_with",
		"Reduce a collection with a binary function.",
		host.Param{Symbol: "fn"},
		host.Param{Symbol: "coll"},
		host.Param{Symbol: "init", HasDefault: true, Default: host.NoneLiteral},
	))
	scope.Bind("version_info", host.NewInstance("version_info", "tuple", "Built-in immutable sequence."))
	return scope
}

func demoMacros() *host.Scope {
	macros := host.NewScope()
	macros.Bind("threading_first", host.NewFunction("threading_first", "",
		host.Param{Symbol: "form"},
		host.Param{Symbol: "exprs", Kind: host.ParamVarArgs},
	))
	macros.Bind("when_let", host.NewFunction("when_let", "",
		host.Param{Symbol: "bindings"},
		host.Param{Symbol: "body", Kind: host.ParamVarArgs},
	))
	return macros
}
