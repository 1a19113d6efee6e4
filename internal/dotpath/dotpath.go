// Package dotpath reads values out of nested map[string]any documents, such
// as decoded YAML, using dot-separated paths:
//
//	m := map[string]any{
//	    "author": map[string]any{"name": "Ada", "email": "ada@example.com"},
//	}
//
//	Lookup(m, "author.email") → "ada@example.com", true
//	Flatten(m)                → {"author.name": "Ada", "author.email": …}
package dotpath

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Lookup returns the value at path and reports whether it exists. An empty
// path selects m itself.
func Lookup(m map[string]any, path string) (any, bool) {
	if path == "" {
		return m, m != nil
	}
	var cur any = m
	for seg := range strings.SplitSeq(path, ".") {
		nested, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = nested[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Lookup(m, path)
	return ok
}

// Flatten collapses m into a single-level map keyed by dot path. Only leaf
// values appear; an empty nested map contributes nothing.
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flatten("", m, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asMap(v); ok {
			flatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Lines renders m flattened as sorted "path=value" lines.
func Lines(m map[string]any) []string {
	flat := Flatten(m)
	lines := make([]string, 0, len(flat))
	for _, k := range slices.Sorted(maps.Keys(flat)) {
		lines = append(lines, fmt.Sprintf("%s=%v", k, flat[k]))
	}
	return lines
}

// asMap accepts the two map shapes YAML and JSON decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
