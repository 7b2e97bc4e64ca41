// Package schema resolves schema references to parsed nodes and owns the
// identity maps of one generation run: canonical URI+pointer to schema node,
// and canonical URI+pointer to generated type. Both maps are memoized for the
// lifetime of the run and never evicted; inputs are immutable while a run is
// in progress.
package schema

import (
	"strings"
)

// Node is one parsed schema fragment. Two nodes with the same canonical
// identity are always the same instance; the store guarantees it, callers may
// rely on pointer equality.
type Node struct {
	id      string // canonical "docURI#/json/pointer"
	content map[string]any
	parent  *Node // navigational only, never owning
}

// ID returns the canonical identity: document URI plus JSON-pointer fragment.
func (n *Node) ID() string { return n.id }

// Parent returns the nearest enclosing schema node, or nil at document root.
func (n *Node) Parent() *Node { return n.parent }

// Content exposes the raw keyword map. Callers must not mutate it.
func (n *Node) Content() map[string]any { return n.content }

// DocURI returns the document part of the identity, without the fragment.
func (n *Node) DocURI() string {
	if i := strings.IndexByte(n.id, '#'); i >= 0 {
		return n.id[:i]
	}
	return n.id
}

// Pointer returns the JSON-pointer part of the identity ("" at root).
func (n *Node) Pointer() string {
	if i := strings.IndexByte(n.id, '#'); i >= 0 {
		return n.id[i+1:]
	}
	return ""
}

// Has reports whether the keyword is present.
func (n *Node) Has(keyword string) bool {
	_, ok := n.content[keyword]
	return ok
}

// Get returns the raw keyword value.
func (n *Node) Get(keyword string) (any, bool) {
	v, ok := n.content[keyword]
	return v, ok
}

// Str returns a string-typed keyword value.
func (n *Node) Str(keyword string) (string, bool) {
	s, ok := n.content[keyword].(string)
	return s, ok
}

// Bool returns a boolean-typed keyword value.
func (n *Node) Bool(keyword string) (bool, bool) {
	b, ok := n.content[keyword].(bool)
	return b, ok
}

// Float returns a numeric keyword value as float64. JSON numbers decode to
// float64; integer-typed YAML values are widened.
func (n *Node) Float(keyword string) (float64, bool) {
	switch v := n.content[keyword].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Int returns a numeric keyword value as int when it is integral.
func (n *Node) Int(keyword string) (int, bool) {
	f, ok := n.Float(keyword)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Strings returns an array keyword value as its string elements, dropping
// entries of any other type.
func (n *Node) Strings(keyword string) ([]string, bool) {
	raw, ok := n.content[keyword].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// Slice returns an array keyword value.
func (n *Node) Slice(keyword string) ([]any, bool) {
	v, ok := n.content[keyword].([]any)
	return v, ok
}

// Map returns an object keyword value.
func (n *Node) Map(keyword string) (map[string]any, bool) {
	v, ok := n.content[keyword].(map[string]any)
	return v, ok
}
