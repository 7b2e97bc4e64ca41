package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/go-openapi/jsonreference"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
)

// Store resolves references to schema nodes and keeps the identity maps for
// one generation run. Resolution is memoized: the first resolution of a
// canonical identity fetches, parses and caches; later resolutions return the
// identical node instance. The store is used from a single traversal
// goroutine and is deliberately unsynchronized.
type Store struct {
	fetcher Fetcher
	nodes   map[string]*Node // canonical id -> node
	loading map[string]bool  // doc URI -> fetch/parse in flight

	types     map[string]*model.Type // canonical id -> generated type
	typeOrder []string
}

// NewStore returns an empty store over the given fetch capability.
func NewStore(f Fetcher) *Store {
	return &Store{
		fetcher: f,
		nodes:   map[string]*Node{},
		loading: map[string]bool{},
		types:   map[string]*model.Type{},
	}
}

// Resolve canonicalizes ref against the base node's document URI, loads the
// target document if needed, and returns the node the pointer fragment
// addresses. Failures surface as *structgen.UnresolvableReferenceError; a
// fetch that re-enters resolution of a document currently mid-load surfaces
// as *structgen.CyclicLoadError.
func (s *Store) Resolve(ref string, base *Node) (*Node, error) {
	baseDoc := ""
	if base != nil {
		baseDoc = base.DocURI()
	}
	child, err := jsonreference.New(ref)
	if err != nil {
		return nil, &structgen.UnresolvableReferenceError{Ref: ref, Base: baseDoc, Cause: err}
	}
	resolved := &child
	if baseDoc != "" {
		baseRef, err := jsonreference.New(baseDoc)
		if err != nil {
			return nil, &structgen.UnresolvableReferenceError{Ref: ref, Base: baseDoc, Cause: err}
		}
		resolved, err = baseRef.Inherits(child)
		if err != nil {
			return nil, &structgen.UnresolvableReferenceError{Ref: ref, Base: baseDoc, Cause: err}
		}
	}
	docURI, ptr := splitRef(resolved)
	canonical := docURI + "#" + ptr.String()
	if n, ok := s.nodes[canonical]; ok {
		return n, nil
	}
	root, err := s.loadRoot(docURI, ref, baseDoc)
	if err != nil {
		return nil, err
	}
	return s.walk(root, ptr.DecodedTokens(), ref, baseDoc)
}

// Derive returns the node addressed by the pointer tokens relative to parent,
// interning it (and every intermediate object node) under its canonical
// identity. It is how rules step into properties, items and similar
// sub-schemas without re-fetching the document.
func (s *Store) Derive(parent *Node, tokens ...string) (*Node, error) {
	return s.walk(parent, tokens, parent.ID(), "")
}

// RegisterType binds a generated type to a canonical identity. Registration
// order is preserved for deterministic listing.
func (s *Store) RegisterType(id string, t *model.Type) {
	if _, ok := s.types[id]; !ok {
		s.typeOrder = append(s.typeOrder, id)
	}
	s.types[id] = t
}

// TypeFor returns the generated type registered for the identity, possibly
// still under construction.
func (s *Store) TypeFor(id string) (*model.Type, bool) {
	t, ok := s.types[id]
	return t, ok
}

// Types returns every registered generated type in registration order.
func (s *Store) Types() []*model.Type {
	out := make([]*model.Type, 0, len(s.typeOrder))
	for _, id := range s.typeOrder {
		out = append(out, s.types[id])
	}
	return out
}

// TypeCount returns the number of registered generated types.
func (s *Store) TypeCount() int { return len(s.types) }

func (s *Store) loadRoot(docURI, ref, baseDoc string) (*Node, error) {
	rootID := docURI + "#"
	if n, ok := s.nodes[rootID]; ok {
		return n, nil
	}
	if s.loading[docURI] {
		return nil, &structgen.CyclicLoadError{URI: docURI}
	}
	s.loading[docURI] = true
	defer delete(s.loading, docURI)

	raw, err := s.fetcher.Fetch(docURI)
	if err != nil {
		return nil, &structgen.UnresolvableReferenceError{Ref: ref, Base: baseDoc, Cause: err}
	}
	content, err := parseDocument(raw, docURI)
	if err != nil {
		return nil, &structgen.UnresolvableReferenceError{Ref: ref, Base: baseDoc, Cause: err}
	}
	n := &Node{id: rootID, content: content}
	s.nodes[rootID] = n
	return n, nil
}

// walk steps through pointer tokens from start, interning every object node
// it passes so parents and identities stay consistent.
func (s *Store) walk(start *Node, tokens []string, ref, baseDoc string) (*Node, error) {
	var raw any = start.content
	id := start.id
	node := start
	for _, tok := range tokens {
		switch c := raw.(type) {
		case map[string]any:
			v, ok := c[tok]
			if !ok {
				return nil, &structgen.UnresolvableReferenceError{
					Ref: ref, Base: baseDoc,
					Cause: fmt.Errorf("pointer token %q not found under %s", tok, id),
				}
			}
			raw = v
		case []any:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(c) {
				return nil, &structgen.UnresolvableReferenceError{
					Ref: ref, Base: baseDoc,
					Cause: fmt.Errorf("pointer index %q out of range under %s", tok, id),
				}
			}
			raw = c[i]
		default:
			return nil, &structgen.UnresolvableReferenceError{
				Ref: ref, Base: baseDoc,
				Cause: fmt.Errorf("pointer token %q addresses a scalar under %s", tok, id),
			}
		}
		id += "/" + jsonpointer.Escape(tok)
		if m, ok := raw.(map[string]any); ok {
			if existing, ok := s.nodes[id]; ok {
				node = existing
			} else {
				child := &Node{id: id, content: m, parent: node}
				s.nodes[id] = child
				node = child
			}
		}
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, &structgen.UnresolvableReferenceError{
			Ref: ref, Base: baseDoc,
			Cause: fmt.Errorf("%s does not address a schema object", id),
		}
	}
	return node, nil
}

func splitRef(r *jsonreference.Ref) (docURI string, ptr jsonpointer.Pointer) {
	if u := r.GetURL(); u != nil {
		copied := *u
		copied.Fragment = ""
		docURI = copied.String()
	}
	if p := r.GetPointer(); p != nil {
		ptr = *p
	}
	return docURI, ptr
}

// parseDocument decodes a schema document. JSON is the default; YAML is used
// for .yaml/.yml URIs and as a fallback when JSON decoding fails, matching
// the yamlschema source type of the original tool.
func parseDocument(raw []byte, docURI string) (map[string]any, error) {
	var v any
	if isYAMLURI(docURI) {
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	} else if err := json.Unmarshal(raw, &v); err != nil {
		if yerr := yaml.Unmarshal(raw, &v); yerr != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root is not an object")
	}
	return m, nil
}

func isYAMLURI(uri string) bool {
	u := strings.ToLower(uri)
	return strings.HasSuffix(u, ".yaml") || strings.HasSuffix(u, ".yml")
}
