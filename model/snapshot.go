package model

// Snapshot flattens a type graph into serializable records. Cross-references
// become type-reference strings, so the cyclic reference graph survives a
// trip through an encoder that cannot follow pointers.

// TypeSnapshot is the flat form of one generated type.
type TypeSnapshot struct {
	ID               string           `json:"id,omitempty"`
	Kind             string           `json:"kind"`
	Name             string           `json:"name,omitempty"`
	Container        string           `json:"container,omitempty"`
	Format           string           `json:"format,omitempty"`
	Title            string           `json:"title,omitempty"`
	Description      string           `json:"description,omitempty"`
	Super            string           `json:"super,omitempty"`
	Sealed           bool             `json:"sealed,omitempty"`
	Extra            string           `json:"extra,omitempty"`
	Elem             string           `json:"elem,omitempty"`
	Unique           bool             `json:"unique,omitempty"`
	Fields           []FieldSnapshot  `json:"fields,omitempty"`
	Members          []MemberSnapshot `json:"members,omitempty"`
	CtorParams       []string         `json:"ctorParams,omitempty"`
	Builder          bool             `json:"builder,omitempty"`
	DynamicAccessors bool             `json:"dynamicAccessors,omitempty"`
}

// FieldSnapshot is the flat form of one field.
type FieldSnapshot struct {
	Name           string      `json:"name"`
	JSONName       string      `json:"jsonName"`
	Type           string      `json:"type"`
	Required       bool        `json:"required,omitempty"`
	Default        any         `json:"default,omitempty"`
	Pattern        string      `json:"pattern,omitempty"`
	Minimum        *float64    `json:"minimum,omitempty"`
	Maximum        *float64    `json:"maximum,omitempty"`
	MinLength      *int        `json:"minLength,omitempty"`
	MaxLength      *int        `json:"maxLength,omitempty"`
	MinItems       *int        `json:"minItems,omitempty"`
	MaxItems       *int        `json:"maxItems,omitempty"`
	MultipleOf     *float64    `json:"multipleOf,omitempty"`
	ValidateNested bool        `json:"validateNested,omitempty"`
}

// MemberSnapshot is the flat form of one enum member.
type MemberSnapshot struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Snapshot flattens types in the given order.
func Snapshot(types []*Type) []TypeSnapshot {
	out := make([]TypeSnapshot, 0, len(types))
	for _, t := range types {
		out = append(out, snapshotType(t))
	}
	return out
}

func snapshotType(t *Type) TypeSnapshot {
	s := TypeSnapshot{
		ID:               t.ID,
		Kind:             t.Kind.String(),
		Name:             t.Name,
		Container:        t.Container,
		Format:           t.Format,
		Title:            t.Doc.Title,
		Description:      t.Doc.Description,
		Sealed:           t.Sealed,
		Unique:           t.Unique,
		CtorParams:       t.CtorParams,
		Builder:          t.Builder,
		DynamicAccessors: t.DynamicAccessors,
	}
	if t.Super != nil {
		s.Super = RefString(t.Super)
	}
	if t.Extra != nil {
		s.Extra = RefString(t.Extra)
	}
	if t.Elem != nil {
		s.Elem = RefString(t.Elem)
	}
	for _, fl := range t.Fields {
		s.Fields = append(s.Fields, FieldSnapshot{
			Name:           fl.Name,
			JSONName:       fl.JSONName,
			Type:           RefString(fl.Type),
			Required:       fl.Required,
			Default:        fl.Default,
			Pattern:        fl.Constraints.Pattern,
			Minimum:        fl.Constraints.Minimum,
			Maximum:        fl.Constraints.Maximum,
			MinLength:      fl.Constraints.MinLength,
			MaxLength:      fl.Constraints.MaxLength,
			MinItems:       fl.Constraints.MinItems,
			MaxItems:       fl.Constraints.MaxItems,
			MultipleOf:     fl.Constraints.MultipleOf,
			ValidateNested: fl.ValidateNested,
		})
	}
	for _, m := range t.Members {
		s.Members = append(s.Members, MemberSnapshot{Name: m.Name, Value: m.Value})
	}
	return s
}

// RefString renders a type reference: named types by qualified name,
// arrays as "[]Elem", primitives by kind (with format when refined).
func RefString(t *Type) string {
	return refString(t, map[*Type]bool{})
}

func refString(t *Type, seen map[*Type]bool) string {
	if t == nil {
		return ""
	}
	if t.Name != "" {
		return t.QualifiedName()
	}
	if seen[t] {
		return "..."
	}
	seen[t] = true
	if t.Kind == KindArray {
		return "[]" + refString(t.Elem, seen)
	}
	if t.Format != "" {
		return t.Kind.String() + "<" + t.Format + ">"
	}
	return t.Kind.String()
}
