// Package model holds the mutable representation of generated types. Types
// live in an identity-indexed registry (the schema store) and reference each
// other through pointers, so recursive schemas are representable without
// copies: a cycle in the reference graph is just a pointer back into the
// registry.
package model

// Kind identifies the shape of a generated type.
type Kind int

const (
	KindAny Kind = iota // open/unconstrained value
	KindObject
	KindEnum
	KindArray
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindBytes // content-encoded string payloads
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindBytes:
		return "bytes"
	default:
		return "any"
	}
}

// Doc carries non-structural documentation metadata.
type Doc struct {
	Title       string
	Description string
	Comment     string // $comment
}

// Constraints aggregates validation bounds attached to a field.
type Constraints struct {
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum bool
	ExclusiveMaximum bool
	MinItems         *int
	MaxItems         *int
	MinLength        *int
	MaxLength        *int
	Pattern          string
	MultipleOf       *float64
}

// Empty reports whether no constraint is set.
func (c Constraints) Empty() bool {
	return c.Minimum == nil && c.Maximum == nil &&
		c.MinItems == nil && c.MaxItems == nil &&
		c.MinLength == nil && c.MaxLength == nil &&
		c.Pattern == "" && c.MultipleOf == nil
}

// Field belongs to exactly one Type. Its Type reference may point at a type
// that is not finalized yet; forward references are resolved by identity, so
// self- and mutually-recursive schemas work without special casing.
type Field struct {
	Name           string // normalized identifier
	JSONName       string // property name as written in the schema
	Type           *Type
	Required       bool
	Default        any
	Constraints    Constraints
	Doc            Doc
	ValidateNested bool // cascade validation into object/array payloads
	Annotations    []any
}

// EnumMember is one entry of a closed enumeration, in declaration order.
type EnumMember struct {
	Name        string // normalized, collision-free identifier
	Value       any    // the literal from the schema enum array
	Annotations []any
}

// Type is a generated type under construction. Rules populate it
// incrementally; once every applicable rule has run it is finalized and must
// be treated as read-only.
type Type struct {
	ID        string // canonical schema identity ("" for ad-hoc primitives)
	Kind      Kind
	Name      string
	Container string // namespace/package the type is declared in
	Doc       Doc

	// Object shape.
	Fields []*Field
	Super  *Type // optional supertype (extends)
	Sealed bool  // additionalProperties: false
	Extra  *Type // open extension-point value type; nil when none

	// Enum shape.
	Members []EnumMember

	// Array shape.
	Elem   *Type
	Unique bool // uniqueItems: set semantics

	// Primitive refinement (format / media rules).
	Format string

	// Augmentation markers, read by renderers.
	CtorParams       []string // required-field constructor parameters
	Builder          bool
	DynamicAccessors bool

	Annotations []any

	applied map[string]struct{}
	final   bool

	fieldsByName map[string]*Field
}

// NewType returns an unfinalized type with the given identity and shape.
func NewType(id string, kind Kind, name, container string) *Type {
	return &Type{
		ID:        id,
		Kind:      kind,
		Name:      name,
		Container: container,
	}
}

// Primitive returns a fresh primitive type of the given kind. Primitives are
// created per use site so format refinement never leaks between fields.
func Primitive(kind Kind) *Type {
	return &Type{Kind: kind}
}

// MarkApplied records that the named rule has run on this type. It returns
// false when the rule was already applied, which is how idempotent rules
// guard against re-entry on recursive schemas.
func (t *Type) MarkApplied(rule string) bool {
	if t.applied == nil {
		t.applied = map[string]struct{}{}
	}
	if _, ok := t.applied[rule]; ok {
		return false
	}
	t.applied[rule] = struct{}{}
	return true
}

// Applied reports whether the named rule already ran on this type.
func (t *Type) Applied(rule string) bool {
	_, ok := t.applied[rule]
	return ok
}

// AddField appends f, keeping the by-name index current. Adding a second
// field with the same identifier is a programming error in the rule set and
// panics rather than silently corrupting the model.
func (t *Type) AddField(f *Field) {
	if t.fieldsByName == nil {
		t.fieldsByName = map[string]*Field{}
	}
	if _, dup := t.fieldsByName[f.Name]; dup {
		panic("model: duplicate field " + f.Name + " on " + t.Name)
	}
	t.fieldsByName[f.Name] = f
	t.Fields = append(t.Fields, f)
}

// FieldByName returns the declared field with the given identifier.
func (t *Type) FieldByName(name string) (*Field, bool) {
	f, ok := t.fieldsByName[name]
	return f, ok
}

// Finalize seals the type. Further rule application must not mutate it.
func (t *Type) Finalize() { t.final = true }

// Final reports whether the type has been finalized.
func (t *Type) Final() bool { return t.final }

// QualifiedName returns "container.Name", or just Name without a container.
func (t *Type) QualifiedName() string {
	if t.Container == "" {
		return t.Name
	}
	return t.Container + "." + t.Name
}
