// Package naming maps arbitrary schema property and type names onto valid,
// convention-compliant identifiers: case conversion, reserved-word escaping,
// digit guards, and deterministic collision disambiguation.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/stoewer/go-strcase"

	structgen "github.com/structgen/structgen"
)

// reserved lists words that must not be used verbatim as identifiers.
var reserved = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
	"any": {}, "bool": {}, "byte": {}, "error": {}, "float64": {},
	"int": {}, "int64": {}, "nil": {}, "string": {}, "true": {}, "false": {},
}

// Namer normalizes raw schema names into identifiers. It is stateless; scoped
// uniqueness is handled by Scope.
type Namer struct {
	fieldCase structgen.FieldCase
}

// New returns a Namer applying the given field case style.
func New(fieldCase structgen.FieldCase) *Namer {
	if fieldCase == "" {
		fieldCase = structgen.FieldCamel
	}
	return &Namer{fieldCase: fieldCase}
}

// TypeName normalizes raw into an upper-camel-case type identifier. The empty
// result (nothing nameable left after sanitizing) is returned as "" and must
// be treated as an ambiguity by the caller.
func (n *Namer) TypeName(raw string) string {
	s := sanitize(raw)
	if s == "" {
		return ""
	}
	s = strcase.UpperCamelCase(s)
	return escape(digitGuard(s))
}

// FieldName normalizes raw into a field identifier using the configured case
// style.
func (n *Namer) FieldName(raw string) string {
	s := sanitize(raw)
	if s == "" {
		return ""
	}
	switch n.fieldCase {
	case structgen.FieldPascal:
		s = strcase.UpperCamelCase(s)
	case structgen.FieldSnake:
		s = strcase.SnakeCase(s)
	default:
		s = strcase.LowerCamelCase(s)
	}
	return escape(digitGuard(s))
}

// EnumMemberName normalizes a literal enum value into an upper-snake-case
// member identifier. Blank values become "EMPTY"; non-string literals are
// rendered through fmt first.
func (n *Namer) EnumMemberName(value any) string {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case nil:
		raw = "null"
	default:
		raw = fmt.Sprint(v)
	}
	s := sanitize(raw)
	if s == "" {
		return "EMPTY"
	}
	return digitGuard(strcase.UpperSnakeCase(s))
}

// sanitize replaces every rune that cannot appear in an identifier with a
// space so the case converter sees it as a word boundary.
func sanitize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// digitGuard prefixes identifiers that would begin with a digit.
func digitGuard(s string) string {
	if s == "" {
		return s
	}
	if r := rune(s[0]); r >= '0' && r <= '9' {
		return "V" + s
	}
	return s
}

// escape suffixes reserved words so they remain legal identifiers.
func escape(s string) string {
	if _, ok := reserved[strings.ToLower(s)]; ok {
		return s + "_"
	}
	return s
}
