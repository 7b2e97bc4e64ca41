// Package annotate defines the injected capability that marks generated
// types and fields with serialization metadata. The core invokes the hooks
// and stores whatever markup they attach; it never interprets the markup.
package annotate

import (
	"fmt"
	"sort"

	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// Annotator is the per-type / per-field hook contract. Implementations attach
// opaque markup by appending to the Annotations slices of the model values
// they receive.
type Annotator interface {
	// AnnotateType runs once per generated type, after its fields are
	// populated.
	AnnotateType(t *model.Type, node *schema.Node)
	// AnnotateField runs once per field, after requiredness, default and
	// constraints are attached.
	AnnotateField(f *model.Field, owner *model.Type, node *schema.Node)
	// AnnotateEnumMember runs once per enumeration member.
	AnnotateEnumMember(m *model.EnumMember, value any)
}

// Nop is the default Annotator; it attaches nothing.
type Nop struct{}

func (Nop) AnnotateType(*model.Type, *schema.Node)                {}
func (Nop) AnnotateField(*model.Field, *model.Type, *schema.Node) {}
func (Nop) AnnotateEnumMember(*model.EnumMember, any)             {}

var styles = map[string]func() Annotator{
	"none": func() Annotator { return Nop{} },
	"json": func() Annotator { return JSON{} },
}

// Register adds an annotation style under the given selector. Later
// registrations replace earlier ones, allowing callers to override the
// built-ins.
func Register(style string, factory func() Annotator) {
	styles[style] = factory
}

// ForStyle returns the Annotator registered under the selector.
func ForStyle(style string) (Annotator, error) {
	if style == "" {
		style = "none"
	}
	f, ok := styles[style]
	if !ok {
		return nil, fmt.Errorf("annotate: unknown annotation style %q (have %v)", style, known())
	}
	return f(), nil
}

func known() []string {
	names := make([]string, 0, len(styles))
	for k := range styles {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
