package annotate

import (
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// JSONTag is the markup the "json" style attaches to each field: the wire
// name and whether the field may be omitted when absent.
type JSONTag struct {
	Name      string
	OmitEmpty bool
}

// JSONEnumValue is the markup the "json" style attaches to enum members,
// binding the member to its literal wire value.
type JSONEnumValue struct {
	Value any
}

// JSONTypeInfo is the per-type markup of the "json" style.
type JSONTypeInfo struct {
	// PropertyOrder lists wire names in declared field order so renderers can
	// emit a stable serialization order.
	PropertyOrder []string
}

// JSON annotates fields with encoding/json-shaped tag metadata.
type JSON struct{}

// AnnotateType attaches the declared property order.
func (JSON) AnnotateType(t *model.Type, node *schema.Node) {
	if t.Kind != model.KindObject || len(t.Fields) == 0 {
		return
	}
	order := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		order = append(order, f.JSONName)
	}
	t.Annotations = append(t.Annotations, JSONTypeInfo{PropertyOrder: order})
}

// AnnotateField attaches a JSONTag; optional fields are marked omit-empty.
func (JSON) AnnotateField(f *model.Field, _ *model.Type, _ *schema.Node) {
	f.Annotations = append(f.Annotations, JSONTag{Name: f.JSONName, OmitEmpty: !f.Required})
}

// AnnotateEnumMember binds the member to its literal value.
func (JSON) AnnotateEnumMember(m *model.EnumMember, value any) {
	m.Annotations = append(m.Annotations, JSONEnumValue{Value: value})
}
