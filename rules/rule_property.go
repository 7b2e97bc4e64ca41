package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// applyProperty turns one properties entry into a Field on t. The value type
// resolves through the schema rule (so $refs reuse existing types); the
// metadata rules then run against the referring node in their documented
// order: doc rules, requiredness, default, validation bounds, nested-valid
// cascade, and finally the annotator hook.
func (f *Factory) applyProperty(rc *Context, name string, node *schema.Node, t *model.Type) error {
	fieldName := f.names.FieldName(name)
	if fieldName == "" {
		return &structgen.AmbiguousTypeError{
			Name:      name,
			Container: t.QualifiedName(),
			First:     t.ID,
			Second:    node.ID(),
		}
	}
	fieldName = rc.fieldScope(t).Claim(fieldName, node.ID())

	ftype, err := f.applySchema(rc, name, node, t.Container)
	if err != nil {
		return err
	}

	fl := &model.Field{
		Name:     fieldName,
		JSONName: name,
		Type:     ftype,
	}
	_ = f.applyTitle(node, fl)
	_ = f.applyDescription(node, fl)
	_ = f.applyComment(node, fl)

	f.applyRequired(name, node, fl)
	if !fl.Required {
		f.applyNotRequired(name, node, fl)
	}
	f.applyDefault(node, fl)
	f.applyMinimumMaximum(node, fl)
	f.applyMinItemsMaxItems(node, fl)
	f.applyMinLengthMaxLength(node, fl)
	f.applyDigits(node, fl)
	f.applyPattern(node, fl)
	f.applyValid(node, fl)

	f.annotator.AnnotateField(fl, t, node)
	t.AddField(fl)
	return nil
}
