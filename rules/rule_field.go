package rules

import (
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// Field-level rules. Each reads its keyword from the referring node and
// mutates the field under construction. They run in the order the property
// rule calls them; every one of them is a no-op when its keyword is absent,
// so re-running on the same node is harmless.

// applyRequired sets the required flag from either the draft-03 boolean
// required keyword on the property node, or membership in the enclosing
// object's required array.
func (f *Factory) applyRequired(name string, node *schema.Node, fl *model.Field) {
	if b, ok := node.Bool("required"); ok {
		fl.Required = b
		return
	}
	obj := enclosingObject(node)
	if obj == nil {
		return
	}
	req, ok := obj.Strings("required")
	if !ok {
		return
	}
	for _, r := range req {
		if r == name {
			fl.Required = true
			return
		}
	}
}

// applyNotRequired is the explicit counterpart for properties that are
// absent from the required array. The flag already defaults to false; the
// rule exists so annotators and renderers can rely on it having been decided.
func (f *Factory) applyNotRequired(name string, node *schema.Node, fl *model.Field) {
	fl.Required = false
}

// applyDefault attaches the literal default value to its own field.
func (f *Factory) applyDefault(node *schema.Node, fl *model.Field) {
	if v, ok := node.Get("default"); ok {
		fl.Default = v
	}
}

// applyMinimumMaximum reads numeric bounds, supporting both the draft-04
// boolean exclusive* form and the later numeric exclusive* form.
func (f *Factory) applyMinimumMaximum(node *schema.Node, fl *model.Field) {
	if v, ok := node.Float("minimum"); ok {
		fl.Constraints.Minimum = &v
		if b, ok := node.Bool("exclusiveMinimum"); ok && b {
			fl.Constraints.ExclusiveMinimum = true
		}
	} else if v, ok := node.Float("exclusiveMinimum"); ok {
		fl.Constraints.Minimum = &v
		fl.Constraints.ExclusiveMinimum = true
	}
	if v, ok := node.Float("maximum"); ok {
		fl.Constraints.Maximum = &v
		if b, ok := node.Bool("exclusiveMaximum"); ok && b {
			fl.Constraints.ExclusiveMaximum = true
		}
	} else if v, ok := node.Float("exclusiveMaximum"); ok {
		fl.Constraints.Maximum = &v
		fl.Constraints.ExclusiveMaximum = true
	}
}

func (f *Factory) applyMinItemsMaxItems(node *schema.Node, fl *model.Field) {
	if v, ok := node.Int("minItems"); ok {
		fl.Constraints.MinItems = &v
	}
	if v, ok := node.Int("maxItems"); ok {
		fl.Constraints.MaxItems = &v
	}
}

func (f *Factory) applyMinLengthMaxLength(node *schema.Node, fl *model.Field) {
	if v, ok := node.Int("minLength"); ok {
		fl.Constraints.MinLength = &v
	}
	if v, ok := node.Int("maxLength"); ok {
		fl.Constraints.MaxLength = &v
	}
}

// applyDigits records the multipleOf granularity constraint.
func (f *Factory) applyDigits(node *schema.Node, fl *model.Field) {
	if v, ok := node.Float("multipleOf"); ok {
		fl.Constraints.MultipleOf = &v
	}
}

func (f *Factory) applyPattern(node *schema.Node, fl *model.Field) {
	if s, ok := node.Str("pattern"); ok {
		fl.Constraints.Pattern = s
	}
}

// applyValid marks fields whose payloads carry their own generated types, so
// validation cascades into them: objects, and arrays of objects.
func (f *Factory) applyValid(node *schema.Node, fl *model.Field) {
	t := fl.Type
	if t == nil {
		return
	}
	switch {
	case t.Kind == model.KindObject:
		fl.ValidateNested = true
	case t.Kind == model.KindArray && t.Elem != nil && t.Elem.Kind == model.KindObject:
		fl.ValidateNested = true
	}
}

// enclosingObject climbs from a property node (object/properties/<name>) to
// the object node that declares it.
func enclosingObject(node *schema.Node) *schema.Node {
	p := node.Parent()
	if p == nil {
		return nil
	}
	return p.Parent()
}
