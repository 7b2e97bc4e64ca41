package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// applyObject produces (or retrieves) the generated type for an object-shaped
// node. The type is registered under the node's canonical identity before any
// recursion into properties: a nested $ref back to this node then resolves to
// the same not-yet-finished instance instead of re-entering construction,
// which is what makes self-referential schemas terminate.
func (f *Factory) applyObject(rc *Context, name string, node *schema.Node, container string) (*model.Type, error) {
	id := node.ID()
	if t, ok := rc.Store().TypeFor(id); ok {
		return t, nil
	}

	raw := name
	if raw == "" {
		raw, _ = node.Str("title")
	}
	typeName := f.names.TypeName(raw)
	if typeName == "" {
		return nil, &structgen.AmbiguousTypeError{Name: raw, Container: container, First: id, Second: id}
	}
	typeName = rc.typeScope(container).Claim(typeName, id)

	t := model.NewType(id, model.KindObject, typeName, container)
	rc.Store().RegisterType(id, t)
	t.MarkApplied(RuleObject)

	// Annotation-only rules run first; they have no structural effect.
	_ = f.applyTitle(node, t)
	_ = f.applyDescription(node, t)
	_ = f.applyComment(node, t)

	var super *model.Type
	if _, ok := node.Map("extends"); ok {
		extNode, err := rc.Store().Derive(node, "extends")
		if err != nil {
			return nil, err
		}
		super, err = f.applySchema(rc, typeName+"Parent", extNode, container)
		if err != nil {
			return nil, err
		}
	}

	if err := f.applyProperties(rc, node, t); err != nil {
		return nil, err
	}
	if err := f.applyAdditionalProperties(rc, node, t); err != nil {
		return nil, err
	}

	// The supertype attaches only after the field list exists, so redeclared
	// fields can be checked against the inherited ones.
	if super != nil {
		if model.CanExtend(t, super) {
			t.Super = super
		} else {
			rc.warn(structgen.CodeUnsupportedConstruct, "extends", node, "incompatible supertype "+super.Name)
		}
	}

	// Augmentation rules read the now-populated field list.
	f.applyConstructor(rc, t)
	f.applyBuilder(rc, t)
	f.applyDynamicProperties(rc, t)

	f.annotator.AnnotateType(t, node)
	t.Finalize()
	return t, nil
}
