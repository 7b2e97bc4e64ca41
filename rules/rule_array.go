package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// applyArray produces a container type parameterized by the resolved items
// element type. Absent items defaults to the open any value; uniqueItems
// flags set semantics. Array types are registered by identity like objects so
// a $ref to the same array node reuses one instance.
func (f *Factory) applyArray(rc *Context, name string, node *schema.Node, container string) (*model.Type, error) {
	id := node.ID()
	if t, ok := rc.Store().TypeFor(id); ok {
		return t, nil
	}
	t := model.NewType(id, model.KindArray, "", container)
	rc.Store().RegisterType(id, t)
	t.MarkApplied(RuleArray)

	elem := model.Primitive(model.KindAny)
	if node.Has("items") {
		itemsNode, err := rc.Store().Derive(node, "items")
		if err != nil {
			// Tuple-form items (an array of schemas) and boolean items have
			// no single element type to offer.
			rc.warn(structgen.CodeUnsupportedConstruct, "items", node, "items is not a single schema object")
		} else {
			elem, err = f.applySchema(rc, name+"Item", itemsNode, container)
			if err != nil {
				return nil, err
			}
		}
	}
	t.Elem = elem
	if u, ok := node.Bool("uniqueItems"); ok && u {
		t.Unique = true
	}
	t.Finalize()
	return t, nil
}
