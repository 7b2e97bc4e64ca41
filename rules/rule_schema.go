package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// applySchema is the entry rule for any schema node. An explicit $ref wins
// over every sibling keyword: the referenced type is resolved and reused, no
// new type is created. Sibling title/description/$comment on a referring node
// annotate the use site (the field), which the property rule handles; they
// never flow into the referenced type.
func (f *Factory) applySchema(rc *Context, name string, node *schema.Node, container string) (*model.Type, error) {
	ref, ok := node.Str("$ref")
	if !ok {
		return f.applyType(rc, name, node, container)
	}
	resolved, err := rc.Store().Resolve(ref, node)
	if err != nil {
		return nil, err
	}
	if t, ok := rc.Store().TypeFor(resolved.ID()); ok {
		return t, nil
	}
	// A chain of $refs that never reaches a concrete shape ({"$ref":"#"} at
	// the root, or A -> B -> A) cannot produce a type. Structural recursion
	// through properties is fine and is broken by pre-registration in the
	// object rule; this guard only trips on pure reference cycles.
	if rc.resolving[resolved.ID()] {
		rc.warn(structgen.CodeUnsupportedConstruct, "$ref", node, "circular $ref chain with no concrete schema")
		return model.Primitive(model.KindAny), nil
	}
	rc.resolving[resolved.ID()] = true
	defer delete(rc.resolving, resolved.ID())
	return f.applySchema(rc, name, resolved, container)
}
