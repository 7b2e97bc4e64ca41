package rules

import (
	"strconv"

	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/naming"
	"github.com/structgen/structgen/schema"
)

// applyEnum produces a closed enumeration from the literal enum array.
// Members keep declaration order; duplicate normalized names are
// disambiguated with the member's declaration index, which is deterministic
// across runs.
func (f *Factory) applyEnum(rc *Context, name string, node *schema.Node, container string) (*model.Type, error) {
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

	t := model.NewType(id, model.KindEnum, typeName, container)
	rc.Store().RegisterType(id, t)
	t.MarkApplied(RuleEnum)

	_ = f.applyTitle(node, t)
	_ = f.applyDescription(node, t)
	_ = f.applyComment(node, t)

	values, _ := node.Slice("enum")
	members := naming.NewScope()
	for i, v := range values {
		mn := f.names.EnumMemberName(v)
		mn = members.ClaimIndexed(mn, strconv.Itoa(i), i)
		m := model.EnumMember{Name: mn, Value: v}
		f.annotator.AnnotateEnumMember(&m, v)
		t.Members = append(t.Members, m)
	}

	f.annotator.AnnotateType(t, node)
	t.Finalize()
	return t, nil
}
