package rules

import (
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// applyAdditionalProperties decides the extension point of an object type
// from the literal value of additionalProperties:
//
//	false       -> sealed type, no extension point
//	true        -> open extension point with any-typed values
//	sub-schema  -> open extension point typed by the resolved sub-schema
//	absent      -> open any-typed extension point, gated by configuration
func (f *Factory) applyAdditionalProperties(rc *Context, node *schema.Node, t *model.Type) error {
	if !t.MarkApplied(RuleAdditionalProperties) {
		return nil
	}
	raw, present := node.Get("additionalProperties")
	if !present {
		if f.cfg.IncludeAdditionalProperties {
			t.Extra = model.Primitive(model.KindAny)
		}
		return nil
	}
	switch v := raw.(type) {
	case bool:
		if v {
			t.Extra = model.Primitive(model.KindAny)
		} else {
			t.Sealed = true
		}
	case map[string]any:
		apNode, err := rc.Store().Derive(node, "additionalProperties")
		if err != nil {
			return err
		}
		vt, err := f.applySchema(rc, t.Name+"Property", apNode, t.Container)
		if err != nil {
			return err
		}
		t.Extra = vt
	}
	return nil
}
