package rules

import "github.com/structgen/structgen/model"

// Augmentation rules run after the field list is populated and only read it.
// All three are configuration-gated and idempotent via applied-rule markers.

// applyConstructor records the constructor parameter list: the required
// fields, in declaration order.
func (f *Factory) applyConstructor(rc *Context, t *model.Type) {
	if !f.cfg.IncludeConstructors || !t.MarkApplied(RuleConstructor) {
		return
	}
	for _, fl := range t.Fields {
		if fl.Required {
			t.CtorParams = append(t.CtorParams, fl.Name)
		}
	}
}

// applyBuilder marks the type for builder emission.
func (f *Factory) applyBuilder(rc *Context, t *model.Type) {
	if !f.cfg.GenerateBuilders || !t.MarkApplied(RuleBuilder) {
		return
	}
	t.Builder = true
}

// applyDynamicProperties marks the type for by-name accessor emission over
// its declared fields.
func (f *Factory) applyDynamicProperties(rc *Context, t *model.Type) {
	if !f.cfg.IncludeDynamicAccessors || !t.MarkApplied(RuleDynamicProperties) {
		return
	}
	t.DynamicAccessors = true
}
