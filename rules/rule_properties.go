package rules

import (
	"sort"

	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// applyProperties walks the properties keyword and delegates each entry to
// the property rule. Keys are visited in sorted order so generation is
// deterministic regardless of decoder map ordering. Guarded by an
// applied-rule marker: recursive $refs can revisit a node whose fields are
// already being built.
func (f *Factory) applyProperties(rc *Context, node *schema.Node, t *model.Type) error {
	if !t.MarkApplied(RuleProperties) {
		return nil
	}
	props, ok := node.Map("properties")
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		child, err := rc.Store().Derive(node, "properties", k)
		if err != nil {
			// Boolean or scalar property schemas ("a": true) cannot become a
			// node; skip the property rather than abort the run.
			rc.warn(structgen.CodeUnsupportedConstruct, "properties", node, "property "+k+" is not a schema object")
			continue
		}
		if err := f.applyProperty(rc, k, child, t); err != nil {
			return err
		}
	}
	return nil
}
