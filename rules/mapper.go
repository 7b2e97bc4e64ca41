package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
)

// Mapper drives one generation run end to end: resolve the root schema,
// apply the schema rule, and hand back the root type together with the
// recoverable findings. Fatal errors abort the run with no partial result.
type Mapper struct {
	f *Factory
}

// NewMapper returns a Mapper over the factory.
func NewMapper(f *Factory) *Mapper { return &Mapper{f: f} }

// Generate resolves rootURI and transforms it into a generated type named
// typeName inside container. Repeated runs against the same factory share
// the store, so a later run referencing an earlier document reuses its types
// instead of duplicating them.
func (m *Mapper) Generate(rootURI, typeName, container string) (*model.Type, structgen.Issues, error) {
	rc := m.f.NewContext()
	node, err := m.f.store.Resolve(rootURI, nil)
	if err != nil {
		return nil, nil, err
	}
	out, err := m.f.Apply(rc, RuleSchema, typeName, node, container)
	if err != nil {
		return nil, rc.Warnings(), err
	}
	t, _ := out.(*model.Type)
	return t, rc.Warnings(), nil
}
