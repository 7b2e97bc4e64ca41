package rules_test

import (
	"testing"

	"github.com/rs/zerolog"

	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/rules"
	"github.com/structgen/structgen/schema"
)

func newMapper(t *testing.T, docs map[string][]byte, cfg *structgen.Config) (*rules.Mapper, *schema.Store) {
	t.Helper()
	store := schema.NewStore(schema.MapFetcher(docs))
	f, err := rules.NewFactory(cfg, store, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	return rules.NewMapper(f), store
}

func TestSelfReferentialSchemaTerminates(t *testing.T) {
	m, store := newMapper(t, map[string][]byte{
		"mem://node.json": []byte(`{"type":"object","properties":{"child":{"$ref":"#"}}}`),
	}, nil)
	root, _, err := m.Generate("mem://node.json", "Node", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if store.TypeCount() != 1 {
		t.Fatalf("self-referential schema must produce exactly one type, got %d", store.TypeCount())
	}
	fl, ok := root.FieldByName("child")
	if !ok {
		t.Fatalf("child field missing")
	}
	if fl.Type != root {
		t.Fatalf("child must reference the root type by identity")
	}
	if !root.Final() {
		t.Fatalf("root must be finalized")
	}
}

func TestRepeatedRefReturnsIdenticalType(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://a.json": []byte(`{
			"type":"object",
			"definitions":{"addr":{"type":"object","properties":{"city":{"type":"string"}}}},
			"properties":{
				"home":{"$ref":"#/definitions/addr"},
				"work":{"$ref":"#/definitions/addr"}
			}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://a.json", "Person", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	home, _ := root.FieldByName("home")
	work, _ := root.FieldByName("work")
	if home == nil || work == nil {
		t.Fatalf("expected home and work fields")
	}
	if home.Type != work.Type {
		t.Fatalf("two $refs to one schema must share one generated type instance")
	}
}

func TestEnumMemberDisambiguation(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://e.json": []byte(`{"type":"string","enum":["A","A-1","a"]}`),
	}, nil)
	root, _, err := m.Generate("mem://e.json", "Letter", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if root.Kind != model.KindEnum {
		t.Fatalf("kind = %v, want enum", root.Kind)
	}
	if len(root.Members) != 3 {
		t.Fatalf("want 3 members, got %d", len(root.Members))
	}
	want := []string{"A", "A_1", "A_2"}
	for i, m := range root.Members {
		if m.Name != want[i] {
			t.Errorf("member %d = %q, want %q", i, m.Name, want[i])
		}
	}
	if root.Members[2].Value != "a" {
		t.Fatalf("declaration order must be preserved")
	}
}

func TestRequiredAndDefaultTargetTheirOwnFields(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://r.json": []byte(`{
			"type":"object",
			"required":["x"],
			"properties":{
				"x":{"type":"string"},
				"y":{"type":"integer","default":7}
			}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://r.json", "Thing", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	x, _ := root.FieldByName("x")
	y, _ := root.FieldByName("y")
	if x == nil || y == nil {
		t.Fatalf("expected fields x and y")
	}
	if !x.Required {
		t.Fatalf("x must be required")
	}
	if y.Required {
		t.Fatalf("y must not be required")
	}
	if x.Default != nil {
		t.Fatalf("x must not inherit y's default")
	}
	if y.Default != float64(7) {
		t.Fatalf("y default = %v", y.Default)
	}
}

func TestBooleanRequiredKeyword(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://r.json": []byte(`{
			"type":"object",
			"properties":{"x":{"type":"string","required":true}}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://r.json", "Thing", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	x, _ := root.FieldByName("x")
	if x == nil || !x.Required {
		t.Fatalf("draft-03 boolean required must set the flag")
	}
}

func TestAdditionalPropertiesShapes(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://sealed.json": []byte(`{"type":"object","properties":{"a":{"type":"string"}},"additionalProperties":false}`),
		"mem://open.json":   []byte(`{"type":"object","properties":{"a":{"type":"string"}},"additionalProperties":{"type":"string"}}`),
		"mem://any.json":    []byte(`{"type":"object","properties":{"a":{"type":"string"}},"additionalProperties":true}`),
	}, nil)
	sealed, _, err := m.Generate("mem://sealed.json", "Sealed", "types")
	if err != nil {
		t.Fatalf("generate sealed: %v", err)
	}
	open, _, err := m.Generate("mem://open.json", "Open", "types")
	if err != nil {
		t.Fatalf("generate open: %v", err)
	}
	anyOpen, _, err := m.Generate("mem://any.json", "AnyOpen", "types")
	if err != nil {
		t.Fatalf("generate any: %v", err)
	}
	if !sealed.Sealed || sealed.Extra != nil {
		t.Fatalf("additionalProperties:false must seal the type")
	}
	if open.Sealed || open.Extra == nil || open.Extra.Kind != model.KindString {
		t.Fatalf("sub-schema additionalProperties must produce a string-valued extension point")
	}
	if anyOpen.Extra == nil || anyOpen.Extra.Kind != model.KindAny {
		t.Fatalf("additionalProperties:true must produce an any-valued extension point")
	}
}

func TestAdditionalPropertiesAbsentGatedByConfig(t *testing.T) {
	doc := map[string][]byte{
		"mem://o.json": []byte(`{"type":"object","properties":{"a":{"type":"string"}}}`),
	}
	m, _ := newMapper(t, doc, nil) // default config keeps objects open
	open, _, err := m.Generate("mem://o.json", "Open", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if open.Extra == nil || open.Extra.Kind != model.KindAny {
		t.Fatalf("absent additionalProperties must default to an open map")
	}

	cfg := structgen.DefaultConfig()
	cfg.IncludeAdditionalProperties = false
	m2, _ := newMapper(t, doc, cfg)
	closed, _, err := m2.Generate("mem://o.json", "Closed", "types")
	if err != nil {
		t.Fatalf("generate closed: %v", err)
	}
	if closed.Extra != nil {
		t.Fatalf("config must suppress the implicit extension point")
	}
}

func TestArrayRule(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://a.json": []byte(`{
			"type":"object",
			"properties":{
				"tags":{"type":"array","items":{"type":"string"},"uniqueItems":true},
				"stuff":{"type":"array"}
			}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://a.json", "Doc", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	tags, _ := root.FieldByName("tags")
	if tags == nil || tags.Type.Kind != model.KindArray {
		t.Fatalf("tags must be an array type")
	}
	if tags.Type.Elem.Kind != model.KindString {
		t.Fatalf("tags element kind = %v", tags.Type.Elem.Kind)
	}
	if !tags.Type.Unique {
		t.Fatalf("uniqueItems must flag set semantics")
	}
	stuff, _ := root.FieldByName("stuff")
	if stuff == nil || stuff.Type.Elem.Kind != model.KindAny {
		t.Fatalf("absent items must default to the open element type")
	}
}

func TestCrossDocumentDedup(t *testing.T) {
	m, store := newMapper(t, map[string][]byte{
		"mem://a.json": []byte(`{
			"type":"object",
			"properties":{"name":{"type":"string"}}
		}`),
		"mem://b.json": []byte(`{
			"type":"object",
			"properties":{"a":{"$ref":"mem://a.json"}}
		}`),
	}, nil)
	rootA, _, err := m.Generate("mem://a.json", "A", "types")
	if err != nil {
		t.Fatalf("generate A: %v", err)
	}
	countA := store.TypeCount()
	rootB, _, err := m.Generate("mem://b.json", "B", "types")
	if err != nil {
		t.Fatalf("generate B: %v", err)
	}
	// B adds exactly one genuinely new type: its own root object.
	if got := store.TypeCount(); got != countA+1 {
		t.Fatalf("combined run type count = %d, want %d", got, countA+1)
	}
	aField, _ := rootB.FieldByName("a")
	if aField == nil || aField.Type != rootA {
		t.Fatalf("B's reference to A's root must reuse the identical generated type")
	}
}

func TestRefSiblingDescriptionAnnotatesUseSite(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://a.json": []byte(`{
			"type":"object",
			"definitions":{"addr":{"type":"object","description":"an address","properties":{"city":{"type":"string"}}}},
			"properties":{
				"home":{"$ref":"#/definitions/addr","description":"use site"}
			}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://a.json", "Person", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	home, _ := root.FieldByName("home")
	if home == nil {
		t.Fatalf("home field missing")
	}
	if home.Doc.Description != "use site" {
		t.Fatalf("sibling description must annotate the field, got %q", home.Doc.Description)
	}
	if home.Type.Doc.Description != "an address" {
		t.Fatalf("referenced type must keep its own description, got %q", home.Type.Doc.Description)
	}
}

func TestPureRefCycleIsRecoverable(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://loop.json": []byte(`{"$ref":"#"}`),
	}, nil)
	root, warnings, err := m.Generate("mem://loop.json", "Loop", "types")
	if err != nil {
		t.Fatalf("a pure $ref cycle must not be fatal: %v", err)
	}
	if root.Kind != model.KindAny {
		t.Fatalf("pure $ref cycle must fall back to the open value type")
	}
	found := false
	for _, w := range warnings {
		if w.Code == structgen.CodeUnsupportedConstruct {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an unsupported-construct warning, got %v", warnings)
	}
}

func TestUnknownFormatIsRecoverable(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://f.json": []byte(`{
			"type":"object",
			"properties":{
				"when":{"type":"string","format":"date-time"},
				"odd":{"type":"string","format":"no-such-format"}
			}
		}`),
	}, nil)
	root, warnings, err := m.Generate("mem://f.json", "Stamped", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	when, _ := root.FieldByName("when")
	if when == nil || when.Type.Format != "date-time" {
		t.Fatalf("recognized format must refine the primitive")
	}
	odd, _ := root.FieldByName("odd")
	if odd == nil || odd.Type.Format != "" {
		t.Fatalf("unknown format must be ignored")
	}
	found := false
	for _, w := range warnings {
		if w.Code == structgen.CodeUnknownFormat {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown format must surface a warning")
	}
}

func TestExtendsAttachesSupertype(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://c.json": []byte(`{
			"type":"object",
			"extends":{"type":"object","properties":{"id":{"type":"string"}}},
			"properties":{"name":{"type":"string"}}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://c.json", "Child", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if root.Super == nil {
		t.Fatalf("extends must attach a supertype")
	}
	if _, ok := root.Super.FieldByName("id"); !ok {
		t.Fatalf("supertype must carry its own fields")
	}
	if _, ok := root.FieldByName("id"); ok {
		t.Fatalf("inherited fields must not be redeclared on the child")
	}
}

func TestMediaRule(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://m.json": []byte(`{
			"type":"object",
			"properties":{"payload":{"type":"string","contentEncoding":"base64"}}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://m.json", "Blob", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	payload, _ := root.FieldByName("payload")
	if payload == nil || payload.Type.Kind != model.KindBytes {
		t.Fatalf("base64 content must become a byte payload")
	}
	if payload.Type.Format != "base64" {
		t.Fatalf("encoding must be recorded as the format")
	}
}

func TestValidationConstraints(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://v.json": []byte(`{
			"type":"object",
			"properties":{
				"count":{"type":"integer","minimum":1,"maximum":10,"multipleOf":2},
				"name":{"type":"string","minLength":2,"maxLength":64,"pattern":"^[a-z]+$"},
				"tags":{"type":"array","items":{"type":"string"},"minItems":1,"maxItems":5}
			}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://v.json", "Constrained", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	count, _ := root.FieldByName("count")
	if c := count.Constraints; *c.Minimum != 1 || *c.Maximum != 10 || *c.MultipleOf != 2 {
		t.Fatalf("numeric constraints misapplied: %+v", c)
	}
	name, _ := root.FieldByName("name")
	if c := name.Constraints; *c.MinLength != 2 || *c.MaxLength != 64 || c.Pattern != "^[a-z]+$" {
		t.Fatalf("string constraints misapplied: %+v", c)
	}
	tags, _ := root.FieldByName("tags")
	if c := tags.Constraints; *c.MinItems != 1 || *c.MaxItems != 5 {
		t.Fatalf("array constraints misapplied: %+v", c)
	}
}

func TestAugmentationRules(t *testing.T) {
	cfg := structgen.DefaultConfig()
	cfg.IncludeConstructors = true
	cfg.GenerateBuilders = true
	cfg.IncludeDynamicAccessors = true
	m, _ := newMapper(t, map[string][]byte{
		"mem://a.json": []byte(`{
			"type":"object",
			"required":["id","name"],
			"properties":{
				"id":{"type":"string"},
				"name":{"type":"string"},
				"note":{"type":"string"}
			}
		}`),
	}, cfg)
	root, _, err := m.Generate("mem://a.json", "Entity", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(root.CtorParams) != 2 || root.CtorParams[0] != "id" || root.CtorParams[1] != "name" {
		t.Fatalf("constructor params = %v, want required fields in declaration order", root.CtorParams)
	}
	if !root.Builder || !root.DynamicAccessors {
		t.Fatalf("builder and dynamic accessor markers must be set")
	}
}

func TestNestedValidCascade(t *testing.T) {
	m, _ := newMapper(t, map[string][]byte{
		"mem://n.json": []byte(`{
			"type":"object",
			"properties":{
				"addr":{"type":"object","properties":{"city":{"type":"string"}}},
				"addrs":{"type":"array","items":{"type":"object","properties":{"city":{"type":"string"}}}},
				"plain":{"type":"string"}
			}
		}`),
	}, nil)
	root, _, err := m.Generate("mem://n.json", "Person", "types")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	addr, _ := root.FieldByName("addr")
	addrs, _ := root.FieldByName("addrs")
	plain, _ := root.FieldByName("plain")
	if !addr.ValidateNested || !addrs.ValidateNested {
		t.Fatalf("object payloads must cascade validation")
	}
	if plain.ValidateNested {
		t.Fatalf("scalar fields must not cascade")
	}
}

func TestApplyUniformContract(t *testing.T) {
	store := schema.NewStore(schema.MapFetcher{
		"mem://a.json": []byte(`{"type":"object","properties":{"x":{"type":"string"}}}`),
	})
	f, err := rules.NewFactory(nil, store, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	rc := f.NewContext()
	node, err := store.Resolve("mem://a.json", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	out, err := f.Apply(rc, rules.RuleSchema, "Thing", node, "types")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	ty, ok := out.(*model.Type)
	if !ok || ty.Kind != model.KindObject {
		t.Fatalf("schema rule output = %T", out)
	}
	if _, err := f.Apply(rc, "no-such-rule", "", node, nil); err == nil {
		t.Fatalf("unknown rule keys must fail")
	}
}

func TestRegisterOverridesRule(t *testing.T) {
	store := schema.NewStore(schema.MapFetcher{
		"mem://a.json": []byte(`{"type":"object"}`),
	})
	f, err := rules.NewFactory(nil, store, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	called := false
	f.Register(rules.RuleTitle, func(rc *rules.Context, name string, node *schema.Node, target any) (any, error) {
		called = true
		return target, nil
	})
	rc := f.NewContext()
	node, _ := store.Resolve("mem://a.json", nil)
	if _, err := f.Apply(rc, rules.RuleTitle, "", node, model.NewType("", model.KindObject, "T", "")); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !called {
		t.Fatalf("registered override must be dispatched")
	}
}
