package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// applyType decides which shape rule applies. Precedence: enum keyword >
// type:array > type:object or bare properties > primitive type (refined by
// the format and media rules) > untyped falls back to the open any value.
// $ref does not appear here; the schema rule strips it first.
func (f *Factory) applyType(rc *Context, name string, node *schema.Node, container string) (*model.Type, error) {
	if node.Has("enum") {
		return f.applyEnum(rc, name, node, container)
	}
	typ, typed := node.Str("type")
	switch {
	case typ == "array":
		return f.applyArray(rc, name, node, container)
	case typ == "object" || node.Has("properties"):
		return f.applyObject(rc, name, node, container)
	case typ == "string":
		t := f.applyFormat(rc, node, model.Primitive(model.KindString))
		return f.applyMedia(rc, node, t), nil
	case typ == "integer":
		t := model.Primitive(model.KindInteger)
		if f.cfg.UseLongIntegers {
			t.Format = "int64"
		}
		return f.applyFormat(rc, node, t), nil
	case typ == "number":
		t := model.Primitive(model.KindNumber)
		if f.cfg.UseBigDecimals {
			t.Format = "decimal"
		}
		return f.applyFormat(rc, node, t), nil
	case typ == "boolean":
		return model.Primitive(model.KindBoolean), nil
	case typ == "null":
		return model.Primitive(model.KindAny), nil
	case !typed && node.Has("type"):
		// type present but not a string (e.g. a draft-2019 type array).
		rc.warn(structgen.CodeUnsupportedConstruct, "type", node, "non-string type keyword")
		return model.Primitive(model.KindAny), nil
	case typed:
		rc.warn(structgen.CodeUnsupportedConstruct, "type", node, "unknown type "+typ)
		return model.Primitive(model.KindAny), nil
	default:
		return model.Primitive(model.KindAny), nil
	}
}
