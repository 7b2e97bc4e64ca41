package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// knownFormats maps a format keyword to the primitive kinds it may refine.
var knownFormats = map[string][]model.Kind{
	"date-time":     {model.KindString},
	"date":          {model.KindString},
	"time":          {model.KindString},
	"duration":      {model.KindString},
	"uuid":          {model.KindString},
	"uri":           {model.KindString},
	"uri-reference": {model.KindString},
	"email":         {model.KindString},
	"hostname":      {model.KindString},
	"ipv4":          {model.KindString},
	"ipv6":          {model.KindString},
	"regex":         {model.KindString},
	"int32":         {model.KindInteger},
	"int64":         {model.KindInteger},
	"float":         {model.KindNumber},
	"double":        {model.KindNumber},
	"decimal":       {model.KindNumber},
}

// applyFormat refines a primitive's representation from the format keyword.
// An unrecognized format, or one that does not apply to the primitive's kind,
// is ignored with a warning; a format hint is never fatal.
func (f *Factory) applyFormat(rc *Context, node *schema.Node, t *model.Type) *model.Type {
	format, ok := node.Str("format")
	if !ok || format == "" {
		return t
	}
	kinds, known := knownFormats[format]
	if !known {
		rc.warn(structgen.CodeUnknownFormat, "format", node, "format "+format+" ignored")
		return t
	}
	for _, k := range kinds {
		if t.Kind == k {
			t.Format = format
			return t
		}
	}
	rc.warn(structgen.CodeUnknownFormat, "format", node, "format "+format+" does not apply to "+t.Kind.String())
	return t
}

// applyMedia handles content-encoded string fields: a contentEncoding of
// base64 or binary turns the field into a byte payload carrying the encoding
// as its format.
func (f *Factory) applyMedia(rc *Context, node *schema.Node, t *model.Type) *model.Type {
	if t.Kind != model.KindString {
		return t
	}
	enc, ok := node.Str("contentEncoding")
	if !ok {
		return t
	}
	switch enc {
	case "base64", "binary":
		t.Kind = model.KindBytes
		t.Format = enc
	default:
		rc.warn(structgen.CodeUnsupportedConstruct, "contentEncoding", node, "encoding "+enc+" ignored")
	}
	return t
}
