// Package rules implements the rule dispatch engine: an ordered catalogue of
// transformations from schema constructs to effects on the generated type
// model. Rules call each other recursively through the engine; the schema
// rule is the entry point and the type rule is the shape-dispatch hub.
package rules

import (
	"fmt"

	"github.com/rs/zerolog"

	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/annotate"
	"github.com/structgen/structgen/i18n"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/naming"
	"github.com/structgen/structgen/schema"
)

// Stable rule keys. Apply looks rules up by these; Register extends the table
// under new keys.
const (
	RuleSchema               = "schema"
	RuleType                 = "type"
	RuleObject               = "object"
	RuleProperties           = "properties"
	RuleProperty             = "property"
	RuleArray                = "array"
	RuleEnum                 = "enum"
	RuleFormat               = "format"
	RuleMedia                = "media"
	RuleTitle                = "title"
	RuleDescription          = "description"
	RuleComment              = "comment"
	RuleRequired             = "required"
	RuleNotRequired          = "notRequired"
	RuleDefault              = "default"
	RuleMinimumMaximum       = "minimumMaximum"
	RuleMinItemsMaxItems     = "minItemsMaxItems"
	RuleMinLengthMaxLength   = "minLengthMaxLength"
	RuleDigits               = "digits"
	RulePattern              = "pattern"
	RuleValid                = "valid"
	RuleAdditionalProperties = "additionalProperties"
	RuleConstructor          = "constructor"
	RuleBuilder              = "builder"
	RuleDynamicProperties    = "dynamicProperties"
)

// ApplyFunc is one dispatch-table entry: apply the rule to node, mutating or
// producing target. name is the name hint for anything the rule creates (a
// property key, a root type name). The concrete target/output types are per
// rule and documented on the corresponding apply method.
type ApplyFunc func(rc *Context, name string, node *schema.Node, target any) (any, error)

// Factory holds the rule table and the collaborators every rule needs:
// configuration, the schema store, the naming helper and the annotator
// capability. It corresponds to one generation setup and may drive several
// runs against the same store.
type Factory struct {
	cfg       *structgen.Config
	store     *schema.Store
	names     *naming.Namer
	annotator annotate.Annotator
	log       zerolog.Logger
	rules     map[string]ApplyFunc

	typeScopes  map[string]*naming.Scope      // container -> claimed type names
	fieldScopes map[*model.Type]*naming.Scope // type -> claimed field names
}

// NewFactory wires a rule factory. A nil cfg falls back to DefaultConfig; a
// nil annotator falls back to the style named by the config.
func NewFactory(cfg *structgen.Config, store *schema.Store, ann annotate.Annotator, log zerolog.Logger) (*Factory, error) {
	if cfg == nil {
		cfg = structgen.DefaultConfig()
	}
	if ann == nil {
		var err error
		ann, err = annotate.ForStyle(cfg.AnnotationStyle)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Language != "" {
		i18n.SetLanguage(cfg.Language)
	}
	f := &Factory{
		cfg:         cfg,
		store:       store,
		names:       naming.New(cfg.FieldCase),
		annotator:   ann,
		log:         log,
		typeScopes:  map[string]*naming.Scope{},
		fieldScopes: map[*model.Type]*naming.Scope{},
	}
	f.rules = map[string]ApplyFunc{
		RuleSchema: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return f.applySchema(rc, name, node, asContainer(target))
		},
		RuleType: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return f.applyType(rc, name, node, asContainer(target))
		},
		RuleObject: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return f.applyObject(rc, name, node, asContainer(target))
		},
		RuleArray: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return f.applyArray(rc, name, node, asContainer(target))
		},
		RuleEnum: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return f.applyEnum(rc, name, node, asContainer(target))
		},
		RuleProperties: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleProperties, target)
			if err != nil {
				return nil, err
			}
			return t, f.applyProperties(rc, node, t)
		},
		RuleProperty: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleProperty, target)
			if err != nil {
				return nil, err
			}
			return t, f.applyProperty(rc, name, node, t)
		},
		RuleAdditionalProperties: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleAdditionalProperties, target)
			if err != nil {
				return nil, err
			}
			return t, f.applyAdditionalProperties(rc, node, t)
		},
		RuleConstructor: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleConstructor, target)
			if err != nil {
				return nil, err
			}
			f.applyConstructor(rc, t)
			return t, nil
		},
		RuleBuilder: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleBuilder, target)
			if err != nil {
				return nil, err
			}
			f.applyBuilder(rc, t)
			return t, nil
		},
		RuleDynamicProperties: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleDynamicProperties, target)
			if err != nil {
				return nil, err
			}
			f.applyDynamicProperties(rc, t)
			return t, nil
		},
		RuleFormat: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleFormat, target)
			if err != nil {
				return nil, err
			}
			return f.applyFormat(rc, node, t), nil
		},
		RuleMedia: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			t, err := asType(RuleMedia, target)
			if err != nil {
				return nil, err
			}
			return f.applyMedia(rc, node, t), nil
		},
		RuleTitle: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return target, f.applyTitle(node, target)
		},
		RuleDescription: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return target, f.applyDescription(node, target)
		},
		RuleComment: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			return target, f.applyComment(node, target)
		},
		RuleRequired: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleRequired, target)
			if err != nil {
				return nil, err
			}
			f.applyRequired(name, node, fl)
			return fl, nil
		},
		RuleNotRequired: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleNotRequired, target)
			if err != nil {
				return nil, err
			}
			f.applyNotRequired(name, node, fl)
			return fl, nil
		},
		RuleDefault: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleDefault, target)
			if err != nil {
				return nil, err
			}
			f.applyDefault(node, fl)
			return fl, nil
		},
		RuleMinimumMaximum: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleMinimumMaximum, target)
			if err != nil {
				return nil, err
			}
			f.applyMinimumMaximum(node, fl)
			return fl, nil
		},
		RuleMinItemsMaxItems: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleMinItemsMaxItems, target)
			if err != nil {
				return nil, err
			}
			f.applyMinItemsMaxItems(node, fl)
			return fl, nil
		},
		RuleMinLengthMaxLength: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleMinLengthMaxLength, target)
			if err != nil {
				return nil, err
			}
			f.applyMinLengthMaxLength(node, fl)
			return fl, nil
		},
		RuleDigits: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleDigits, target)
			if err != nil {
				return nil, err
			}
			f.applyDigits(node, fl)
			return fl, nil
		},
		RulePattern: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RulePattern, target)
			if err != nil {
				return nil, err
			}
			f.applyPattern(node, fl)
			return fl, nil
		},
		RuleValid: func(rc *Context, name string, node *schema.Node, target any) (any, error) {
			fl, err := asField(RuleValid, target)
			if err != nil {
				return nil, err
			}
			f.applyValid(node, fl)
			return fl, nil
		},
	}
	return f, nil
}

// Store exposes the schema store the factory resolves against.
func (f *Factory) Store() *schema.Store { return f.store }

// Config exposes the configuration the rules consult.
func (f *Factory) Config() *structgen.Config { return f.cfg }

// Register installs fn under the given rule key, replacing any existing
// entry. This is the open-extension point for custom rule sets.
func (f *Factory) Register(rule string, fn ApplyFunc) { f.rules[rule] = fn }

// Apply looks up the rule by its stable key and applies it to node with the
// given target construct, returning the output construct. It is the uniform
// dispatch contract; the built-in rules also reach each other through typed
// internal calls.
func (f *Factory) Apply(rc *Context, rule, name string, node *schema.Node, target any) (any, error) {
	fn, ok := f.rules[rule]
	if !ok {
		return nil, fmt.Errorf("rules: unknown rule %q", rule)
	}
	return fn(rc, name, node, target)
}

func asContainer(target any) string {
	s, _ := target.(string)
	return s
}

func asType(rule string, target any) (*model.Type, error) {
	t, ok := target.(*model.Type)
	if !ok {
		return nil, fmt.Errorf("rules: %s expects a *model.Type target, got %T", rule, target)
	}
	return t, nil
}

func asField(rule string, target any) (*model.Field, error) {
	fl, ok := target.(*model.Field)
	if !ok {
		return nil, fmt.Errorf("rules: %s expects a *model.Field target, got %T", rule, target)
	}
	return fl, nil
}
