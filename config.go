package structgen

// FieldCase selects the naming convention applied to generated field
// identifiers.
type FieldCase string

const (
	FieldCamel  FieldCase = "camel"
	FieldPascal FieldCase = "pascal"
	FieldSnake  FieldCase = "snake"
)

// Config bundles the generation options the rule set consults. It is consumed
// by the core, not owned by it; the surrounding tool decides how the values
// are populated (flags, config file, defaults).
type Config struct {
	// UseLongIntegers refines schema integers to a 64-bit representation.
	UseLongIntegers bool `yaml:"useLongIntegers"`
	// UseBigDecimals refines schema numbers to an arbitrary-precision decimal
	// representation instead of a float.
	UseBigDecimals bool `yaml:"useBigDecimals"`
	// GenerateBuilders marks generated object types for builder emission.
	GenerateBuilders bool `yaml:"generateBuilders"`
	// IncludeConstructors records a required-field constructor parameter list
	// on each generated object type.
	IncludeConstructors bool `yaml:"includeConstructors"`
	// IncludeDynamicAccessors marks object types for by-name get/set
	// accessors over their declared fields.
	IncludeDynamicAccessors bool `yaml:"includeDynamicAccessors"`
	// IncludeAdditionalProperties keeps objects open by default: absent or
	// boolean-true additionalProperties produces an any-valued extension
	// point. When false, absent additionalProperties yields no extension
	// point at all.
	IncludeAdditionalProperties bool `yaml:"includeAdditionalProperties"`
	// FieldCase is the case style for field identifiers.
	FieldCase FieldCase `yaml:"fieldCase"`
	// AnnotationStyle selects the annotator registered under this name. The
	// core passes it through; it never interprets the style itself.
	AnnotationStyle string `yaml:"annotationStyle"`
	// Language is the issue-message language for surfaced warnings.
	Language string `yaml:"language"`
}

// DefaultConfig mirrors the defaults of the original generator: open objects,
// camel-case fields, no augmentation rules, plain annotations off.
func DefaultConfig() *Config {
	return &Config{
		IncludeAdditionalProperties: true,
		FieldCase:                   FieldCamel,
		AnnotationStyle:             "none",
		Language:                    "en",
	}
}
