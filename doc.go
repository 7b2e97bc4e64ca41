// Package structgen holds the shared vocabulary of the schema-driven type
// generator: generation configuration, issue codes, and the error taxonomy.
//
// The engine itself lives in the subpackages:
//
//   - schema:   reference resolution and the memoized schema store
//   - naming:   identifier normalization for the target language
//   - model:    the mutable generated-type model and compatibility checks
//   - rules:    the rule dispatch engine that turns schema nodes into types
//   - annotate: the pluggable serialization-annotation capability
//
// A typical run wires a schema.Store over a Fetcher, builds a rules.Factory
// with a Config and an Annotator, and applies the schema rule to the root
// schema node. The output is a closed graph of *model.Type values; rendering
// that graph into source text is a separate concern and not part of this
// module.
package structgen
