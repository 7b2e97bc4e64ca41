// Command structgen resolves a JSON Schema document and prints the generated
// type model as JSON. Rendering the model into source text is left to
// downstream tooling; this command is the reference driver for the engine.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/rules"
	"github.com/structgen/structgen/schema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		container   string
		typeName    string
		annotations string
		verbose     bool
	)
	cmd := &cobra.Command{
		Use:          "structgen <schema-uri>",
		Short:        "generate a type model from a JSON Schema document",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := args[0]

			cfg := structgen.DefaultConfig()
			if cfgPath != "" {
				raw, err := os.ReadFile(cfgPath)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(raw, cfg); err != nil {
					return fmt.Errorf("config %s: %w", cfgPath, err)
				}
			}
			if annotations != "" {
				cfg.AnnotationStyle = annotations
			}
			if typeName == "" {
				typeName = nameFromURI(uri)
			}

			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()

			store := schema.NewStore(schema.FileFetcher{})
			factory, err := rules.NewFactory(cfg, store, nil, log)
			if err != nil {
				return err
			}
			_, warnings, err := rules.NewMapper(factory).Generate(uri, typeName, container)
			if err != nil {
				return err
			}
			if len(warnings) > 0 {
				log.Warn().Int("count", len(warnings)).Msg("generation finished with warnings")
			}

			out, err := json.MarshalIndent(model.Snapshot(store.Types()), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML generation config")
	cmd.Flags().StringVarP(&container, "package", "p", "types", "target container/package for generated types")
	cmd.Flags().StringVarP(&typeName, "name", "n", "", "root type name (defaults to the document name)")
	cmd.Flags().StringVarP(&annotations, "annotations", "a", "", "annotation style (none, json, or a registered style)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// nameFromURI derives a root type name hint from the document file name.
func nameFromURI(uri string) string {
	base := filepath.Base(strings.TrimPrefix(uri, "file://"))
	for _, ext := range []string{".json", ".yaml", ".yml", ".schema"} {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		return "Root"
	}
	return base
}
