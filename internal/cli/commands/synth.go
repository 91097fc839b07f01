package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/schemawalk"
	"github.com/reoring/schemawalk/source"
)

// NewSynthCommand creates the synth command
func NewSynthCommand() *cobra.Command {
	var (
		path      string
		typeOnly  bool
		keepEmpty bool
		examples  string
		element   bool
		variant   int
	)
	cmd := &cobra.Command{
		Use:   "synth SCHEMA",
		Short: "Synthesize a representative instance of a schema",
		Long: `Synthesize a representative instance of a schema from its examples,
defaults and type defaults.

Examples:
  schemawalk synth order.schema.yaml                       # whole document
  schemawalk synth order.schema.yaml --path customer       # one subschema
  schemawalk synth order.schema.yaml --path lines --element --variant 1
  schemawalk synth order.schema.yaml --examples cache.json # external example cache`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			s, err := e.loadSchema(args[0])
			if err != nil {
				return err
			}
			node := s.Root()
			if path != "" {
				var ok bool
				if node, ok = s.Lookup(path); !ok {
					return fmt.Errorf("no subschema at %q", path)
				}
			}
			if element {
				var chosen schemawalk.Node
				if variants, ok := node.Variants(); ok {
					if variant < 0 || variant >= len(variants) {
						return fmt.Errorf("--variant must be between 0 and %d", len(variants)-1)
					}
					chosen = variants[variant]
				}
				v, err := schemawalk.CreateVariantElement(node, chosen)
				if err != nil {
					return err
				}
				return e.write(cmd, v)
			}
			opts := schemawalk.SynthesizeOptions{TypeOnly: typeOnly, KeepEmpty: keepEmpty}
			if examples != "" {
				if opts.Examples, err = source.Load(examples); err != nil {
					return err
				}
			}
			v, err := schemawalk.Synthesize(node, opts)
			if err != nil {
				return err
			}
			return e.write(cmd, v)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Model path of the subschema to synthesize")
	cmd.Flags().BoolVar(&typeOnly, "type-only", false, "Produce bare type shapes, ignoring examples and defaults")
	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Keep empty branches in the result")
	cmd.Flags().StringVar(&examples, "examples", "", "JSON/YAML file used as an external example cache")
	cmd.Flags().BoolVar(&element, "element", false, "Synthesize a new element of the array at --path")
	cmd.Flags().IntVar(&variant, "variant", -1, "oneOf member index used with --element")
	return cmd
}
