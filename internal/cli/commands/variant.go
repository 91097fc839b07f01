package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/reoring/schemawalk"
	"github.com/reoring/schemawalk/source"
	"github.com/reoring/schemawalk/tree"
)

// NewVariantCommand creates the variant command
func NewVariantCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "variant SCHEMA DATA --path ARRAY",
		Short: "Show which oneOf variant each element of an array matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			s, err := e.loadSchema(args[0])
			if err != nil {
				return err
			}
			data, err := source.Load(args[1])
			if err != nil {
				return err
			}
			node, ok := s.Lookup(path)
			if !ok {
				return fmt.Errorf("no subschema at %q", path)
			}
			variants, _ := node.Variants()
			raw, _ := tree.GetPath(data, path)
			arr, ok := tree.AsArray(raw)
			if !ok {
				return fmt.Errorf("%q is not an array in %s", path, args[1])
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Index", "Variant", "Title"})
			for i, el := range arr {
				m, found, err := schemawalk.WhichSubschema(node, el)
				if err != nil {
					return err
				}
				row := []string{strconv.Itoa(i), "-", ""}
				if found {
					for vi, candidate := range variants {
						if candidate.Same(m) {
							row[1] = strconv.Itoa(vi)
						}
					}
					if title, ok := m.Get("title"); ok {
						row[2], _ = tree.AsString(title)
					}
				}
				table.Append(row)
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Model path of the array (required)")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
