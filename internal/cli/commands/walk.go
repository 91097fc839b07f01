package commands

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/reoring/schemawalk"
	"github.com/reoring/schemawalk/source"
	"github.com/reoring/schemawalk/tree"
)

const maxValueWidth = 60

// NewWalkCommand creates the walk command
func NewWalkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "walk SCHEMA DATA",
		Short: "List every schema/value pair visited while walking a document",
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

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Path", "Type", "Value"})
			table.SetAutoWrapText(false)
			schemawalk.WalkModel(s.Root(), data, "", func(n schemawalk.Node, v tree.Value, path string) {
				if path == "" {
					path = "(root)"
				}
				table.Append([]string{path, typeLabel(n), valueLabel(v)})
			})
			table.Render()
			return nil
		},
	}
}

func typeLabel(n schemawalk.Node) string {
	types := n.Types()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	if _, union := n.Variants(); union {
		names = append(names, "oneOf")
	}
	return strings.Join(names, "|")
}

func valueLabel(v tree.Value) string {
	if v == nil {
		return "-"
	}
	b, err := tree.Encode(v)
	if err != nil {
		return "!" + err.Error()
	}
	s := string(b)
	if len(s) > maxValueWidth {
		s = s[:maxValueWidth-3] + "..."
	}
	return s
}
