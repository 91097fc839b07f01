package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/reoring/schemawalk"
	"github.com/reoring/schemawalk/source"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate SCHEMA DATA",
		Short: "Validate a JSON/YAML document against a schema",
		Long: `Validate a JSON/YAML document against a schema.

Each failure is reported with its model path, the failing keyword and the
message built from the property's display metadata. The command exits with a
non-zero status when the document is invalid.`,
		Args: cobra.ExactArgs(2),
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

			successColor := color.New(color.FgGreen, color.Bold)
			errorColor := color.New(color.FgRed, color.Bold)

			err = s.Validate(data)
			if err == nil {
				successColor.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", args[1])
				return nil
			}
			iss, ok := schemawalk.AsIssues(err)
			if !ok {
				return err
			}
			errorColor.Fprintf(cmd.ErrOrStderr(), "✗ %s has %d error(s)\n", args[1], len(iss))
			renderIssues(cmd, iss)
			return fmt.Errorf("validation failed: %w", err)
		},
	}
}

func renderIssues(cmd *cobra.Command, iss schemawalk.Issues) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Path", "Keyword", "Message"})
	table.SetAutoWrapText(false)
	for _, it := range iss {
		path := it.Path
		if path == "" {
			path = "(root)"
		}
		table.Append([]string{path, it.Code, it.Message})
	}
	table.Render()
}
