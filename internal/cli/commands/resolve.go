package commands

import (
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command
func NewResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve SCHEMA",
		Short: "Print the schema with every internal $ref inlined",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			s, err := e.loadSchema(args[0])
			if err != nil {
				return err
			}
			return e.write(cmd, s.Document())
		},
	}
}
