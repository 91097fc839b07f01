package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reoring/schemawalk"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemawalk",
		Short: "Resolve, synthesize, walk and validate JSON-Schema-driven data",
		Long: color.CyanString(`schemawalk - schema-driven data scaffolding

schemawalk reads a JSON or YAML schema document, inlines its internal $refs and
walks it together with your data:

  • resolve   print the fully inlined schema
  • synth     synthesize a representative instance or array element
  • validate  validate data and print per-property messages
  • walk      list every schema/value pair of a document
  • variant   show which oneOf variant each array element matches`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default ./schemawalk.yaml)")
	pf.StringP("output", "o", "json", "Output format: json or yaml")
	pf.String("lang", "en", "Message language: en or ja")
	pf.String("display-key", schemawalk.DefaultDisplayKey, "Schema keyword holding label/message metadata")
	pf.Int("max-reference-passes", 0, "Maximum number of $ref inlines (0 = default)")
	pf.String("crd-kind", "", "Read the schema from the CustomResourceDefinition of this kind")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewSynthCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewWalkCommand())
	rootCmd.AddCommand(NewVariantCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "schemawalk version: ")
			fmt.Fprintln(out, Version)
			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)
			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, BuildDate)
			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, goVer)
		},
	}
}
