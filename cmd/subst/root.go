package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "subst",
	Short: "Path-based placeholder substitution for strings",
	Long: `Subst replaces placeholders of the form {key.path} in a template with
values looked up from a YAML or JSON data document.

Placeholders whose path cannot be found are left in the output unchanged;
drilling a path into a plain scalar fails the whole render.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}
