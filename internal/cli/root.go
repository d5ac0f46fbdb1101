// Package cli implements the blueberry command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blueberrypy/blueberry/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "blueberry",
	Short: "blueberry: project scaffolding and manifest tooling",
	Long: `blueberry creates project skeletons and generates the package
manifest that describes them.

It scaffolds a source tree with environment-specific configuration,
derives the dependency list from the subsystems a project enables and
renders the result as a textual manifest or as YAML, TOML or JSON.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("blueberry %s\n", version.GetVersion()))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
