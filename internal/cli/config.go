package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blueberrypy/blueberry/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect application configuration",
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an application configuration directory",
	Long: `Check an application configuration directory.

Loads app.yml (plus app.override.yml, logging.yml and bundles.yml) for
the chosen environment, applies the ` + config.EnvVarName + ` overlay
and reports configuration problems.`,
	RunE: runConfigCheck,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCheckCmd)

	configCheckCmd.Flags().String("config-dir", "config", "Application configuration directory")
	configCheckCmd.Flags().String("env", "", "Environment (development, production, test_suite)")
}

// runConfigCheck loads and validates the configuration.
func runConfigCheck(cmd *cobra.Command, _ []string) error {
	configDir := getStringFlag(cmd, "config-dir")
	environment := getStringFlag(cmd, "env")

	cfg, err := config.NewLoader(nil).Load(configDir, environment)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	warnings, err := config.Validate(cfg)
	for _, w := range warnings {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Warning: "+w))
	}
	if err != nil {
		var verrs *config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs.Errors {
				_, _ = fmt.Fprintf(out, "%s %s: %s\n", cliError.Render("✗"), ve.Field, ve.Message)
			}
		}
		return fmt.Errorf("configuration check failed: %w", err)
	}

	details := []string{renderKeyValueLines([]kvPair{
		{"Directory", cfg.ConfigDir},
		{"Files", fmt.Sprintf("%d loaded", len(cfg.FilePaths))},
		{"SQLAlchemy", onOff(cfg.UseSQLAlchemy())},
		{"redis", onOff(cfg.UseRedis())},
		{"Jinja2", onOff(cfg.UseJinja2())},
		{"webassets", onOff(cfg.UseWebassets())},
	})}
	_, _ = fmt.Fprintln(out, renderSuccessCard("Configuration looks good", details...))
	return nil
}
