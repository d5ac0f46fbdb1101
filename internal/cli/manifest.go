package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blueberrypy/blueberry/internal/config"
	"github.com/blueberrypy/blueberry/internal/manifest"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Generate and validate package manifests",
}

var manifestGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a package manifest",
	Long: `Generate a package manifest.

The project configuration is read either from a YAML file given with
--config, or derived from an application configuration directory given
with --config-dir. The manifest is written to stdout or to --output in
one of the supported formats.

Examples:
  blueberry manifest generate --config project.yml
  blueberry manifest generate --config-dir config --format yaml
  blueberry manifest generate --config project.yml --output package.manifest`,
	RunE: runManifestGenerate,
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a manifest document",
	Long: `Validate a manifest document against the manifest schema.

The file may be YAML or JSON. Validation issues are reported with their
document path.`,
	Args: cobra.ExactArgs(1),
	RunE: runManifestValidate,
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.AddCommand(manifestGenerateCmd)
	manifestCmd.AddCommand(manifestValidateCmd)

	manifestGenerateCmd.Flags().String("config", "", "Project configuration YAML file")
	manifestGenerateCmd.Flags().String("config-dir", "", "Application configuration directory")
	manifestGenerateCmd.Flags().String("env", "", "Environment for --config-dir (development, production, test_suite)")
	manifestGenerateCmd.Flags().StringP("format", "f", string(manifest.FormatText),
		fmt.Sprintf("Output format: %s", strings.Join(formatNames(), ", ")))
	manifestGenerateCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}

func formatNames() []string {
	names := make([]string, len(manifest.ValidFormats))
	for i, f := range manifest.ValidFormats {
		names[i] = string(f)
	}
	return names
}

// runManifestGenerate generates a manifest from a project configuration.
func runManifestGenerate(cmd *cobra.Command, _ []string) error {
	format := manifest.Format(getStringFlag(cmd, "format"))
	if !manifest.IsValidFormat(string(format)) {
		return fmt.Errorf("invalid --format value %q: must be one of: %s",
			format, strings.Join(formatNames(), ", "))
	}

	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}

	out, err := manifest.Build(cfg).Encode(format)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if output := getStringFlag(cmd, "output"); output != "" {
		if err := os.WriteFile(output, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), cliSuccess.Render("✓ ")+output)
		return nil
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

// loadProjectConfig reads the project configuration from --config or
// derives it from --config-dir.
func loadProjectConfig(cmd *cobra.Command) (manifest.ProjectConfig, error) {
	configFile := getStringFlag(cmd, "config")
	configDir := getStringFlag(cmd, "config-dir")

	switch {
	case configFile != "" && configDir != "":
		return manifest.ProjectConfig{}, fmt.Errorf("--config and --config-dir are mutually exclusive")
	case configFile != "":
		data, err := os.ReadFile(configFile)
		if err != nil {
			return manifest.ProjectConfig{}, fmt.Errorf("read %s: %w", configFile, err)
		}
		cfg, err := manifest.DecodeProjectConfig(data)
		if err != nil {
			return manifest.ProjectConfig{}, fmt.Errorf("parse %s: %w", configFile, err)
		}
		return cfg, nil
	case configDir != "":
		loaded, err := config.NewLoader(nil).Load(configDir, getStringFlag(cmd, "env"))
		if err != nil {
			return manifest.ProjectConfig{}, err
		}
		if _, err := config.Validate(loaded); err != nil {
			return manifest.ProjectConfig{}, fmt.Errorf("configuration in %s: %w", configDir, err)
		}
		return loaded.ProjectConfig(), nil
	default:
		return manifest.ProjectConfig{}, fmt.Errorf("one of --config or --config-dir is required")
	}
}

// runManifestValidate validates a manifest document against the schema.
func runManifestValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return fmt.Errorf("validate %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if result.Valid {
		_, _ = fmt.Fprintln(out, cliSuccess.Render("✓ ")+args[0]+" is a valid manifest")
		return nil
	}

	_, _ = fmt.Fprintln(out, cliError.Render("✗ ")+args[0]+" is not a valid manifest")
	for _, issue := range result.Issues {
		path := issue.Path
		if path == "" {
			path = "/"
		}
		_, _ = fmt.Fprintf(out, "  %s %s\n", cliKey.Render(path), issue.Message)
	}
	return fmt.Errorf("%d validation issue(s)", len(result.Issues))
}
