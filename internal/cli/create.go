package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blueberrypy/blueberry/internal/cli/wizard"
	"github.com/blueberrypy/blueberry/internal/core/project"
	"github.com/blueberrypy/blueberry/internal/manifest"
	"github.com/blueberrypy/blueberry/internal/template"
)

var createCmd = &cobra.Command{
	Use:   "create [path]",
	Short: "Create a project skeleton",
	Long: `Create a project skeleton.

Without flags and on a terminal, an interactive wizard collects the
project metadata and subsystem choices. The skeleton is created under
the given path (default: the current directory) together with a
generated package manifest.

Examples:
  blueberry create my-app            Create ./my-app/ interactively
  blueberry create --non-interactive --package my_app --project-version 0.1.0
  blueberry create --dry-run         Show what would be created`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().String("path", "", "Project root directory (default: current directory)")
	createCmd.Flags().String("name", "", "Project name (default: directory name)")
	createCmd.Flags().String("package", "", "Package name (lowercase identifier)")
	createCmd.Flags().String("project-version", "", "Initial version")
	createCmd.Flags().String("author", "", "Author name")
	createCmd.Flags().String("email", "", "Author email")
	createCmd.Flags().Bool("use-controller", true, "Scaffold templating-engine-backed controllers")
	createCmd.Flags().Bool("use-rest-controller", false, "Scaffold RESTful controllers")
	createCmd.Flags().Bool("use-jinja2", true, "Use the Jinja2 templating engine")
	createCmd.Flags().Bool("use-webassets", true, "Use the webassets asset management framework")
	createCmd.Flags().Bool("use-redis", false, "Use redis-backed sessions")
	createCmd.Flags().Bool("use-sqlalchemy", true, "Use the SQLAlchemy ORM")
	createCmd.Flags().String("driver", "", "Database driver package")
	createCmd.Flags().String("sqlalchemy-url", "sqlite://", "Database connection URL")
	createCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
	createCmd.Flags().Bool("force", false, "Create over an existing project")
	createCmd.Flags().BoolP("dry-run", "d", false, "Do not write the skeleton; print what would be created")
}

// runCreate executes the project creation workflow.
func runCreate(cmd *cobra.Command, args []string) error {
	opts, err := collectCreateOptions(cmd, args)
	if err != nil {
		return err
	}
	opts = opts.Normalize()

	if getBoolFlag(cmd, "dry-run") {
		return printDryRun(cmd, opts)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	initializer := project.NewInitializer(nil, nil)
	result, err := initializer.Init(ctx, opts)
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	printCreateSummary(cmd, opts, result)
	return nil
}

// collectCreateOptions merges positional argument, flags and wizard
// answers into InitOptions.
func collectCreateOptions(cmd *cobra.Command, args []string) (project.InitOptions, error) {
	root := getStringFlag(cmd, "path")
	if root == "" && len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return project.InitOptions{}, fmt.Errorf("get working directory: %w", err)
		}
		root = cwd
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return project.InitOptions{}, fmt.Errorf("resolve project path %q: %w", root, err)
	}

	opts := project.InitOptions{
		ProjectRoot:       absRoot,
		ProjectName:       getStringFlag(cmd, "name"),
		Package:           getStringFlag(cmd, "package"),
		Version:           getStringFlag(cmd, "project-version"),
		Author:            getStringFlag(cmd, "author"),
		Email:             getStringFlag(cmd, "email"),
		UseController:     getBoolFlag(cmd, "use-controller"),
		UseRESTController: getBoolFlag(cmd, "use-rest-controller"),
		UseJinja2:         getBoolFlag(cmd, "use-jinja2"),
		UseWebassets:      getBoolFlag(cmd, "use-webassets"),
		UseRedis:          getBoolFlag(cmd, "use-redis"),
		UseSQLAlchemy:     getBoolFlag(cmd, "use-sqlalchemy"),
		Driver:            getStringFlag(cmd, "driver"),
		SQLAlchemyURL:     getStringFlag(cmd, "sqlalchemy-url"),
		Force:             getBoolFlag(cmd, "force"),
	}

	interactive := !getBoolFlag(cmd, "non-interactive") && isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		answers, err := wizard.RunDefault()
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Creation cancelled.")
				return project.InitOptions{}, err
			}
			return project.InitOptions{}, fmt.Errorf("wizard failed: %w", err)
		}
		applyWizardAnswers(&opts, answers)
	}

	if opts.ProjectName == "" {
		opts.ProjectName = filepath.Base(absRoot)
	}
	if opts.Package == "" {
		opts.Package = template.Snake(opts.ProjectName)
	}
	return opts, nil
}

// applyWizardAnswers copies wizard answers into the options. Wizard
// values win: the user just confirmed them interactively.
func applyWizardAnswers(opts *project.InitOptions, answers *wizard.Result) {
	opts.ProjectName = answers.ProjectName
	opts.Package = answers.Package
	opts.Version = answers.Version
	opts.Author = answers.Author
	opts.Email = answers.Email
	opts.UseController = answers.UseController
	opts.UseRESTController = answers.UseRESTController
	opts.UseJinja2 = answers.UseJinja2
	opts.UseWebassets = answers.UseWebassets
	opts.UseRedis = answers.UseRedis
	opts.UseSQLAlchemy = answers.UseSQLAlchemy
	opts.Driver = answers.Driver
	opts.SQLAlchemyURL = answers.SQLAlchemyURL
}

// printDryRun prints the generated manifest and the files a real run
// would create, without touching the filesystem. The listing goes
// through the same subsystem filter Deploy applies.
func printDryRun(cmd *cobra.Command, opts project.InitOptions) error {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Would create under %s:\n\n", opts.ProjectRoot)
	deployer := template.NewDeployer(template.SkeletonFS())
	for _, name := range deployer.ListTemplates(opts.ScaffoldContext()) {
		_, _ = fmt.Fprintf(out, "  %s\n", template.DestinationPath(name, opts.Package))
	}
	_, _ = fmt.Fprintf(out, "  %s\n\n", project.ManifestFileName)

	_, _ = fmt.Fprintf(out, "%s:\n\n", project.ManifestFileName)
	_, _ = fmt.Fprint(out, string(manifest.Generate(opts.ManifestConfig())))
	return nil
}

// printCreateSummary renders the creation summary card in the style of
// the skeleton footer.
func printCreateSummary(cmd *cobra.Command, opts project.InitOptions, result *project.InitResult) {
	subsystems := renderKeyValueLines([]kvPair{
		{"Routes (RESTful controllers)", onOff(opts.UseRESTController)},
		{"Jinja2", onOff(opts.UseJinja2)},
		{"webassets", onOff(opts.UseWebassets)},
		{"redis", onOff(opts.UseRedis)},
		{"SQLAlchemy", onOff(opts.UseSQLAlchemy)},
	})

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
			{"Manifest", result.ManifestPath},
		}),
		"Subsystems chosen\n" + subsystems,
	}
	if len(result.SkippedFiles) > 0 {
		details = append(details, cliWarn.Render(
			fmt.Sprintf("Left alone: %s", strings.Join(result.SkippedFiles, ", "))))
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(
		fmt.Sprintf("Project skeleton created under %s", opts.ProjectRoot), details...))
	_, _ = fmt.Fprintln(out, "\nYou can now install your package for development with:\n\n  $ pip install -e .")
}
