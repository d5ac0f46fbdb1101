package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blueberrypy/blueberry/internal/update"
	"github.com/blueberrypy/blueberry/pkg/version"
)

// updateCheckTimeout bounds the release API call.
const updateCheckTimeout = 10 * time.Second

// updateAPIURL is overridable in tests.
var updateAPIURL = ""

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer blueberry release",
	RunE:  runUpdateCheck,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// runUpdateCheck queries the release API and reports whether a newer
// version exists.
func runUpdateCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	checker := update.NewChecker(updateAPIURL, nil)
	available, info, err := checker.IsUpdateAvailable(ctx, version.GetVersion())
	if err != nil {
		return fmt.Errorf("update check: %w", err)
	}

	out := cmd.OutOrStdout()
	if !available {
		_, _ = fmt.Fprintf(out, "blueberry %s is up to date.\n", version.GetVersion())
		return nil
	}

	details := []string{renderKeyValueLines([]kvPair{
		{"Current", version.GetVersion()},
		{"Latest", info.Version},
		{"Published", info.Date.Format("2006-01-02")},
	})}
	if info.URL != "" {
		details = append(details, "Download: "+info.URL)
	}
	_, _ = fmt.Fprintln(out, renderSuccessCard("A newer release is available", details...))
	return nil
}
