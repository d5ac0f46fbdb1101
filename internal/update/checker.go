// Package update checks for newer released versions of the tool.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// DefaultAPIURL is the GitHub Releases endpoint queried for the latest
// release.
const DefaultAPIURL = "https://api.github.com/repos/blueberrypy/blueberry/releases/latest"

// VersionInfo describes the latest published release.
type VersionInfo struct {
	Version string    // Release tag, e.g. "v0.8.0".
	Date    time.Time // Publication timestamp.
	URL     string    // Download URL for this platform's archive, if any.
}

// Checker queries for the latest released version.
type Checker interface {
	// CheckLatest fetches the latest release metadata.
	CheckLatest(ctx context.Context) (*VersionInfo, error)

	// IsUpdateAvailable reports whether a release newer than current
	// exists, returning its metadata when it does.
	IsUpdateAvailable(ctx context.Context, current string) (bool, *VersionInfo, error)
}

// releaseResponse represents the GitHub Releases API JSON response.
type releaseResponse struct {
	TagName     string          `json:"tag_name"`
	PublishedAt time.Time       `json:"published_at"`
	Assets      []assetResponse `json:"assets"`
}

type assetResponse struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type checker struct {
	apiURL string
	client *http.Client
}

// NewChecker creates a Checker that queries the given API URL. An empty
// apiURL falls back to DefaultAPIURL; for testing, pass the
// httptest.Server URL directly.
func NewChecker(apiURL string, client *http.Client) Checker {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &checker{apiURL: apiURL, client: client}
}

// CheckLatest fetches the latest release metadata from GitHub.
func (c *checker) CheckLatest(ctx context.Context) (*VersionInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("checker: create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "blueberry-updater")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checker: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("checker: no release found (status 404)")
		}
		return nil, fmt.Errorf("checker: unexpected status %d", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("checker: decode response: %w", err)
	}

	info := &VersionInfo{
		Version: release.TagName,
		Date:    release.PublishedAt,
	}

	// Archive format: blueberry_<version>_<os>_<arch>.tar.gz with the
	// tag's "v" prefix stripped.
	ext := "tar.gz"
	if runtime.GOOS == "windows" {
		ext = "zip"
	}
	archiveName := fmt.Sprintf("blueberry_%s_%s_%s.%s",
		strings.TrimPrefix(release.TagName, "v"), runtime.GOOS, runtime.GOARCH, ext)
	for _, asset := range release.Assets {
		if asset.Name == archiveName {
			info.URL = asset.BrowserDownloadURL
		}
	}

	return info, nil
}

// IsUpdateAvailable compares the current version against the latest
// release.
func (c *checker) IsUpdateAvailable(ctx context.Context, current string) (bool, *VersionInfo, error) {
	info, err := c.CheckLatest(ctx)
	if err != nil {
		return false, nil, err
	}

	latestVer, err := semver.NewVersion(strings.TrimPrefix(info.Version, "v"))
	if err != nil {
		return false, nil, fmt.Errorf("checker: parse latest version %q: %w", info.Version, err)
	}
	currentVer, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, nil, fmt.Errorf("checker: parse current version %q: %w", current, err)
	}

	if !latestVer.GreaterThan(currentVer) {
		return false, nil, nil
	}
	return true, info, nil
}
