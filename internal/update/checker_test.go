package update

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckLatest(t *testing.T) {
	t.Run("parses_release", func(t *testing.T) {
		archive := fmt.Sprintf("blueberry_0.8.0_%s_%s.tar.gz", runtime.GOOS, runtime.GOARCH)
		srv := releaseServer(t, http.StatusOK, fmt.Sprintf(`{
			"tag_name": "v0.8.0",
			"published_at": "2026-08-01T12:00:00Z",
			"assets": [
				{"name": %q, "browser_download_url": "https://example.com/a.tar.gz"},
				{"name": "checksums.txt", "browser_download_url": "https://example.com/c.txt"}
			]
		}`, archive))

		info, err := NewChecker(srv.URL, srv.Client()).CheckLatest(context.Background())
		if err != nil {
			t.Fatalf("CheckLatest error: %v", err)
		}
		if info.Version != "v0.8.0" {
			t.Errorf("Version = %q", info.Version)
		}
		if info.URL != "https://example.com/a.tar.gz" {
			t.Errorf("URL = %q", info.URL)
		}
		want := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		if !info.Date.Equal(want) {
			t.Errorf("Date = %v", info.Date)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		srv := releaseServer(t, http.StatusNotFound, `{}`)

		if _, err := NewChecker(srv.URL, srv.Client()).CheckLatest(context.Background()); err == nil {
			t.Error("expected error for 404")
		}
	})

	t.Run("bad_json", func(t *testing.T) {
		srv := releaseServer(t, http.StatusOK, `{not json`)

		if _, err := NewChecker(srv.URL, srv.Client()).CheckLatest(context.Background()); err == nil {
			t.Error("expected decode error")
		}
	})
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{"newer_release", "v0.8.0", "v0.7.0", true},
		{"same_release", "v0.7.0", "v0.7.0", false},
		{"older_release", "v0.6.0", "v0.7.0", false},
		{"prerelease_older_than_final", "v0.8.0-rc.1", "v0.8.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, http.StatusOK,
				fmt.Sprintf(`{"tag_name": %q, "published_at": "2026-08-01T12:00:00Z", "assets": []}`, tt.latest))

			got, info, err := NewChecker(srv.URL, srv.Client()).IsUpdateAvailable(context.Background(), tt.current)
			if err != nil {
				t.Fatalf("IsUpdateAvailable error: %v", err)
			}
			if got != tt.want {
				t.Errorf("available = %v, want %v", got, tt.want)
			}
			if got && info == nil {
				t.Error("info is nil for an available update")
			}
		})
	}

	t.Run("unparseable_current_version", func(t *testing.T) {
		srv := releaseServer(t, http.StatusOK,
			`{"tag_name": "v0.8.0", "published_at": "2026-08-01T12:00:00Z", "assets": []}`)

		if _, _, err := NewChecker(srv.URL, srv.Client()).IsUpdateAvailable(context.Background(), "not-a-version"); err == nil {
			t.Error("expected parse error")
		}
	})
}
