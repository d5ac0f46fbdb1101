package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRender(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.txt.tmpl": &fstest.MapFile{
			Data: []byte("Hello, {{ .ProjectName }}!"),
		},
		"quoted.yml.tmpl": &fstest.MapFile{
			Data: []byte("author: {{ yamlQuote .Author }}"),
		},
		"bad_syntax.tmpl": &fstest.MapFile{
			Data: []byte("{{ .Unclosed"),
		},
		"unknown_field.tmpl": &fstest.MapFile{
			Data: []byte("{{ .NoSuchField }}"),
		},
	}
	r := NewRenderer(fsys)

	t.Run("renders_context_fields", func(t *testing.T) {
		out, err := r.Render("greeting.txt.tmpl", NewScaffoldContext(
			WithProject("Bookstore", "bookstore", "0.1.1"),
		))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if got := string(out); got != "Hello, Bookstore!" {
			t.Errorf("Render = %q", got)
		}
	})

	t.Run("yamlQuote_escapes", func(t *testing.T) {
		out, err := r.Render("quoted.yml.tmpl", NewScaffoldContext(
			WithAuthor(`Rebecca "Becky" O'Neil`, "rebecca@example.com"),
		))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		want := `author: "Rebecca \"Becky\" O'Neil"`
		if got := string(out); got != want {
			t.Errorf("Render = %q, want %q", got, want)
		}
	})

	t.Run("missing_template", func(t *testing.T) {
		_, err := r.Render("nope.tmpl", NewScaffoldContext())
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		if _, err := r.Render("bad_syntax.tmpl", NewScaffoldContext()); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("missing_key", func(t *testing.T) {
		_, err := r.Render("unknown_field.tmpl", NewScaffoldContext())
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("error = %v, want ErrMissingTemplateKey", err)
		}
	})

	t.Run("unexpanded_token_detected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"leftover.tmpl": &fstest.MapFile{
				// Rendering emits a literal token that looks unexpanded.
				Data: []byte("{{ printf \"%s\" \"{{Package}}\" }}"),
			},
		}
		_, err := NewRenderer(fsys).Render("leftover.tmpl", NewScaffoldContext())
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("error = %v, want ErrUnexpandedToken", err)
		}
	})
}

func TestSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bookstore", "bookstore"},
		{"My Cool Project", "my_cool_project"},
		{"weird--name!!x", "weird_name_x"},
	}
	for _, tt := range tests {
		if got := Snake(tt.in); got != tt.want {
			t.Errorf("Snake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSkeletonTemplatesRender(t *testing.T) {
	// Every .tmpl in the embedded skeleton must render cleanly against a
	// fully-populated context.
	fsys := SkeletonFS()
	r := NewRenderer(fsys)
	ctx := NewScaffoldContext(
		WithProject("Bookstore", "bookstore", "0.1.1"),
		WithAuthor("Rebecca", "rebecca@example.com"),
		WithControllers(true, true),
		WithTemplating(true, true),
		WithRedis(true),
		WithSQLAlchemy(true, "psycopg2", "postgresql://localhost/bookstore"),
		WithToolVersion("v0.7.0"),
	)

	for _, name := range NewDeployer(fsys).ListTemplates(nil) {
		if !strings.HasSuffix(name, tmplSuffix) {
			continue
		}
		if _, err := r.Render(name, ctx); err != nil {
			t.Errorf("Render(%q) error: %v", name, err)
		}
	}
}
