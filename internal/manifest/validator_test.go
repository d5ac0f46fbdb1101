package manifest

import "testing"

func TestValidate(t *testing.T) {
	t.Run("generated_manifest_is_valid", func(t *testing.T) {
		data, err := Build(ProjectConfig{
			Package:       "demo",
			Version:       "1.0",
			Author:        "A",
			Email:         "a@x.com",
			UseSQLAlchemy: true,
		}).EncodeYAML()
		if err != nil {
			t.Fatalf("EncodeYAML error: %v", err)
		}

		result, err := Validate(data)
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if !result.Valid {
			t.Errorf("generated manifest rejected: %+v", result.Issues)
		}
	})

	t.Run("missing_required_field", func(t *testing.T) {
		doc := `name: demo
version: "1.0"
author: A
`
		result, err := Validate([]byte(doc))
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if result.Valid {
			t.Fatal("expected validation failure for missing fields")
		}
		if len(result.Issues) == 0 {
			t.Fatal("expected at least one issue")
		}
	})

	t.Run("wrong_type", func(t *testing.T) {
		doc := `name: demo
version: "1.0"
author: A
author_email: a@x.com
package_source_root: src
package_discovery_exclude: ["test*"]
install_requires: "SQLAlchemy"
zip_safe: false
`
		result, err := Validate([]byte(doc))
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if result.Valid {
			t.Fatal("expected validation failure for non-array install_requires")
		}

		found := false
		for _, issue := range result.Issues {
			if issue.Path == "/install_requires" {
				found = true
			}
		}
		if !found {
			t.Errorf("no issue reported at /install_requires: %+v", result.Issues)
		}
	})

	t.Run("unknown_property", func(t *testing.T) {
		doc := `name: demo
version: "1.0"
author: A
author_email: a@x.com
package_source_root: src
package_discovery_exclude: ["test*"]
install_requires: []
zip_safe: false
maintainer: nobody
`
		result, err := Validate([]byte(doc))
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if result.Valid {
			t.Fatal("expected validation failure for unknown property")
		}
	})

	t.Run("unparseable_document", func(t *testing.T) {
		if _, err := Validate([]byte(":\n\t-")); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
