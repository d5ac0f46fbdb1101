package wizard

import (
	"fmt"
	"regexp"

	"github.com/blueberrypy/blueberry/internal/template"
)

// Answer validation patterns.
var (
	// validPackagePattern matches lowercase identifiers, PEP 8 style.
	validPackagePattern = regexp.MustCompile(`^[a-z_]+$`)

	// validVersionPattern matches PEP 386 version strings, e.g. "0.1.1",
	// "1.0a2", "2.0.post1".
	validVersionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)*((a|b|c|rc)\d+(\.\d+)?)?(\.post\d+)?(\.dev\d+)?$`)

	// validEmailPattern is a loose sanity check, not RFC validation.
	validEmailPattern = regexp.MustCompile(`^.+@.+$`)
)

func validatePackage(v string) error {
	if !validPackagePattern.MatchString(v) {
		return fmt.Errorf("package name must match %s", validPackagePattern)
	}
	return nil
}

func validateVersion(v string) error {
	if !validVersionPattern.MatchString(v) {
		return fmt.Errorf("%q is not a valid version", v)
	}
	return nil
}

func validateEmail(v string) error {
	if v != "" && !validEmailPattern.MatchString(v) {
		return fmt.Errorf("%q does not look like an email address", v)
	}
	return nil
}

// driverOptions lists the database driver choices offered when
// SQLAlchemy is enabled.
var driverOptions = []Option{
	{Label: "None (built-in sqlite3)", Value: ""},
	{Label: "psycopg2", Value: "psycopg2", Desc: "PostgreSQL"},
	{Label: "PyMySQL", Value: "PyMySQL", Desc: "MySQL"},
	{Label: "cx_Oracle", Value: "cx_Oracle", Desc: "Oracle"},
}

// DefaultQuestions returns the question flow for "blueberry create".
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:       "project_name",
			Type:     QuestionTypeInput,
			Title:    "Project name",
			Required: true,
		},
		{
			ID:    "package",
			Type:  QuestionTypeInput,
			Title: "Package name",
			DefaultFunc: func(r *Result) string {
				return template.Snake(r.ProjectName)
			},
			Required: true,
			Validate: validatePackage,
		},
		{
			ID:       "version",
			Type:     QuestionTypeInput,
			Title:    "Version",
			Required: true,
			Validate: validateVersion,
		},
		{
			ID:    "author",
			Type:  QuestionTypeInput,
			Title: "Author name",
		},
		{
			ID:       "email",
			Type:     QuestionTypeInput,
			Title:    "Email",
			Validate: validateEmail,
		},
		{
			ID:          "use_controller",
			Type:        QuestionTypeConfirm,
			Title:       "Use controllers backed by a templating engine?",
			DefaultBool: true,
		},
		{
			ID:    "use_rest_controller",
			Type:  QuestionTypeConfirm,
			Title: "Use RESTful controllers?",
		},
		{
			ID:          "use_jinja2",
			Type:        QuestionTypeConfirm,
			Title:       "Use Jinja2 templating engine?",
			DefaultBool: true,
			Condition:   func(r *Result) bool { return r.UseController },
		},
		{
			ID:          "use_webassets",
			Type:        QuestionTypeConfirm,
			Title:       "Use webassets asset management framework?",
			DefaultBool: true,
			Condition:   func(r *Result) bool { return r.UseController },
		},
		{
			ID:    "use_redis",
			Type:  QuestionTypeConfirm,
			Title: "Use redis sessions?",
		},
		{
			ID:          "use_sqlalchemy",
			Type:        QuestionTypeConfirm,
			Title:       "Use SQLAlchemy ORM?",
			DefaultBool: true,
		},
		{
			ID:        "driver",
			Type:      QuestionTypeSelect,
			Title:     "Database driver",
			Options:   driverOptions,
			Condition: func(r *Result) bool { return r.UseSQLAlchemy },
		},
		{
			ID:        "sqlalchemy_url",
			Type:      QuestionTypeInput,
			Title:     "SQLAlchemy database connection URL",
			Default:   "sqlite://",
			Condition: func(r *Result) bool { return r.UseSQLAlchemy },
		},
	}
}
