// Package wizard provides the interactive question flow for project
// creation.
package wizard

import "errors"

// Wizard errors.
var (
	// ErrCancelled indicates the user aborted the wizard.
	ErrCancelled = errors.New("wizard cancelled")

	// ErrNoQuestions indicates Run was called with an empty question set.
	ErrNoQuestions = errors.New("wizard has no questions")
)

// Result holds the user's answers from the create wizard.
type Result struct {
	// Project
	ProjectName string // Human-readable project name (required).
	Package     string // Package name, lowercase identifier (required).
	Version     string // Initial version string (required).

	// Author
	Author string // Author display name (optional).
	Email  string // Author email address (optional).

	// Subsystems
	UseController     bool // Templating-engine-backed controllers.
	UseRESTController bool // RESTful controllers.
	UseJinja2         bool // Jinja2 templating engine.
	UseWebassets      bool // webassets asset management.
	UseRedis          bool // redis-backed sessions.
	UseSQLAlchemy     bool // SQLAlchemy ORM.

	// Database
	Driver        string // Database driver package, or "".
	SQLAlchemyURL string // Database connection URL.
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect
)

// Question defines a single wizard question.
type Question struct {
	ID          string               // Unique identifier.
	Type        QuestionType         // Input, Confirm or Select.
	Title       string               // Question title.
	Description string               // Additional description.
	Options     []Option             // Options for select questions.
	Default     string               // Default value for input/select questions.
	DefaultFunc func(*Result) string // Default derived from earlier answers.
	DefaultBool bool                 // Default value for confirm questions.
	Required    bool                 // Whether the field is required.
	Validate    func(string) error   // Optional input validation.
	Condition   func(*Result) bool   // Condition for asking this question.
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label.
	Value string // Actual value stored.
	Desc  string // Optional description.
}
