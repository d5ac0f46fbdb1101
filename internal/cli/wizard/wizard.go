package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Run executes the wizard and returns the result. Each question runs as
// its own independent huh.Form so later questions can derive defaults
// and conditions from earlier answers.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, result)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// RunDefault runs the wizard with the create question flow.
func RunDefault() (*Result, error) {
	return Run(DefaultQuestions())
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *Result) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeConfirm:
		field = buildConfirmField(q, result)
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	default:
		field = buildInputField(q, result)
	}

	return huh.NewGroup(field)
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, result *Result) *huh.Input {
	def := q.Default
	if q.DefaultFunc != nil {
		if derived := q.DefaultFunc(result); derived != "" {
			def = derived
		}
	}

	value := def
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if def != "" {
		inp = inp.Placeholder(def)
	}

	qID := q.ID
	required := q.Required
	validate := q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && def != "" {
			v = def
		}
		if required && v == "" {
			return errors.New("this answer is required")
		}
		if validate != nil && v != "" {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(qID, v, result)
		return nil
	})

	return inp
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q *Question, result *Result) *huh.Confirm {
	value := q.DefaultBool
	qID := q.ID

	return huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Value(&value).
		Validate(func(val bool) error {
			saveToggle(qID, val, result)
			return nil
		})
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, result *Result) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	qID := q.ID
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(qID, val, result)
			return nil
		})
}

// saveAnswer stores a text answer in the result.
func saveAnswer(id, value string, result *Result) {
	switch id {
	case "project_name":
		result.ProjectName = value
	case "package":
		result.Package = value
	case "version":
		result.Version = value
	case "author":
		result.Author = value
	case "email":
		result.Email = value
	case "driver":
		result.Driver = value
	case "sqlalchemy_url":
		result.SQLAlchemyURL = value
	}
}

// saveToggle stores a yes/no answer in the result.
func saveToggle(id string, value bool, result *Result) {
	switch id {
	case "use_controller":
		result.UseController = value
	case "use_rest_controller":
		result.UseRESTController = value
	case "use_jinja2":
		result.UseJinja2 = value
	case "use_webassets":
		result.UseWebassets = value
	case "use_redis":
		result.UseRedis = value
	case "use_sqlalchemy":
		result.UseSQLAlchemy = value
	}
}

// newWizardTheme creates a huh.Theme with blueberry branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#4338CA", Dark: "#818CF8"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
