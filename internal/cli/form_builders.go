package cli

import (
	"strings"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/charmbracelet/huh"
)

// cardFormValues backs the interactive card creation form.
type cardFormValues struct {
	Content  string
	Category string
	Duration string
	ImageURL string
}

func (v cardFormValues) input() domain.NewCardInput {
	return domain.NewCardInput{
		Content:  v.Content,
		Category: domain.Category(v.Category),
		Duration: domain.Duration(v.Duration),
		ImageURL: v.ImageURL,
	}
}

func (v cardFormValues) complete() bool {
	return strings.TrimSpace(v.Content) != "" && v.Category != "" && v.Duration != ""
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}
	return opts
}

func durationOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Durations))
	for _, d := range domain.Durations {
		opts = append(opts, huh.NewOption(string(d), string(d)))
	}
	return opts
}

// contentInput returns a huh.Text for the card statement.
func contentInput(value *string) *huh.Text {
	return huh.NewText().
		Title("What do you think?").
		Placeholder("I think cats are better than dogs").
		CharLimit(280).
		Value(value).
		Validate(validateCardContent)
}

// cardForm returns a themed form collecting every field of a new card.
// Fields already set are pre-selected.
func cardForm(values *cardFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			contentInput(&values.Content),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&values.Category).
				Validate(validateSelected("Please select a category")),
			huh.NewSelect[string]().
				Title("Duration").
				Options(durationOptions()...).
				Value(&values.Duration).
				Validate(validateSelected("Please select a duration")),
			huh.NewInput().
				Title("Image URL (optional)").
				Value(&values.ImageURL),
		),
	).WithTheme(cardboardHuhTheme()).WithShowHelp(false)
}

// suggestionForm returns a themed form for a suggestion and its author.
func suggestionForm(text, author *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Suggestion").
				Value(text).
				Validate(validateSuggestion),
			huh.NewInput().
				Title("Your name (blank for Anonymous)").
				Value(author),
		),
	).WithTheme(cardboardHuhTheme()).WithShowHelp(false)
}

func validateCardContent(s string) error {
	if strings.TrimSpace(s) == "" {
		return fieldError("Please enter a description for your card")
	}
	return nil
}

func validateSuggestion(s string) error {
	if strings.TrimSpace(s) == "" {
		return fieldError("Please enter a suggestion")
	}
	return nil
}

func validateSelected(msg string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fieldError(msg)
		}
		return nil
	}
}

type fieldError string

func (e fieldError) Error() string { return string(e) }
