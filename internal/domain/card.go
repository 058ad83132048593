package domain

import (
	"strings"
	"time"
)

type Card struct {
	ID       string
	Content  string
	Category Category
	Duration Duration
	ImageURL string

	ApprovedCount int
	RejectedCount int

	// Suggestions is append-only and kept in chronological order.
	Suggestions []Suggestion

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Suggestion struct {
	ID     string
	Text   string
	Author string
	Date   time.Time
}

// IsAutomated reports whether the suggestion was produced by the summarizer.
func (s Suggestion) IsAutomated() bool {
	return s.Author == AutomatedAuthor
}

// Clone returns a copy of c that shares no mutable state with it.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	out := *c
	if c.Suggestions != nil {
		out.Suggestions = make([]Suggestion, len(c.Suggestions))
		copy(out.Suggestions, c.Suggestions)
	}
	return &out
}

// WithSuggestion returns the card's suggestion sequence with s appended,
// leaving the card itself untouched.
func (c *Card) WithSuggestion(s Suggestion) []Suggestion {
	next := make([]Suggestion, 0, len(c.Suggestions)+1)
	next = append(next, c.Suggestions...)
	return append(next, s)
}

// NewCardInput is what the creation workflow supplies for a new card.
type NewCardInput struct {
	Content  string
	Category Category
	Duration Duration
	ImageURL string
}

// Validate checks the required fields in the order the creation form does.
func (in NewCardInput) Validate() error {
	if strings.TrimSpace(in.Content) == "" {
		return &ValidationError{Field: "content", Message: "Please enter a description for your card"}
	}
	if in.Category == "" {
		return &ValidationError{Field: "category", Message: "Please select a category"}
	}
	if !IsValidCategory(in.Category) {
		return &ValidationError{Field: "category", Message: "unknown category " + string(in.Category)}
	}
	if in.Duration == "" {
		return &ValidationError{Field: "duration", Message: "Please select a duration"}
	}
	if !IsValidDuration(in.Duration) {
		return &ValidationError{Field: "duration", Message: "unknown duration " + string(in.Duration)}
	}
	return nil
}
