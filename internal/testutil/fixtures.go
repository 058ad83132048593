package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/google/uuid"
)

var testSuggestionCounter atomic.Int64

// FixedTime is a stable timestamp for deterministic fixtures.
var FixedTime = time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

// Card options
type CardOption func(*domain.Card)

func WithCategory(c domain.Category) CardOption {
	return func(card *domain.Card) {
		card.Category = c
	}
}

func WithDuration(d domain.Duration) CardOption {
	return func(card *domain.Card) {
		card.Duration = d
	}
}

func WithVotes(approved, rejected int) CardOption {
	return func(card *domain.Card) {
		card.ApprovedCount = approved
		card.RejectedCount = rejected
	}
}

func WithID(id string) CardOption {
	return func(card *domain.Card) {
		card.ID = id
	}
}

func WithImageURL(url string) CardOption {
	return func(card *domain.Card) {
		card.ImageURL = url
	}
}

// WithSuggestions appends one human suggestion per text, authored by author
// and dated one minute apart starting at FixedTime.
func WithSuggestions(author string, texts ...string) CardOption {
	return func(card *domain.Card) {
		for _, text := range texts {
			card.Suggestions = append(card.Suggestions,
				NewTestSuggestion(text, author, FixedTime.Add(time.Duration(len(card.Suggestions))*time.Minute)))
		}
	}
}

func NewTestCard(content string, opts ...CardOption) *domain.Card {
	c := &domain.Card{
		ID:          uuid.New().String(),
		Content:     content,
		Category:    domain.CategoryTech,
		Duration:    domain.Duration1Day,
		Suggestions: []domain.Suggestion{},
		CreatedAt:   FixedTime,
		UpdatedAt:   FixedTime,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestSuggestion(text, author string, date time.Time) domain.Suggestion {
	n := testSuggestionCounter.Add(1)
	return domain.Suggestion{
		ID:     fmt.Sprintf("sug-%04d", n),
		Text:   text,
		Author: author,
		Date:   date,
	}
}

// CatsCard is the card from the ticket walkthrough: MIS ONE, 89/76 votes and
// three human suggestions.
func CatsCard() *domain.Card {
	return NewTestCard("I think cats are better than dogs",
		WithID("3"),
		WithCategory(domain.CategoryMISOne),
		WithDuration(domain.Duration3Days),
		WithVotes(89, 76),
		WithSuggestions("Alex",
			"Both have their own charms",
			"Cats are more independent",
			"Dogs are more loyal",
		),
	)
}
