package importer

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Convert transforms a validated CardFile into domain cards ready for the store.
// Call ValidateCardFile first; Convert assumes the file is valid.
//
// Missing ids are generated, missing counts default to zero and missing
// timestamps default to the import time. Suggestion order is preserved.
func Convert(file *CardFile) []*domain.Card {
	now := time.Now().UTC()

	cards := make([]*domain.Card, 0, len(file.Cards))
	for _, c := range file.Cards {
		id := c.ID
		if id == "" {
			id = uuid.New().String()
		}
		created := domain.TimeFromPtrWithDefault(now, parseOptionalDate(c.CreatedAt))

		suggestions := make([]domain.Suggestion, 0, len(c.Suggestions))
		for _, s := range c.Suggestions {
			date := domain.TimeFromPtrWithDefault(now, parseOptionalDate(s.Date))
			sid := s.ID
			if sid == "" {
				sid = ulid.MustNew(ulid.Timestamp(date), rand.Reader).String()
			}
			suggestions = append(suggestions, domain.Suggestion{
				ID:     sid,
				Text:   s.Text,
				Author: domain.CoalesceStr(strings.TrimSpace(s.Author), domain.AnonymousAuthor),
				Date:   date,
			})
		}

		cards = append(cards, &domain.Card{
			ID:            id,
			Content:       strings.TrimSpace(c.Content),
			Category:      domain.Category(c.Category),
			Duration:      domain.Duration(c.Duration),
			ImageURL:      c.ImageURL,
			ApprovedCount: domain.IntFromPtrWithDefault(0, c.ApprovedCount),
			RejectedCount: domain.IntFromPtrWithDefault(0, c.RejectedCount),
			Suggestions:   suggestions,
			CreatedAt:     created,
			UpdatedAt:     now,
		})
	}
	return cards
}

// FromCards builds a CardFile that round-trips through Convert.
func FromCards(cards []*domain.Card) *CardFile {
	file := &CardFile{Cards: make([]CardImport, 0, len(cards))}
	for _, c := range cards {
		approved, rejected := c.ApprovedCount, c.RejectedCount
		ci := CardImport{
			ID:            c.ID,
			Content:       c.Content,
			Category:      string(c.Category),
			Duration:      string(c.Duration),
			ImageURL:      c.ImageURL,
			ApprovedCount: &approved,
			RejectedCount: &rejected,
			CreatedAt:     formatOptionalDate(c.CreatedAt),
		}
		for _, s := range c.Suggestions {
			ci.Suggestions = append(ci.Suggestions, SuggestionImport{
				ID:     s.ID,
				Text:   s.Text,
				Author: s.Author,
				Date:   formatOptionalDate(s.Date),
			})
		}
		file.Cards = append(file.Cards, ci)
	}
	return file
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func formatOptionalDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
