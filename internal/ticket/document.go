package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
)

// Document markers.
const (
	HeaderSummary        = "Summary"
	HeaderDescription    = "Description"
	HeaderHighlights     = "Suggestion Highlights:"
	HeaderSuggestions    = "h2. Suggestions"
	HeaderGenerated      = "h2. AI-Generated PRD Summary"
	EntrySeparator       = "----"
	NoSuggestionsMarker  = "No suggestions available."
	labelCardID          = "*Card ID:* "
	labelCategory        = "*Category:* "
	labelApprovalCount   = "*Approval Count:* "
	labelRejectionCount  = "*Rejection Count:* "
	labelSuggestion      = "*Suggestion:* "
	labelSuggestionBy    = "*By:* "
	labelSuggestionDate  = "*Date:* "
	summaryContentPrefix = "PB: "
)

// DateLayout renders suggestion dates as UTC ISO-8601 with milliseconds.
const DateLayout = "2006-01-02T15:04:05.000Z"

// BuildDocument renders the ticket document. Sections appear in fixed order:
// summary line, description, metadata, suggestions, and the generated
// summary when summary is non-nil.
func BuildDocument(card domain.Card, notes string, summary *string) string {
	var b strings.Builder

	b.WriteString(HeaderSummary + "\n")
	b.WriteString(summaryContentPrefix + card.Content + "\n")
	b.WriteString(HeaderDescription + "\n\n")

	switch {
	case strings.TrimSpace(notes) != "":
		b.WriteString(notes + "\n\n")
	case len(card.Suggestions) > 0:
		b.WriteString(HeaderHighlights + "\n")
		for _, s := range card.Suggestions {
			b.WriteString("- " + s.Text + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(labelCardID + card.ID + "\n")
	b.WriteString(labelCategory + string(card.Category) + "\n")
	fmt.Fprintf(&b, "%s%d\n", labelApprovalCount, card.ApprovedCount)
	fmt.Fprintf(&b, "%s%d\n\n", labelRejectionCount, card.RejectedCount)

	if len(card.Suggestions) > 0 {
		b.WriteString(HeaderSuggestions + "\n\n")
		for _, s := range card.Suggestions {
			b.WriteString(EntrySeparator + "\n")
			b.WriteString(labelSuggestion + s.Text + "\n")
			b.WriteString(labelSuggestionBy + s.Author + "\n")
			b.WriteString(labelSuggestionDate + FormatDate(s.Date) + "\n")
			b.WriteString(EntrySeparator + "\n\n")
		}
	} else {
		b.WriteString(NoSuggestionsMarker)
	}

	if summary != nil {
		b.WriteString("\n" + HeaderGenerated + "\n\n")
		b.WriteString(*summary)
	}

	return b.String()
}

// FormatDate renders t the way suggestion dates appear in documents.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
