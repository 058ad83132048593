package ticket

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cardboard/internal/domain"
)

// BuildPrompt formats the card, its suggestion history and optional notes
// into the text sent for summarization.
func BuildPrompt(card domain.Card, notes string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Main Idea: %s\n\n", card.Content)
	fmt.Fprintf(&b, "Category: %s\n", card.Category)
	fmt.Fprintf(&b, "Approvals: %d, Rejections: %d\n\n", card.ApprovedCount, card.RejectedCount)

	if strings.TrimSpace(notes) != "" {
		fmt.Fprintf(&b, "Additional Description: %s\n\n", notes)
	}

	if len(card.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for i, s := range card.Suggestions {
			fmt.Fprintf(&b, "%d. %s (by %s)\n", i+1, s.Text, s.Author)
		}
	}

	return b.String()
}
