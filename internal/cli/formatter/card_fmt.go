package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/domain"
)

// Notification text shown after a generation attempt.
const (
	GenerateSucceededMsg = "PRD successfully generated!"
	GenerateFailedMsg    = "Failed to generate PRD. Please try again."
)

const listContentWidth = 48

// FormatCardList renders cards as a table in store order.
func FormatCardList(cards []*domain.Card) string {
	if len(cards) == 0 {
		return Dim("No cards yet. Create one with: cardboard card add") + "\n"
	}

	headers := []string{"ID", "CATEGORY", "CARD", "DURATION", "VOTES", "SUGGESTIONS"}
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{
			TruncID(c.ID),
			CategoryBadge(c.Category),
			Truncate(c.Content, listContentWidth),
			Dim(durationLabel(c.Duration)),
			VoteTally(c.ApprovedCount, c.RejectedCount),
			fmt.Sprintf("%d", len(c.Suggestions)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatCardDetail renders one card with its suggestion history as a tree.
// now anchors the relative timestamps.
func FormatCardDetail(c *domain.Card, now time.Time) string {
	var b strings.Builder

	b.WriteString(Bold(c.Content) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", CategoryBadge(c.Category), Dim(durationLabel(c.Duration))))
	b.WriteString(fmt.Sprintf("%s   %s\n", VoteTally(c.ApprovedCount, c.RejectedCount), RenderApproval(c.ApprovedCount, c.RejectedCount, 20)))
	if c.ImageURL != "" {
		b.WriteString(Dim("image: "+c.ImageURL) + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("id: %s", c.ID)))
	if !c.CreatedAt.IsZero() {
		b.WriteString(Dim("  created " + HumanTimestampFrom(c.CreatedAt, now)))
	}

	out := RenderBox("Card", b.String()) + "\n\n"
	out += Header(fmt.Sprintf("Suggestions (%d)", len(c.Suggestions))) + "\n"
	if len(c.Suggestions) == 0 {
		return out + Dim("No suggestions yet.") + "\n"
	}

	items := make([]TreeItem, 0, len(c.Suggestions))
	for i, s := range c.Suggestions {
		items = append(items, TreeItem{
			Title:     Truncate(firstLine(s.Text), 72),
			Level:     1,
			IsLast:    i == len(c.Suggestions)-1,
			Automated: s.IsAutomated(),
			Detail:    s.Author + " · " + HumanTimestampFrom(s.Date, now),
		})
	}
	return out + RenderTree(items)
}

// FormatTicketPreview renders the prompt that would be sent and the document
// as it stands before generation.
func FormatTicketPreview(p *contract.TicketPreview) string {
	var b strings.Builder
	b.WriteString(Header("Prompt") + "\n")
	b.WriteString(p.Prompt + "\n")
	b.WriteString(Header("Document") + "\n")
	b.WriteString(p.Document + "\n")
	return b.String()
}

// FormatGenerateResult renders the success notice followed by the document.
func FormatGenerateResult(res *contract.GenerateResult) string {
	var b strings.Builder
	b.WriteString(Success(GenerateSucceededMsg) + "\n")
	b.WriteString(Dim(fmt.Sprintf("card %s now has %d suggestions", res.CardID, res.SuggestionCount)) + "\n\n")
	b.WriteString(res.Document + "\n")
	return b.String()
}

func durationLabel(d domain.Duration) string {
	if d == "" {
		return "--"
	}
	return string(d)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
