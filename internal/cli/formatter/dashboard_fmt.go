package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cardboard/internal/contract"
)

const shareBarWidth = 24

// FormatDashboard renders the category distribution, activity totals and
// recent suggestions. now anchors the relative timestamps.
func FormatDashboard(resp *contract.DashboardResponse, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Dashboard") + "\n")
	b.WriteString(fmt.Sprintf("%s cards   %s   %s suggestions\n\n",
		Bold(fmt.Sprintf("%d", resp.CardCount)),
		VoteTally(resp.Totals.Approved, resp.Totals.Rejected),
		Bold(fmt.Sprintf("%d", resp.Totals.Suggestions)),
	))

	b.WriteString(Header("Categories") + "\n")
	maxCount := 0
	for _, cc := range resp.Categories {
		if cc.Count > maxCount {
			maxCount = cc.Count
		}
	}
	rows := make([][]string, 0, len(resp.Categories))
	for _, cc := range resp.Categories {
		share := 0.0
		if maxCount > 0 {
			share = float64(cc.Count) / float64(maxCount)
		}
		rows = append(rows, []string{
			CategoryBadge(cc.Category),
			fmt.Sprintf("%d", cc.Count),
			RenderShareBar(share, shareBarWidth, CategoryStyle(cc.Category)),
		})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "CARDS", ""}, rows))

	if len(resp.RecentSuggestions) > 0 {
		b.WriteString("\n" + Header("Recent suggestions") + "\n")
		rows = rows[:0]
		for _, s := range resp.RecentSuggestions {
			rows = append(rows, []string{
				Truncate(s.Text, 40),
				s.Author,
				Dim(Truncate(s.CardContent, 28)),
				Dim(HumanTimestampFrom(s.Date, now)),
			})
		}
		b.WriteString(RenderTable([]string{"SUGGESTION", "BY", "CARD", "WHEN"}, rows))
	}

	return b.String()
}
