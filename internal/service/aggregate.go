package service

import (
	"sort"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/domain"
)

// CategoryDistribution counts cards per category. Every enumerated category
// is present, in enumerated order, even when its count is zero. Categories
// outside the enumeration follow in first-seen order.
func CategoryDistribution(cards []*domain.Card) []contract.CategoryCount {
	out := make([]contract.CategoryCount, 0, len(domain.Categories))
	index := make(map[domain.Category]int, len(domain.Categories))
	for _, c := range domain.Categories {
		index[c] = len(out)
		out = append(out, contract.CategoryCount{Category: c})
	}
	for _, card := range cards {
		i, ok := index[card.Category]
		if !ok {
			i = len(out)
			index[card.Category] = i
			out = append(out, contract.CategoryCount{Category: card.Category})
		}
		out[i].Count++
	}
	return out
}

// ActivityTotals sums votes and suggestions across cards.
func ActivityTotals(cards []*domain.Card) contract.ActivityTotals {
	var t contract.ActivityTotals
	for _, card := range cards {
		t.Approved += card.ApprovedCount
		t.Rejected += card.RejectedCount
		t.Suggestions += len(card.Suggestions)
	}
	return t
}

// RecentSuggestions lists suggestions newest first, at most limit entries.
// Generated suggestions are skipped unless includeAutomated is set.
func RecentSuggestions(cards []*domain.Card, limit int, includeAutomated bool) []contract.RecentSuggestion {
	if limit <= 0 {
		return nil
	}
	var all []contract.RecentSuggestion
	for _, card := range cards {
		for _, s := range card.Suggestions {
			if s.IsAutomated() && !includeAutomated {
				continue
			}
			all = append(all, contract.RecentSuggestion{
				CardID:      card.ID,
				CardContent: card.Content,
				Text:        s.Text,
				Author:      s.Author,
				Date:        s.Date,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}
