package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDashboard(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	resp := &contract.DashboardResponse{
		GeneratedAt: now,
		CardCount:   3,
		Categories: []contract.CategoryCount{
			{Category: domain.CategoryWIS, Count: 2},
			{Category: domain.CategoryETS},
			{Category: "Ops", Count: 1},
		},
		Totals: contract.ActivityTotals{Approved: 10, Rejected: 4, Suggestions: 7},
		RecentSuggestions: []contract.RecentSuggestion{
			{CardID: "3", CardContent: "Cats or dogs", Text: "Dogs are more loyal", Author: "Alex", Date: now.Add(-5 * time.Minute)},
		},
	}

	got := stripANSI(FormatDashboard(resp, now))

	assert.Contains(t, got, "DASHBOARD")
	assert.Contains(t, got, "3 cards")
	assert.Contains(t, got, "▲ 10  ▼ 4")
	assert.Contains(t, got, "7 suggestions")
	assert.Contains(t, got, "● WIS")
	assert.Contains(t, got, strings.Repeat("█", shareBarWidth))
	assert.Contains(t, got, "● Ops")
	assert.Contains(t, got, "RECENT SUGGESTIONS")
	assert.Contains(t, got, "Dogs are more loyal")
	assert.Contains(t, got, "5m ago")

	wis := strings.Index(got, "● WIS")
	ets := strings.Index(got, "● ETS")
	ops := strings.Index(got, "● Ops")
	assert.Less(t, wis, ets)
	assert.Less(t, ets, ops)
}

func TestFormatDashboard_NoRecentSuggestions(t *testing.T) {
	got := stripANSI(FormatDashboard(&contract.DashboardResponse{}, time.Now()))
	assert.Contains(t, got, "0 cards")
	assert.NotContains(t, got, "RECENT SUGGESTIONS")
}
