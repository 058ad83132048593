package app

import (
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
)

type DashboardRequest struct {
	// RecentLimit caps RecentSuggestions; zero or less disables the list.
	RecentLimit int
	// IncludeAutomated adds generated suggestions to RecentSuggestions.
	IncludeAutomated bool
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{RecentLimit: 5}
}

type CategoryCount struct {
	Category domain.Category
	Count    int
}

type ActivityTotals struct {
	Approved    int
	Rejected    int
	Suggestions int
}

type RecentSuggestion struct {
	CardID      string
	CardContent string
	Text        string
	Author      string
	Date        time.Time
}

type DashboardResponse struct {
	GeneratedAt       time.Time
	CardCount         int
	Categories        []CategoryCount
	Totals            ActivityTotals
	RecentSuggestions []RecentSuggestion
}
