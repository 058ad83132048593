package contract

import "github.com/alexanderramin/cardboard/internal/app"

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest() DashboardRequest {
	return app.NewDashboardRequest()
}

type CategoryCount = app.CategoryCount

type ActivityTotals = app.ActivityTotals

type RecentSuggestion = app.RecentSuggestion

type DashboardResponse = app.DashboardResponse
