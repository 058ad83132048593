package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Summary(t *testing.T) {
	cats := testutil.CatsCard()
	tech := testutil.NewTestCard("Adopt Go", testutil.WithCategory(domain.CategoryTech), testutil.WithVotes(3, 1))
	obs := &recordingObserver{}
	svc := NewDashboardService(setupRepo(t, cats, tech), WithClock(fixedClock()), WithObserver(obs))

	resp, err := svc.Summary(context.Background(), contract.NewDashboardRequest())
	require.NoError(t, err)

	assert.Equal(t, testutil.FixedTime, resp.GeneratedAt)
	assert.Equal(t, 2, resp.CardCount)
	require.Len(t, resp.Categories, 6)
	assert.Equal(t, 1, resp.Categories[2].Count, "MIS ONE")
	assert.Equal(t, 1, resp.Categories[5].Count, "Tech")
	assert.Equal(t, contract.ActivityTotals{Approved: 92, Rejected: 77, Suggestions: 3}, resp.Totals)
	assert.Len(t, resp.RecentSuggestions, 3)

	events := obs.Events()
	require.Len(t, events, 1)
	assert.Equal(t, UseCaseDashboardSummary, events[0].Name)
	assert.Equal(t, 2, events[0].Fields["cards"])
}

func TestDashboardService_SummaryEmptyStore(t *testing.T) {
	svc := NewDashboardService(setupRepo(t))

	resp, err := svc.Summary(context.Background(), contract.DashboardRequest{})
	require.NoError(t, err)
	assert.Zero(t, resp.CardCount)
	assert.Len(t, resp.Categories, 6)
	assert.Empty(t, resp.RecentSuggestions)
}

func TestDashboardService_ReflectsGeneratedSuggestions(t *testing.T) {
	cats := testutil.CatsCard()
	repo := setupRepo(t, cats)
	tickets := NewTicketService(repo, &testutil.FakeSummarizer{Response: "PRD"}, WithClock(fixedClock()))
	dash := NewDashboardService(repo)

	_, err := tickets.Generate(context.Background(), contract.GenerateRequest{CardID: cats.ID})
	require.NoError(t, err)

	resp, err := dash.Summary(context.Background(), contract.DashboardRequest{RecentLimit: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Totals.Suggestions)
	assert.Len(t, resp.RecentSuggestions, 3, "generated suggestions are hidden by default")
}
