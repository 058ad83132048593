package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/repository"
)

type dashboardService struct {
	cards repository.CardRepo
	opts  options
}

func NewDashboardService(cards repository.CardRepo, opts ...Option) DashboardService {
	return &dashboardService{cards: cards, opts: buildOptions(opts)}
}

// Summary reads the store once and derives every figure from that snapshot.
func (s *dashboardService) Summary(ctx context.Context, req contract.DashboardRequest) (resp *contract.DashboardResponse, err error) {
	startedAt := time.Now()
	defer func() {
		fields := map[string]any{}
		if resp != nil {
			fields["cards"] = resp.CardCount
		}
		observe(ctx, s.opts.observer, UseCaseDashboardSummary, startedAt, err, fields)
	}()

	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	return &contract.DashboardResponse{
		GeneratedAt:       s.opts.now(),
		CardCount:         len(cards),
		Categories:        CategoryDistribution(cards),
		Totals:            ActivityTotals(cards),
		RecentSuggestions: RecentSuggestions(cards, req.RecentLimit, req.IncludeAutomated),
	}, nil
}
