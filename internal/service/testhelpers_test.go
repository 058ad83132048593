package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/repository"
	"github.com/alexanderramin/cardboard/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T, cards ...*domain.Card) *repository.MemoryCardRepo {
	t.Helper()
	repo := repository.NewMemoryCardRepo()
	for _, c := range cards {
		require.NoError(t, repo.Create(context.Background(), c))
	}
	return repo
}

func fixedClock() func() time.Time {
	return func() time.Time { return testutil.FixedTime }
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) Events() []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]UseCaseEvent, len(o.events))
	copy(out, o.events)
	return out
}
