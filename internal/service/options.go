package service

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Option configures the services in this package.
type Option func(*options)

type options struct {
	now             func() time.Time
	observer        UseCaseObserver
	newCardID       func() string
	newSuggestionID func(time.Time) string
}

// WithClock sets the clock used for card timestamps and suggestion dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) {
		o.observer = useCaseObserverOrNoop([]UseCaseObserver{obs})
	}
}

func WithCardIDs(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newCardID = fn
		}
	}
}

func WithSuggestionIDs(fn func(time.Time) string) Option {
	return func(o *options) {
		if fn != nil {
			o.newSuggestionID = fn
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:             func() time.Time { return time.Now().UTC() },
		observer:        NoopUseCaseObserver{},
		newCardID:       func() string { return uuid.New().String() },
		newSuggestionID: NewSuggestionID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewSuggestionID returns a ULID for a suggestion dated t. IDs minted within
// the same millisecond sort in creation order.
func NewSuggestionID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
