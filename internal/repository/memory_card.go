package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
)

// MemoryCardRepo implements CardRepo in process memory. It performs no I/O.
type MemoryCardRepo struct {
	mu    sync.RWMutex
	cards map[string]*domain.Card
	order []string
	now   func() time.Time
}

// NewMemoryCardRepo creates an empty MemoryCardRepo.
func NewMemoryCardRepo() *MemoryCardRepo {
	return &MemoryCardRepo{
		cards: make(map[string]*domain.Card),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryCardRepo) Create(_ context.Context, c *domain.Card) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("creating card: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[c.ID]; ok {
		return fmt.Errorf("card %s: %w", c.ID, ErrConflict)
	}
	stored := c.Clone()
	if stored.Suggestions == nil {
		stored.Suggestions = []domain.Suggestion{}
	}
	r.cards[c.ID] = stored
	r.order = append(r.order, c.ID)
	return nil
}

func (r *MemoryCardRepo) GetByID(_ context.Context, id string) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cards[id]
	if !ok {
		return nil, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	return c.Clone(), nil
}

func (r *MemoryCardRepo) Update(_ context.Context, id string, patch domain.CardPatch) (*domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cards[id]
	if !ok {
		return nil, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	if patch.IsEmpty() {
		return c.Clone(), nil
	}
	next := patch.Apply(c)
	next.UpdatedAt = r.now()
	r.cards[id] = next
	return next.Clone(), nil
}

func (r *MemoryCardRepo) Modify(_ context.Context, id string, fn func(current domain.Card) (domain.CardPatch, error)) (*domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cards[id]
	if !ok {
		return nil, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	patch, err := fn(*c.Clone())
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return c.Clone(), nil
	}
	next := patch.Apply(c)
	next.UpdatedAt = r.now()
	r.cards[id] = next
	return next.Clone(), nil
}

func (r *MemoryCardRepo) List(_ context.Context) ([]*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Card, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.cards[id].Clone())
	}
	return out, nil
}

// Len returns the number of stored cards.
func (r *MemoryCardRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
