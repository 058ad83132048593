package repository

import (
	"context"

	"github.com/alexanderramin/cardboard/internal/domain"
)

// CardRepo owns the authoritative collection of cards and their suggestion
// histories. Every returned card is a private copy; callers change stored
// state only through Create and Update.
type CardRepo interface {
	Create(ctx context.Context, c *domain.Card) error
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	// Update shallow-merges patch into the stored card and returns the new state.
	Update(ctx context.Context, id string, patch domain.CardPatch) (*domain.Card, error)
	// Modify computes a patch from the current stored card and applies it
	// atomically. An error from fn aborts the update.
	Modify(ctx context.Context, id string, fn func(current domain.Card) (domain.CardPatch, error)) (*domain.Card, error)
	// List returns cards in insertion order.
	List(ctx context.Context) ([]*domain.Card, error)
}
