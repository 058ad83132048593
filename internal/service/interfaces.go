package service

import (
	"context"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/importer"
)

type CardService interface {
	Create(ctx context.Context, in domain.NewCardInput) (*domain.Card, error)
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	List(ctx context.Context) ([]*domain.Card, error)
	Vote(ctx context.Context, id string, vote domain.Vote) (*domain.Card, error)
	Suggest(ctx context.Context, id, text, author string) (*domain.Card, error)
}

type TicketService interface {
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResult, error)
	Preview(ctx context.Context, cardID, notes string) (*contract.TicketPreview, error)
	State(cardID string) contract.GenerationState
}

type DashboardService interface {
	Summary(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

// ImportResult holds the outcome of a card file import.
type ImportResult struct {
	Cards           []*domain.Card
	SuggestionCount int
}

type ImportService interface {
	ImportCards(ctx context.Context, filePath string) (*ImportResult, error)
	ImportCardsFromSchema(ctx context.Context, file *importer.CardFile) (*ImportResult, error)
	ExportCards(ctx context.Context, filePath string) (int, error)
}
