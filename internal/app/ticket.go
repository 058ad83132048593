package app

import "github.com/alexanderramin/cardboard/internal/domain"

// GenerationState is the per-card lifecycle of a ticket generation.
type GenerationState string

const (
	GenerationIdle       GenerationState = "idle"
	GenerationInProgress GenerationState = "generating"
	GenerationSucceeded  GenerationState = "succeeded"
	GenerationFailed     GenerationState = "failed"
)

type GenerateRequest struct {
	CardID string
	// Notes is the optional free-text description typed alongside the card.
	Notes string
}

type GenerateResult struct {
	CardID     string
	Document   string
	Summary    string
	Suggestion domain.Suggestion
	// SuggestionCount is the card's suggestion count after the append.
	SuggestionCount int
}

type TicketPreview struct {
	CardID   string
	Prompt   string
	Document string
}
