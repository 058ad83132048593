package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/intelligence"
	"github.com/alexanderramin/cardboard/internal/repository"
	"github.com/alexanderramin/cardboard/internal/ticket"
)

// ticketService runs ticket generation for one card at a time per card id.
// Requests for different cards proceed concurrently; no lock is held while
// the summarizer runs.
type ticketService struct {
	cards      repository.CardRepo
	summarizer intelligence.Summarizer
	opts       options

	mu       sync.Mutex
	inFlight map[string]bool
	outcome  map[string]contract.GenerationState
}

func NewTicketService(cards repository.CardRepo, summarizer intelligence.Summarizer, opts ...Option) TicketService {
	if summarizer == nil {
		summarizer = intelligence.DisabledSummarizer{}
	}
	return &ticketService{
		cards:      cards,
		summarizer: summarizer,
		opts:       buildOptions(opts),
		inFlight:   make(map[string]bool),
		outcome:    make(map[string]contract.GenerationState),
	}
}

// State reports generating while a request runs, otherwise the outcome of
// the last finished request. Both terminal states admit a new request.
func (s *ticketService) State(cardID string) contract.GenerationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[cardID] {
		return contract.GenerationInProgress
	}
	if st, ok := s.outcome[cardID]; ok {
		return st
	}
	return contract.GenerationIdle
}

func (s *ticketService) begin(cardID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[cardID] {
		return false
	}
	s.inFlight[cardID] = true
	return true
}

// finish clears the in-flight mark. An empty state leaves the recorded
// outcome untouched.
func (s *ticketService) finish(cardID string, st contract.GenerationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, cardID)
	if st != "" {
		s.outcome[cardID] = st
	}
}

func (s *ticketService) Generate(ctx context.Context, req contract.GenerateRequest) (res *contract.GenerateResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"card_id": req.CardID}
	defer func() {
		observe(ctx, s.opts.observer, UseCaseTicketGenerate, startedAt, err, fields)
	}()

	if !s.begin(req.CardID) {
		return nil, fmt.Errorf("card %s: %w", req.CardID, ErrGenerationInFlight)
	}

	card, err := s.cards.GetByID(ctx, req.CardID)
	if err != nil {
		s.finish(req.CardID, "")
		return nil, fmt.Errorf("loading card: %w", err)
	}

	summary, err := s.summarizer.Summarize(ctx, ticket.BuildPrompt(*card, req.Notes))
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		s.finish(req.CardID, contract.GenerationFailed)
		if !errors.Is(err, intelligence.ErrSummarization) {
			err = &intelligence.SummarizationError{Cause: err}
		}
		return nil, fmt.Errorf("generating ticket for card %s: %w", req.CardID, err)
	}

	now := s.opts.now()
	sug := domain.Suggestion{
		ID:     s.opts.newSuggestionID(now),
		Text:   summary,
		Author: domain.AutomatedAuthor,
		Date:   now,
	}
	updated, err := s.cards.Modify(ctx, req.CardID, func(cur domain.Card) (domain.CardPatch, error) {
		return domain.CardPatch{SetSuggestions: true, Suggestions: cur.WithSuggestion(sug)}, nil
	})
	if err != nil {
		s.finish(req.CardID, contract.GenerationFailed)
		return nil, fmt.Errorf("appending generated suggestion: %w", err)
	}
	s.finish(req.CardID, contract.GenerationSucceeded)

	fields["suggestions"] = len(updated.Suggestions)
	return &contract.GenerateResult{
		CardID:          updated.ID,
		Document:        ticket.BuildDocument(*updated, req.Notes, &summary),
		Summary:         summary,
		Suggestion:      sug,
		SuggestionCount: len(updated.Suggestions),
	}, nil
}

// Preview renders the prompt and the document skeleton without calling the
// summarizer or touching the card.
func (s *ticketService) Preview(ctx context.Context, cardID, notes string) (*contract.TicketPreview, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("loading card: %w", err)
	}
	return &contract.TicketPreview{
		CardID:   card.ID,
		Prompt:   ticket.BuildPrompt(*card, notes),
		Document: ticket.BuildDocument(*card, notes, nil),
	}, nil
}
