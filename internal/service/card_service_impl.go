package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/repository"
)

type cardService struct {
	cards repository.CardRepo
	opts  options
}

func NewCardService(cards repository.CardRepo, opts ...Option) CardService {
	return &cardService{cards: cards, opts: buildOptions(opts)}
}

func (s *cardService) Create(ctx context.Context, in domain.NewCardInput) (card *domain.Card, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": string(in.Category)}
	defer func() {
		observe(ctx, s.opts.observer, UseCaseCardCreate, startedAt, err, fields)
	}()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.opts.now()
	card = &domain.Card{
		ID:          s.opts.newCardID(),
		Content:     strings.TrimSpace(in.Content),
		Category:    in.Category,
		Duration:    in.Duration,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Suggestions: []domain.Suggestion{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}
	fields["card_id"] = card.ID
	return card, nil
}

func (s *cardService) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	return s.cards.GetByID(ctx, id)
}

func (s *cardService) List(ctx context.Context) ([]*domain.Card, error) {
	return s.cards.List(ctx)
}

func (s *cardService) Vote(ctx context.Context, id string, vote domain.Vote) (card *domain.Card, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.opts.observer, UseCaseCardVote, startedAt, err, map[string]any{
			"card_id": id,
			"vote":    string(vote),
		})
	}()

	if vote != domain.VoteApprove && vote != domain.VoteReject {
		return nil, &domain.ValidationError{Field: "vote", Message: fmt.Sprintf("unknown vote %q (use approve or reject)", vote)}
	}

	card, err = s.cards.Modify(ctx, id, func(cur domain.Card) (domain.CardPatch, error) {
		if vote == domain.VoteApprove {
			n := cur.ApprovedCount + 1
			return domain.CardPatch{ApprovedCount: &n}, nil
		}
		n := cur.RejectedCount + 1
		return domain.CardPatch{RejectedCount: &n}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording vote: %w", err)
	}
	return card, nil
}

func (s *cardService) Suggest(ctx context.Context, id, text, author string) (card *domain.Card, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.opts.observer, UseCaseCardSuggest, startedAt, err, map[string]any{"card_id": id})
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &domain.ValidationError{Field: "suggestion", Message: "Please enter a suggestion"}
	}
	author = domain.CoalesceStr(strings.TrimSpace(author), domain.AnonymousAuthor)
	if author == domain.AutomatedAuthor {
		return nil, &domain.ValidationError{Field: "author", Message: fmt.Sprintf("%q is reserved for generated suggestions", author)}
	}

	now := s.opts.now()
	sug := domain.Suggestion{
		ID:     s.opts.newSuggestionID(now),
		Text:   text,
		Author: author,
		Date:   now,
	}
	card, err = s.cards.Modify(ctx, id, func(cur domain.Card) (domain.CardPatch, error) {
		return domain.CardPatch{SetSuggestions: true, Suggestions: cur.WithSuggestion(sug)}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding suggestion: %w", err)
	}
	return card, nil
}
