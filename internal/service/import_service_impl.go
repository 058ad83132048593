package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cardboard/internal/importer"
	"github.com/alexanderramin/cardboard/internal/repository"
)

type importService struct {
	cards repository.CardRepo
	opts  options
}

func NewImportService(cards repository.CardRepo, opts ...Option) ImportService {
	return &importService{cards: cards, opts: buildOptions(opts)}
}

func (s *importService) ImportCards(ctx context.Context, filePath string) (*ImportResult, error) {
	file, err := importer.LoadCardFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading card file: %w", err)
	}
	return s.ImportCardsFromSchema(ctx, file)
}

func (s *importService) ImportCardsFromSchema(ctx context.Context, file *importer.CardFile) (res *ImportResult, err error) {
	startedAt := time.Now()
	defer func() {
		fields := map[string]any{}
		if res != nil {
			fields["cards"] = len(res.Cards)
		}
		observe(ctx, s.opts.observer, UseCaseCardsImport, startedAt, err, fields)
	}()

	if errs := importer.ValidateCardFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	cards := importer.Convert(file)
	// Reject the whole file up front when any id is taken; the store has no delete.
	for _, card := range cards {
		_, err := s.cards.GetByID(ctx, card.ID)
		if err == nil {
			return nil, fmt.Errorf("card %q: %w", card.ID, repository.ErrConflict)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("checking card %q: %w", card.ID, err)
		}
	}

	res = &ImportResult{}
	for _, card := range cards {
		if err := s.cards.Create(ctx, card); err != nil {
			return nil, fmt.Errorf("creating card %q: %w", card.ID, err)
		}
		res.Cards = append(res.Cards, card)
		res.SuggestionCount += len(card.Suggestions)
	}
	return res, nil
}

// ExportCards writes every stored card to filePath and returns how many were written.
func (s *importService) ExportCards(ctx context.Context, filePath string) (n int, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.opts.observer, UseCaseCardsExport, startedAt, err, map[string]any{"cards": n})
	}()

	cards, err := s.cards.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing cards: %w", err)
	}
	if err := importer.WriteCardFile(filePath, importer.FromCards(cards)); err != nil {
		return 0, err
	}
	return len(cards), nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
