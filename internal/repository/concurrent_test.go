package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReadDuringWrite verifies that List and GetByID stay
// consistent while another goroutine creates and updates cards.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	repo := NewMemoryCardRepo()
	ctx := context.Background()

	seed := testutil.NewTestCard("seed", testutil.WithID("seed"))
	require.NoError(t, repo.Create(ctx, seed))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			c := testutil.NewTestCard(fmt.Sprintf("Card-%d", i))
			if err := repo.Create(ctx, c); err != nil {
				t.Errorf("create: %v", err)
				return
			}
			n := i + 1
			if _, err := repo.Update(ctx, "seed", domain.CardPatch{ApprovedCount: &n}); err != nil {
				t.Errorf("update: %v", err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				cards, err := repo.List(ctx)
				if err != nil {
					t.Errorf("list: %v", err)
					return
				}
				if len(cards) == 0 || cards[0].ID != "seed" {
					t.Errorf("seed card missing or reordered")
					return
				}
				if _, err := repo.GetByID(ctx, "seed"); err != nil {
					t.Errorf("get: %v", err)
					return
				}
			}
		}()
	}

	wg.Wait()

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 21)

	final, err := repo.GetByID(ctx, "seed")
	require.NoError(t, err)
	assert.Equal(t, 20, final.ApprovedCount)
}
