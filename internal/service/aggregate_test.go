package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryDistribution_OneCardPerCategory(t *testing.T) {
	var cards []*domain.Card
	for _, c := range domain.Categories {
		cards = append(cards, testutil.NewTestCard(string(c), testutil.WithCategory(c)))
	}

	got := CategoryDistribution(cards)

	require.Len(t, got, 6)
	for i, c := range domain.Categories {
		assert.Equal(t, contract.CategoryCount{Category: c, Count: 1}, got[i])
	}
}

func TestCategoryDistribution_IncludesZeroCounts(t *testing.T) {
	cards := []*domain.Card{
		testutil.NewTestCard("a", testutil.WithCategory(domain.CategoryTech)),
		testutil.NewTestCard("b", testutil.WithCategory(domain.CategoryTech)),
	}

	got := CategoryDistribution(cards)

	require.Len(t, got, 6)
	assert.Equal(t, contract.CategoryCount{Category: domain.CategoryWIS}, got[0])
	assert.Equal(t, contract.CategoryCount{Category: domain.CategoryTech, Count: 2}, got[5])
}

func TestCategoryDistribution_UnknownCategoriesFollowInFirstSeenOrder(t *testing.T) {
	cards := []*domain.Card{
		testutil.NewTestCard("a", testutil.WithCategory("Ops")),
		testutil.NewTestCard("b", testutil.WithCategory("Legal")),
		testutil.NewTestCard("c", testutil.WithCategory("Ops")),
		testutil.NewTestCard("d", testutil.WithCategory(domain.CategorySales)),
	}

	got := CategoryDistribution(cards)

	require.Len(t, got, 8)
	assert.Equal(t, contract.CategoryCount{Category: domain.CategorySales, Count: 1}, got[3])
	assert.Equal(t, contract.CategoryCount{Category: "Ops", Count: 2}, got[6])
	assert.Equal(t, contract.CategoryCount{Category: "Legal", Count: 1}, got[7])
}

func TestCategoryDistribution_Empty(t *testing.T) {
	got := CategoryDistribution(nil)
	require.Len(t, got, 6)
	for _, cc := range got {
		assert.Zero(t, cc.Count)
	}
}

func TestActivityTotals(t *testing.T) {
	cards := []*domain.Card{
		testutil.CatsCard(),
		testutil.NewTestCard("b", testutil.WithVotes(1, 2), testutil.WithSuggestions("Ann", "x")),
		testutil.NewTestCard("c"),
	}

	assert.Equal(t, contract.ActivityTotals{Approved: 90, Rejected: 78, Suggestions: 4}, ActivityTotals(cards))
	assert.Equal(t, contract.ActivityTotals{}, ActivityTotals(nil))
}

func TestRecentSuggestions_NewestFirstWithLimit(t *testing.T) {
	cats := testutil.CatsCard()
	other := testutil.NewTestCard("other")
	other.Suggestions = []domain.Suggestion{
		testutil.NewTestSuggestion("latest", "Sam", testutil.FixedTime.Add(time.Hour)),
		testutil.NewTestSuggestion("generated", domain.AutomatedAuthor, testutil.FixedTime.Add(2*time.Hour)),
	}

	got := RecentSuggestions([]*domain.Card{cats, other}, 3, false)

	require.Len(t, got, 3)
	assert.Equal(t, "latest", got[0].Text)
	assert.Equal(t, other.ID, got[0].CardID)
	assert.Equal(t, "other", got[0].CardContent)
	assert.Equal(t, "Dogs are more loyal", got[1].Text)
	assert.Equal(t, "Cats are more independent", got[2].Text)
}

func TestRecentSuggestions_IncludeAutomated(t *testing.T) {
	card := testutil.NewTestCard("x")
	card.Suggestions = []domain.Suggestion{
		testutil.NewTestSuggestion("human", "Sam", testutil.FixedTime),
		testutil.NewTestSuggestion("generated", domain.AutomatedAuthor, testutil.FixedTime.Add(time.Minute)),
	}

	got := RecentSuggestions([]*domain.Card{card}, 10, true)
	require.Len(t, got, 2)
	assert.Equal(t, domain.AutomatedAuthor, got[0].Author)

	assert.Nil(t, RecentSuggestions([]*domain.Card{card}, 0, true))
}
