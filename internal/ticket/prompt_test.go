package ticket

import (
	"testing"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_FullCard(t *testing.T) {
	card := testutil.CatsCard()

	got := BuildPrompt(*card, "Focus on apartment living")

	want := "Main Idea: I think cats are better than dogs\n\n" +
		"Category: MIS ONE\n" +
		"Approvals: 89, Rejections: 76\n\n" +
		"Additional Description: Focus on apartment living\n\n" +
		"Suggestions:\n" +
		"1. Both have their own charms (by Alex)\n" +
		"2. Cats are more independent (by Alex)\n" +
		"3. Dogs are more loyal (by Alex)\n"
	assert.Equal(t, want, got)
}

func TestBuildPrompt_NoNotesNoSuggestions(t *testing.T) {
	card := testutil.NewTestCard("Remote work is more productive", testutil.WithCategory(domain.CategorySupport), testutil.WithVotes(0, 0))

	got := BuildPrompt(*card, "   ")

	want := "Main Idea: Remote work is more productive\n\n" +
		"Category: Support\n" +
		"Approvals: 0, Rejections: 0\n\n"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "Additional Description")
	assert.NotContains(t, got, "Suggestions:")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	card := testutil.CatsCard()
	assert.Equal(t, BuildPrompt(*card, "n"), BuildPrompt(*card, "n"))
}

func TestBuildPrompt_UnknownCategoryPassesThrough(t *testing.T) {
	card := testutil.NewTestCard("x", testutil.WithCategory("Legal"))
	assert.Contains(t, BuildPrompt(*card, ""), "Category: Legal\n")
}
