package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_AppliesDefaults(t *testing.T) {
	cards := Convert(&CardFile{Cards: []CardImport{
		{Content: "  Cats or dogs?  ", Category: "MIS ONE", Suggestions: []SuggestionImport{{Text: "Dogs"}}},
	}})

	require.Len(t, cards, 1)
	c := cards[0]
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Cats or dogs?", c.Content)
	assert.Equal(t, domain.CategoryMISOne, c.Category)
	assert.Zero(t, c.ApprovedCount)
	assert.Zero(t, c.RejectedCount)
	assert.False(t, c.CreatedAt.IsZero())

	require.Len(t, c.Suggestions, 1)
	assert.Len(t, c.Suggestions[0].ID, 26, "generated suggestion ids are ULIDs")
	assert.Equal(t, domain.AnonymousAuthor, c.Suggestions[0].Author)
}

func TestConvert_KeepsExplicitValues(t *testing.T) {
	cards := Convert(&CardFile{Cards: []CardImport{{
		ID:            "3",
		Content:       "Cats or dogs?",
		Category:      "Ops",
		Duration:      "2 weeks",
		ApprovedCount: ptrInt(89),
		RejectedCount: ptrInt(76),
		Suggestions: []SuggestionImport{
			{ID: "s1", Text: "first", Author: "Alex", Date: ptrStr("2025-03-14T09:26:53.589Z")},
			{ID: "s2", Text: "second", Author: domain.AutomatedAuthor},
		},
	}}})

	require.Len(t, cards, 1)
	c := cards[0]
	assert.Equal(t, "3", c.ID)
	assert.Equal(t, domain.Category("Ops"), c.Category, "unknown categories are carried through")
	assert.Equal(t, domain.Duration("2 weeks"), c.Duration)
	assert.Equal(t, 89, c.ApprovedCount)
	assert.Equal(t, 76, c.RejectedCount)

	require.Len(t, c.Suggestions, 2)
	assert.Equal(t, "s1", c.Suggestions[0].ID)
	assert.Equal(t, testutil.FixedTime, c.Suggestions[0].Date)
	assert.True(t, c.Suggestions[1].IsAutomated())
}

func TestFromCards_RoundTrip(t *testing.T) {
	original := testutil.CatsCard()

	cards := Convert(FromCards([]*domain.Card{original}))

	require.Len(t, cards, 1)
	got := cards[0]
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Category, got.Category)
	assert.Equal(t, original.ApprovedCount, got.ApprovedCount)
	assert.Equal(t, original.RejectedCount, got.RejectedCount)
	assert.Equal(t, original.Suggestions, got.Suggestions)
}

func TestWriteAndLoadCardFile(t *testing.T) {
	for _, name := range []string{"cards.yaml", "cards.json"} {
		name := name
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			file := FromCards([]*domain.Card{testutil.CatsCard()})

			require.NoError(t, WriteCardFile(path, file))

			loaded, err := LoadCardFile(path)
			require.NoError(t, err)
			assert.Equal(t, file, loaded)

			_, err = os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestParseCardFile_YAML(t *testing.T) {
	data := []byte(`
cards:
  - id: "3"
    content: Cats or dogs?
    category: MIS ONE
    approved_count: 89
    rejected_count: 76
    suggestions:
      - text: Cats are more independent
        author: Alex
        date: "2025-03-14T09:26:53.589Z"
`)

	file, err := ParseCardFile(data, FormatYAML)
	require.NoError(t, err)
	require.Empty(t, ValidateCardFile(file))

	cards := Convert(file)
	require.Len(t, cards, 1)
	assert.Equal(t, 89, cards[0].ApprovedCount)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC), cards[0].Suggestions[0].Date)
}

func TestParseCardFile_Malformed(t *testing.T) {
	_, err := ParseCardFile([]byte("{not json"), FormatJSON)
	assert.Error(t, err)

	_, err = ParseCardFile([]byte("cards: [unclosed"), FormatYAML)
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("cards.JSON"))
	assert.Equal(t, FormatYAML, FormatForPath("cards.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("cards"))
}
