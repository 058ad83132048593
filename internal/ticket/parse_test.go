package ticket

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/alexanderramin/cardboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata_RoundTrip(t *testing.T) {
	categories := append([]domain.Category{}, domain.Categories...)
	categories = append(categories, "Unlisted Team")

	for i, cat := range categories {
		for _, votes := range [][2]int{{0, 0}, {89, 76}, {1000000, 3}} {
			name := fmt.Sprintf("%s/%d-%d", cat, votes[0], votes[1])
			t.Run(name, func(t *testing.T) {
				card := testutil.NewTestCard("round trip",
					testutil.WithID(fmt.Sprintf("card-%d", i)),
					testutil.WithCategory(cat),
					testutil.WithVotes(votes[0], votes[1]),
				)
				if i%2 == 0 {
					testutil.WithSuggestions("Kim", "a", "b")(card)
				}
				summary := "generated"

				for _, doc := range []string{
					BuildDocument(*card, "", nil),
					BuildDocument(*card, "notes", &summary),
				} {
					md, err := ParseMetadata(doc)
					require.NoError(t, err)
					assert.Equal(t, card.ID, md.CardID)
					assert.Equal(t, cat, md.Category)
					assert.Equal(t, votes[0], md.ApprovedCount)
					assert.Equal(t, votes[1], md.RejectedCount)
				}
			})
		}
	}
}

func TestParseMetadata_IgnoresStrayLabelInNotes(t *testing.T) {
	card := testutil.NewTestCard("x", testutil.WithID("real"), testutil.WithVotes(1, 2))

	doc := BuildDocument(*card, "*Card ID:* fake", nil)

	md, err := ParseMetadata(doc)
	require.NoError(t, err)
	assert.Equal(t, "real", md.CardID)
}

func TestParseMetadata_Missing(t *testing.T) {
	_, err := ParseMetadata("Summary\nPB: nothing else")
	assert.ErrorIs(t, err, ErrNoMetadata)
}

func TestGeneratedSummary_Absent(t *testing.T) {
	_, ok := GeneratedSummary(BuildDocument(*testutil.CatsCard(), "", nil))
	assert.False(t, ok)
}
