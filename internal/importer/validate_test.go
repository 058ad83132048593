package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

func validMinimalFile() *CardFile {
	return &CardFile{
		Cards: []CardImport{
			{Content: "Cats or dogs?", Category: "MIS ONE"},
		},
	}
}

func TestValidateCardFile_ValidMinimal(t *testing.T) {
	errs := ValidateCardFile(validMinimalFile())
	assert.Empty(t, errs)
}

func TestValidateCardFile_ValidFull(t *testing.T) {
	file := &CardFile{
		Cards: []CardImport{
			{
				ID:            "3",
				Content:       "Cats or dogs?",
				Category:      "MIS ONE",
				Duration:      "3 days",
				ApprovedCount: ptrInt(89),
				RejectedCount: ptrInt(76),
				CreatedAt:     ptrStr("2025-03-14T09:26:53.589Z"),
				Suggestions: []SuggestionImport{
					{ID: "a", Text: "Both have their own charms", Author: "Alex", Date: ptrStr("2025-03-14T09:26:53.589Z")},
					{Text: "Cats are more independent"},
				},
			},
			{Content: "Ship on Fridays", Category: "Ops"},
		},
	}
	assert.Empty(t, ValidateCardFile(file))
}

func TestValidateCardFile_MissingFields(t *testing.T) {
	file := &CardFile{Cards: []CardImport{{Content: "  ", Category: ""}}}

	errs := ValidateCardFile(file)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "cards[0].content is required")
	assert.Contains(t, errs[1].Error(), "cards[0].category is required")
}

func TestValidateCardFile_NegativeCounts(t *testing.T) {
	file := validMinimalFile()
	file.Cards[0].ApprovedCount = ptrInt(-1)
	file.Cards[0].RejectedCount = ptrInt(-2)

	errs := ValidateCardFile(file)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "approved_count must be >= 0")
	assert.Contains(t, errs[1].Error(), "rejected_count must be >= 0")
}

func TestValidateCardFile_DuplicateCardIDs(t *testing.T) {
	file := &CardFile{Cards: []CardImport{
		{ID: "1", Content: "a", Category: "WIS"},
		{ID: "1", Content: "b", Category: "WIS"},
	}}

	errs := ValidateCardFile(file)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `duplicate id "1"`)
}

func TestValidateCardFile_SuggestionErrors(t *testing.T) {
	file := validMinimalFile()
	file.Cards[0].Suggestions = []SuggestionImport{
		{ID: "x", Text: "fine"},
		{ID: "x", Text: ""},
		{Text: "dated", Date: ptrStr("yesterday")},
	}

	errs := ValidateCardFile(file)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "cards[0].suggestions[1].text is required")
	assert.Contains(t, errs[1].Error(), `cards[0].suggestions[1].id: duplicate id "x"`)
	assert.Contains(t, errs[2].Error(), `cards[0].suggestions[2].date: invalid timestamp "yesterday"`)
}

func TestValidateCardFile_EmptyFileIsValid(t *testing.T) {
	assert.Empty(t, ValidateCardFile(&CardFile{}))
}
