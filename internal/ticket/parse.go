package ticket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cardboard/internal/domain"
)

// ErrNoMetadata indicates a document lacks a complete metadata block.
var ErrNoMetadata = errors.New("ticket document has no metadata block")

// Metadata is the card identity and vote tally embedded in a document.
type Metadata struct {
	CardID        string
	Category      domain.Category
	ApprovedCount int
	RejectedCount int
}

// ParseMetadata recovers the metadata block from a rendered document. The
// block is the first run of four consecutive lines carrying the card id,
// category, approval and rejection labels, so description text quoting a
// single label does not confuse it.
func ParseMetadata(doc string) (Metadata, error) {
	lines := strings.Split(doc, "\n")
	for i := 0; i+3 < len(lines); i++ {
		if !strings.HasPrefix(lines[i], labelCardID) ||
			!strings.HasPrefix(lines[i+1], labelCategory) ||
			!strings.HasPrefix(lines[i+2], labelApprovalCount) ||
			!strings.HasPrefix(lines[i+3], labelRejectionCount) {
			continue
		}

		approved, err := strconv.Atoi(strings.TrimPrefix(lines[i+2], labelApprovalCount))
		if err != nil {
			return Metadata{}, fmt.Errorf("parsing approval count: %w", err)
		}
		rejected, err := strconv.Atoi(strings.TrimPrefix(lines[i+3], labelRejectionCount))
		if err != nil {
			return Metadata{}, fmt.Errorf("parsing rejection count: %w", err)
		}
		return Metadata{
			CardID:        strings.TrimPrefix(lines[i], labelCardID),
			Category:      domain.Category(strings.TrimPrefix(lines[i+1], labelCategory)),
			ApprovedCount: approved,
			RejectedCount: rejected,
		}, nil
	}
	return Metadata{}, ErrNoMetadata
}

// CountSuggestionEntries counts the entries in a document's suggestions
// section. Documents without the section report zero.
func CountSuggestionEntries(doc string) int {
	start := strings.Index(doc, "\n"+HeaderSuggestions+"\n")
	if start == -1 {
		return 0
	}
	section := doc[start+1:]
	if end := strings.LastIndex(section, "\n"+HeaderGenerated+"\n"); end != -1 {
		section = section[:end]
	}

	n := 0
	for _, line := range strings.Split(section, "\n") {
		if strings.HasPrefix(line, labelSuggestion) {
			n++
		}
	}
	return n
}

// GeneratedSummary returns the text following the generated-summary header,
// or false when the document has none.
func GeneratedSummary(doc string) (string, bool) {
	marker := "\n" + HeaderGenerated + "\n\n"
	idx := strings.LastIndex(doc, marker)
	if idx == -1 {
		return "", false
	}
	return doc[idx+len(marker):], true
}
