package importer

import (
	"fmt"
	"strings"
	"time"
)

// ValidateCardFile checks the file for errors before conversion.
// Returns a slice of all validation errors found.
//
// Categories and durations outside the enumerated sets are accepted and kept
// as-is; only card creation restricts them.
func ValidateCardFile(file *CardFile) []error {
	var errs []error

	ids := make(map[string]bool)
	for i, c := range file.Cards {
		prefix := fmt.Sprintf("cards[%d]", i)
		if c.ID != "" {
			if ids[c.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
			}
			ids[c.ID] = true
		}
		errs = append(errs, validateCard(prefix, &c)...)
	}

	return errs
}

func validateCard(prefix string, c *CardImport) []error {
	var errs []error

	if strings.TrimSpace(c.Content) == "" {
		errs = append(errs, fmt.Errorf("%s.content is required", prefix))
	}
	if strings.TrimSpace(c.Category) == "" {
		errs = append(errs, fmt.Errorf("%s.category is required", prefix))
	}
	if c.ApprovedCount != nil && *c.ApprovedCount < 0 {
		errs = append(errs, fmt.Errorf("%s.approved_count must be >= 0, got %d", prefix, *c.ApprovedCount))
	}
	if c.RejectedCount != nil && *c.RejectedCount < 0 {
		errs = append(errs, fmt.Errorf("%s.rejected_count must be >= 0, got %d", prefix, *c.RejectedCount))
	}
	errs = append(errs, validateOptionalDate(prefix+".created_at", c.CreatedAt)...)

	sugIDs := make(map[string]bool)
	for j, s := range c.Suggestions {
		sp := fmt.Sprintf("%s.suggestions[%d]", prefix, j)
		if strings.TrimSpace(s.Text) == "" {
			errs = append(errs, fmt.Errorf("%s.text is required", sp))
		}
		if s.ID != "" {
			if sugIDs[s.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", sp, s.ID))
			}
			sugIDs[s.ID] = true
		}
		errs = append(errs, validateOptionalDate(sp+".date", s.Date)...)
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339Nano, *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid timestamp %q (expected RFC 3339)", field, *dateStr)}
	}
	return nil
}
