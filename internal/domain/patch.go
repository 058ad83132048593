package domain

// CardPatch carries a shallow update. Nil fields are left alone; the
// suggestion sequence is replaced wholesale when SetSuggestions is true.
type CardPatch struct {
	Content       *string
	Category      *Category
	Duration      *Duration
	ImageURL      *string
	ApprovedCount *int
	RejectedCount *int

	SetSuggestions bool
	Suggestions    []Suggestion
}

// IsEmpty reports whether the patch changes nothing.
func (p CardPatch) IsEmpty() bool {
	return p.Content == nil && p.Category == nil && p.Duration == nil &&
		p.ImageURL == nil && p.ApprovedCount == nil && p.RejectedCount == nil &&
		!p.SetSuggestions
}

// Apply returns a copy of c with the patch merged in. c is not modified.
func (p CardPatch) Apply(c *Card) *Card {
	out := c.Clone()
	out.Content = CoalesceStr(derefStr(p.Content), out.Content)
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.ImageURL != nil {
		out.ImageURL = *p.ImageURL
	}
	out.ApprovedCount = IntFromPtrWithDefault(out.ApprovedCount, p.ApprovedCount)
	out.RejectedCount = IntFromPtrWithDefault(out.RejectedCount, p.RejectedCount)
	if p.SetSuggestions {
		out.Suggestions = make([]Suggestion, len(p.Suggestions))
		copy(out.Suggestions, p.Suggestions)
	}
	return out
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
