package cli

import (
	"strings"

	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/spf13/pflag"
)

// categoryFlag is a pflag.Value that folds a user-supplied category onto the
// canonical spelling when it matches one, and keeps it verbatim otherwise.
type categoryFlag struct {
	value domain.Category
}

var _ pflag.Value = (*categoryFlag)(nil)

func (f *categoryFlag) String() string { return string(f.value) }

func (f *categoryFlag) Type() string { return "category" }

func (f *categoryFlag) Set(s string) error {
	s = strings.TrimSpace(s)
	for _, c := range domain.Categories {
		if strings.EqualFold(string(c), s) {
			f.value = c
			return nil
		}
	}
	f.value = domain.Category(s)
	return nil
}

func (f *categoryFlag) matches(c domain.Category) bool {
	return f.value == "" || strings.EqualFold(string(c), string(f.value))
}

func addCategoryFilter(flags *pflag.FlagSet, f *categoryFlag) {
	flags.Var(f, "category", "Only show cards in this category")
}
