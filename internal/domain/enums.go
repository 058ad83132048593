package domain

// Category is the topic bucket a card is filed under.
type Category string

const (
	CategoryWIS     Category = "WIS"
	CategoryETS     Category = "ETS"
	CategoryMISOne  Category = "MIS ONE"
	CategorySales   Category = "Sales"
	CategorySupport Category = "Support"
	CategoryTech    Category = "Tech"
)

// Categories is the canonical, ordered set of categories offered at creation.
var Categories = []Category{
	CategoryWIS, CategoryETS, CategoryMISOne, CategorySales, CategorySupport, CategoryTech,
}

// IsValidCategory reports whether c is one of the enumerated categories.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Duration is the advisory lifetime label of a card. Nothing in the core
// expires a card when its duration elapses.
type Duration string

const (
	Duration1Hour   Duration = "1 hour"
	Duration3Hours  Duration = "3 hours"
	Duration10Hours Duration = "10 hours"
	Duration1Day    Duration = "1 day"
	Duration3Days   Duration = "3 days"
	Duration5Days   Duration = "5 days"
	Duration10Days  Duration = "10 days"
)

// Durations is the canonical, ordered set of lifetime labels.
var Durations = []Duration{
	Duration1Hour, Duration3Hours, Duration10Hours,
	Duration1Day, Duration3Days, Duration5Days, Duration10Days,
}

// IsValidDuration reports whether d is one of the enumerated durations.
func IsValidDuration(d Duration) bool {
	for _, known := range Durations {
		if d == known {
			return true
		}
	}
	return false
}

type Vote string

const (
	VoteApprove Vote = "approve"
	VoteReject  Vote = "reject"
)

// AutomatedAuthor marks a suggestion as machine-generated.
const AutomatedAuthor = "ChatGPT"

// AnonymousAuthor is recorded for human suggestions submitted without a name.
const AnonymousAuthor = "Anonymous"
