package models

// Category is one head-to-head scoring statistic.
type Category string

const (
	Runs        Category = "R"
	HomeRuns    Category = "HR"
	RBI         Category = "RBI"
	StolenBases Category = "SB"
	Strikeouts  Category = "SO"
	TotalBases  Category = "TB"
	OnBasePct   Category = "OBP"
)

// Categories lists every scored category in display order.
var Categories = []Category{Runs, HomeRuns, RBI, Strikeouts, TotalBases, StolenBases, OnBasePct}

// CountingCategories lists the categories that accumulate over a week.
// OBP is a rate stat and is aggregated differently.
var CountingCategories = []Category{Runs, HomeRuns, RBI, StolenBases, Strikeouts, TotalBases}

// IsRate reports whether the category is a rate stat rather than a count.
func (c Category) IsRate() bool {
	return c == OnBasePct
}
