package awards

import (
	"fmt"
	"slices"
	"time"
)

// FirstCeremonyYear is the year before the first ceremony's eligibility
// year; iteration n covers year FirstCeremonyYear+n.
const FirstCeremonyYear = 1927

// Ordinal renders an iteration as an English ordinal: 1st, 2nd, 11th, 93rd.
func Ordinal(n int) string {
	suffix := "th"
	switch v := n % 100; {
	case v >= 11 && v <= 13:
	case v%10 == 1:
		suffix = "st"
	case v%10 == 2:
		suffix = "nd"
	case v%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// FormatDate renders a backend date (YYYY-MM-DD) as "March 10, 2024". Dates
// that do not parse are returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// TimelineItem is one contiguous span during which a category carried a
// given name.
type TimelineItem struct {
	StartYear      int    `json:"start_year"`
	StartIteration int    `json:"start_iteration"`
	EndYear        int    `json:"end_year"`
	EndIteration   int    `json:"end_iteration"`
	Name           string `json:"name"`
}

// Timeline flattens a category's names into one item per (name, range),
// newest range first.
func Timeline(names []CategoryName) []TimelineItem {
	items := make([]TimelineItem, 0, len(names))
	for _, cn := range names {
		for _, r := range cn.Ranges {
			items = append(items, TimelineItem{
				StartYear:      FirstCeremonyYear + r[0],
				StartIteration: r[0],
				EndYear:        FirstCeremonyYear + r[1],
				EndIteration:   r[1],
				Name:           cn.CommonName,
			})
		}
	}
	slices.SortStableFunc(items, func(a, b TimelineItem) int {
		return b.EndIteration - a.EndIteration
	})
	return items
}

// CeremonyCount returns the number of ceremonies covered by all ranges.
func CeremonyCount(names []CategoryName) int {
	n := 0
	for _, cn := range names {
		for _, r := range cn.Ranges {
			n += r[1] - r[0] + 1
		}
	}
	return n
}

// NewestFirst returns the categories of every edition, walking the editions
// from last to first. Category order within an edition is kept.
func NewestFirst(editions []Edition) []Category {
	var out []Category
	for i := len(editions) - 1; i >= 0; i-- {
		out = append(out, editions[i].Categories...)
	}
	return out
}
