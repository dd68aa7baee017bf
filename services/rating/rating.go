// Package rating derives averages, category breakdowns and timelines from raw
// rating records. Everything here is pure; display rounding is applied last.
package rating

import (
	"math"
	"sort"
	"time"

	"github.com/techagentng/citizenrate/models"
)

// Entry is the part of a rating the aggregator needs.
type Entry struct {
	CategoryID uint
	Score      int
	CreatedAt  time.Time
}

// Category names a category the breakdown should report, even when unrated.
type Category struct {
	ID   uint
	Name string
}

// Average is the arithmetic mean of the scores, 0 when there are none.
func Average(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum int
	for _, e := range entries {
		sum += e.Score
	}
	return float64(sum) / float64(len(entries))
}

// Round2 rounds v to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ByCategory reports one row per known category in the order given. Ratings of
// categories not in the list are reported after them, ordered by id.
func ByCategory(entries []Entry, categories []Category) []models.CategoryScore {
	grouped := make(map[uint][]Entry)
	for _, e := range entries {
		grouped[e.CategoryID] = append(grouped[e.CategoryID], e)
	}

	out := make([]models.CategoryScore, 0, len(categories))
	seen := make(map[uint]bool, len(categories))
	for _, c := range categories {
		seen[c.ID] = true
		group := grouped[c.ID]
		out = append(out, models.CategoryScore{
			CategoryID:   c.ID,
			Name:         c.Name,
			AverageScore: Round2(Average(group)),
			Count:        len(group),
		})
	}

	var extra []uint
	for id := range grouped {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, id := range extra {
		out = append(out, models.CategoryScore{
			CategoryID:   id,
			AverageScore: Round2(Average(grouped[id])),
			Count:        len(grouped[id]),
		})
	}
	return out
}

// Timeline buckets ratings by their UTC calendar date, oldest first.
func Timeline(entries []Entry) []models.TimelinePoint {
	grouped := make(map[string][]Entry)
	for _, e := range entries {
		day := e.CreatedAt.UTC().Format("2006-01-02")
		grouped[day] = append(grouped[day], e)
	}

	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]models.TimelinePoint, 0, len(days))
	for _, day := range days {
		out = append(out, models.TimelinePoint{
			Date:         day,
			Count:        len(grouped[day]),
			AverageScore: Round2(Average(grouped[day])),
		})
	}
	return out
}

// Summarize builds the statistics payload for one entity.
func Summarize(entries []Entry, categories []Category) models.RatingStatistics {
	return models.RatingStatistics{
		TotalRatings: len(entries),
		AverageScore: Round2(Average(entries)),
		Categories:   ByCategory(entries, categories),
		Timeline:     Timeline(entries),
	}
}

// FromNomineeRatings adapts stored nominee ratings.
func FromNomineeRatings(ratings []models.NomineeRating) []Entry {
	out := make([]Entry, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, Entry{CategoryID: r.RatingCategoryID, Score: r.Score, CreatedAt: r.CreatedAt})
	}
	return out
}

// FromInstitutionRatings adapts stored institution ratings.
func FromInstitutionRatings(ratings []models.InstitutionRating) []Entry {
	out := make([]Entry, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, Entry{CategoryID: r.RatingCategoryID, Score: r.Score, CreatedAt: r.CreatedAt})
	}
	return out
}

// Ranked is anything that can be placed on a leaderboard.
type Ranked interface {
	Average() float64
}

// SortByAverage orders items by full-precision average, highest first when desc.
// The sort is stable so ties keep their incoming order.
func SortByAverage[T Ranked](items []T, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return items[i].Average() > items[j].Average()
		}
		return items[i].Average() < items[j].Average()
	})
}

// Top returns the first n items of a sorted slice.
func Top[T any](items []T, n int) []T {
	if n < 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
