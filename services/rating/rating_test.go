package rating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/models"
)

func entry(cat uint, score int, at string) Entry {
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		panic(err)
	}
	return Entry{CategoryID: cat, Score: score, CreatedAt: t}
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 4.0, Average([]Entry{{Score: 3}, {Score: 5}}))
	assert.InDelta(t, 11.0/3.0, Average([]Entry{{Score: 3}, {Score: 4}, {Score: 4}}), 1e-12)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.67, Round2(11.0/3.0))
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.0, Round2(0))
}

func TestByCategory(t *testing.T) {
	entries := []Entry{
		entry(1, 2, "2024-03-01T10:00:00Z"),
		entry(1, 5, "2024-03-01T11:00:00Z"),
		entry(3, 4, "2024-03-02T11:00:00Z"),
	}
	cats := []Category{{ID: 1, Name: "Bribery"}, {ID: 2, Name: "Nepotism"}}

	got := ByCategory(entries, cats)
	assert.Equal(t, []models.CategoryScore{
		{CategoryID: 1, Name: "Bribery", AverageScore: 3.5, Count: 2},
		{CategoryID: 2, Name: "Nepotism", AverageScore: 0, Count: 0},
		{CategoryID: 3, AverageScore: 4, Count: 1},
	}, got)
}

func TestTimelineUsesUTCDates(t *testing.T) {
	entries := []Entry{
		entry(1, 5, "2024-03-02T01:00:00+03:00"), // 2024-03-01 in UTC
		entry(1, 1, "2024-03-01T09:00:00Z"),
		entry(1, 4, "2024-03-03T00:00:00Z"),
	}

	got := Timeline(entries)
	assert.Equal(t, []models.TimelinePoint{
		{Date: "2024-03-01", Count: 2, AverageScore: 3},
		{Date: "2024-03-03", Count: 1, AverageScore: 4},
	}, got)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Entry{entry(1, 3, "2024-01-01T00:00:00Z"), entry(1, 5, "2024-01-01T00:00:00Z")}, nil)
	assert.Equal(t, 2, s.TotalRatings)
	assert.Equal(t, 4.0, s.AverageScore)
	require.Len(t, s.Timeline, 1)

	empty := Summarize(nil, nil)
	assert.Equal(t, 0, empty.TotalRatings)
	assert.Equal(t, 0.0, empty.AverageScore)
	assert.NotNil(t, empty.Categories)
	assert.NotNil(t, empty.Timeline)
}

type item struct {
	name string
	avg  float64
}

func (i item) Average() float64 { return i.avg }

func TestSortByAverageUsesFullPrecisionAndIsStable(t *testing.T) {
	items := []item{
		{"a", 3.334},
		{"b", 3.336},
		{"c", 4},
		{"d", 3.334},
	}
	SortByAverage(items, true)
	assert.Equal(t, []string{"c", "b", "a", "d"}, names(items))

	SortByAverage(items, false)
	assert.Equal(t, []string{"a", "d", "b", "c"}, names(items))
}

func TestTop(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Top(items, 5))
	assert.Equal(t, []int{1, 2}, Top(items[:2], 5))
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}
