package query

import (
	"math"
	"net/url"
	"sort"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a requested page. Number is 1-based and not clamped to the result size.
type Page struct {
	Number int
	Limit  int
}

// Offset is the number of rows skipped before this page. It saturates at
// math.MaxInt instead of wrapping for very large page numbers.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// ParsePage reads page and limit, falling back to the defaults for absent,
// non-numeric or non-positive values. Limit is capped at MaxLimit.
func ParsePage(values url.Values) Page {
	p := Page{
		Number: positiveInt(values.Get("page"), DefaultPage),
		Limit:  positiveInt(values.Get("limit"), DefaultLimit),
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Pages returns ceil(count/limit), 0 when count is 0.
func Pages(count int64, limit int) int {
	if count <= 0 || limit <= 0 {
		return 0
	}
	return int((count + int64(limit) - 1) / int64(limit))
}

// RatingOrder is the requested in-page rating sort.
type RatingOrder int

const (
	RatingNone RatingOrder = iota
	RatingHigh
	RatingLow
)

// ParseRatingOrder reads the rating=high|low parameter.
func ParseRatingOrder(values url.Values) RatingOrder {
	switch values.Get("rating") {
	case "high":
		return RatingHigh
	case "low":
		return RatingLow
	}
	return RatingNone
}

func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func sortedKeys(m map[string]RangeKind) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
