package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/query"
)

func TestDecodeRatings(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty array", `{"ratings": []}`, ErrEmptyRatings},
		{"missing", `{}`, ErrEmptyRatings},
		{"not an array", `{"ratings": "5"}`, ErrEmptyRatings},
		{"string score", `{"ratings": [{"categoryId": 1, "score": "5", "severity": 2}]}`, ErrInvalidScore},
		{"missing severity", `{"ratings": [{"categoryId": 1, "score": 5}]}`, ErrInvalidScore},
		{"fractional score", `{"ratings": [{"categoryId": 1, "score": 2.5, "severity": 2}]}`, ErrInvalidScore},
		{"out of range", `{"ratings": [{"categoryId": 1, "score": 6, "severity": 2}]}`, ErrInvalidScore},
		{"zero severity", `{"ratings": [{"categoryId": 1, "score": 3, "severity": 0}]}`, ErrInvalidScore},
		{"missing category", `{"ratings": [{"score": 3, "severity": 3}]}`, ErrMissingRateCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRatings([]byte(tt.body))
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestDecodeRatingsValid(t *testing.T) {
	inputs, err := DecodeRatings([]byte(`{"ratings": [
		{"categoryId": 1, "score": 5, "severity": 1, "evidence": "receipt"},
		{"ratingCategoryId": 2, "score": 1, "severity": 5}
	]}`))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, uint(1), inputs[0].Category())
	assert.Equal(t, uint(2), inputs[1].Category())
	assert.Equal(t, 1.0, *inputs[0].Severity)
	assert.Equal(t, "receipt", inputs[0].Evidence)
}

func TestCoerceIDs(t *testing.T) {
	filter := query.And{Items: []query.Predicate{
		query.Equals{Field: "districtId", Value: "12"},
		query.Equals{Field: "positionId", Value: "abc"},
		query.Equals{Field: "status", Value: true},
	}}
	got := coerceIDs(filter, "districtId", "positionId")
	assert.Equal(t, []query.Predicate{
		query.Equals{Field: "districtId", Value: uint(12)},
		query.Equals{Field: "positionId", Value: uint(0)},
		query.Equals{Field: "status", Value: true},
	}, got.Items)
}
