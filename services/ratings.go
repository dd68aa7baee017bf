package services

import (
	"encoding/json"
	"math"
	"strconv"

	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
)

var (
	ErrEmptyRatings        = apiError.BadRequest("Ratings must be an array with at least one item")
	ErrInvalidScore        = apiError.BadRequest("Invalid score or severity")
	ErrMissingRateCategory = apiError.BadRequest("Every rating needs a categoryId")
)

// DecodeRatings parses a rating submission body. Shape errors are reported with
// the same messages as semantic ones so clients see one vocabulary.
func DecodeRatings(body []byte) ([]models.RatingInput, error) {
	var envelope struct {
		Ratings json.RawMessage `json:"ratings"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apiError.BadRequest("invalid request body")
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(envelope.Ratings, &raw); err != nil || len(raw) == 0 {
		return nil, ErrEmptyRatings
	}

	inputs := make([]models.RatingInput, 0, len(raw))
	for _, r := range raw {
		var in models.RatingInput
		if err := json.Unmarshal(r, &in); err != nil {
			return nil, ErrInvalidScore
		}
		inputs = append(inputs, in)
	}
	return inputs, validateRatings(inputs)
}

func validateRatings(inputs []models.RatingInput) error {
	if len(inputs) == 0 {
		return ErrEmptyRatings
	}
	for _, in := range inputs {
		if !validScore(in.Score) || !validScore(in.Severity) {
			return ErrInvalidScore
		}
		if in.Category() == 0 {
			return ErrMissingRateCategory
		}
	}
	return nil
}

func validScore(v *float64) bool {
	if v == nil || math.IsNaN(*v) || *v != math.Trunc(*v) {
		return false
	}
	return *v >= models.MinScore && *v <= models.MaxScore
}

func ratingFields(in models.RatingInput, userID uint) models.RatingFields {
	return models.RatingFields{
		Score:    int(*in.Score),
		Severity: int(*in.Severity),
		Evidence: in.Evidence,
		UserID:   userID,
	}
}

// coerceIDs turns string id filters into numbers. Values that are not ids
// become 0, which matches no row.
func coerceIDs(filter query.And, fields ...string) query.And {
	want := make(map[string]bool, len(fields))
	for _, f := range fields {
		want[f] = true
	}
	items := make([]query.Predicate, 0, len(filter.Items))
	for _, item := range filter.Items {
		if eq, ok := item.(query.Equals); ok && want[eq.Field] {
			if s, ok := eq.Value.(string); ok {
				eq.Value = parseID(s)
			}
			item = eq
		}
		items = append(items, item)
	}
	return query.And{Items: items}
}

func parseID(s string) uint {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0
	}
	return uint(id)
}

func groupNomineeRatings(ratings []models.NomineeRating) map[uint][]models.NomineeRating {
	out := make(map[uint][]models.NomineeRating)
	for _, r := range ratings {
		out[r.NomineeID] = append(out[r.NomineeID], r)
	}
	return out
}

func groupInstitutionRatings(ratings []models.InstitutionRating) map[uint][]models.InstitutionRating {
	out := make(map[uint][]models.InstitutionRating)
	for _, r := range ratings {
		out[r.InstitutionID] = append(out[r.InstitutionID], r)
	}
	return out
}
