package models

import "gorm.io/datatypes"

// CategoryFields are shared by both rating category variants.
type CategoryFields struct {
	Keyword     string                      `json:"keyword" gorm:"not null;uniqueIndex"`
	Name        string                      `json:"name" gorm:"not null"`
	Icon        string                      `json:"icon"`
	Description string                      `json:"description"`
	Weight      int                         `json:"weight" gorm:"not null"`
	Examples    datatypes.JSONSlice[string] `json:"examples"`
}

// RatingCategory is a dimension nominees are rated on (e.g. "Bribery").
type RatingCategory struct {
	Model
	CategoryFields
}

// InstitutionRatingCategory is a dimension institutions are rated on.
type InstitutionRatingCategory struct {
	Model
	CategoryFields
}

type CreateCategoryRequest struct {
	Keyword     string   `json:"keyword" conform:"trim" validate:"required,max=100"`
	Name        string   `json:"name" conform:"trim" validate:"required,max=200"`
	Icon        string   `json:"icon" conform:"trim" validate:"max=32"`
	Description string   `json:"description" conform:"trim" validate:"max=1000"`
	Weight      int      `json:"weight" validate:"min=0"`
	Examples    []string `json:"examples" validate:"dive,max=200"`
}

// Fields converts the request into the persisted shape.
func (r *CreateCategoryRequest) Fields() CategoryFields {
	examples := r.Examples
	if examples == nil {
		examples = []string{}
	}
	return CategoryFields{
		Keyword:     r.Keyword,
		Name:        r.Name,
		Icon:        r.Icon,
		Description: r.Description,
		Weight:      r.Weight,
		Examples:    datatypes.NewJSONSlice(examples),
	}
}
