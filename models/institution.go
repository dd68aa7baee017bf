package models

// Institution is an organisation being rated.
type Institution struct {
	Model
	Name     string              `json:"name" gorm:"not null"`
	Image    *string             `json:"image"`
	Status   bool                `json:"status" gorm:"not null;index"`
	Nominees []Nominee           `json:"nominees,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Ratings  []InstitutionRating `json:"rating,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Comments []Comment           `json:"comments,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
}

// InstitutionView is an institution with its derived rating figures.
type InstitutionView struct {
	Institution
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	RawAverage    float64 `json:"-"`
}

// Average is the unrounded mean score, used for ordering.
func (v InstitutionView) Average() float64 {
	return v.RawAverage
}

type CreateInstitutionRequest struct {
	Name  string  `json:"name" conform:"trim" validate:"required,max=200"`
	Image *string `json:"image" validate:"omitempty,max=2048"`
}

// UpdateInstitutionRequest holds a partial update; nil fields are left untouched.
type UpdateInstitutionRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Image  *string `json:"image" validate:"omitempty,max=2048"`
	Status *bool   `json:"status"`
}
