package models

// Nominee is a public official being rated ("Official" in user-facing text).
type Nominee struct {
	Model
	Name          string          `json:"name" gorm:"not null"`
	Image         *string         `json:"image"`
	Evidence      *string         `json:"evidence"`
	Status        bool            `json:"status" gorm:"not null;index"`
	PositionID    uint            `json:"positionId" gorm:"not null;index"`
	InstitutionID uint            `json:"institutionId" gorm:"not null;index"`
	DistrictID    uint            `json:"districtId" gorm:"not null;index"`
	Position      *Position       `json:"position,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Institution   *Institution    `json:"institution,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	District      *District       `json:"district,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Ratings       []NomineeRating `json:"rating,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Comments      []Comment       `json:"comments,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
}

// NomineeView is a nominee with its derived rating figures.
type NomineeView struct {
	Nominee
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	RawAverage    float64 `json:"-"`
}

// Average is the unrounded mean score, used for ordering.
func (v NomineeView) Average() float64 {
	return v.RawAverage
}

type CreateNomineeRequest struct {
	Name          string  `json:"name" conform:"trim" validate:"required,max=200"`
	Image         *string `json:"image" validate:"omitempty,max=2048"`
	Evidence      *string `json:"evidence"`
	PositionID    uint    `json:"positionId" validate:"required"`
	InstitutionID uint    `json:"institutionId" validate:"required"`
	DistrictID    uint    `json:"districtId" validate:"required"`
	Status        *bool   `json:"status"`
}

// UpdateNomineeRequest holds a partial update; nil fields are left untouched.
type UpdateNomineeRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Image         *string `json:"image" validate:"omitempty,max=2048"`
	Evidence      *string `json:"evidence"`
	PositionID    *uint   `json:"positionId" validate:"omitempty,min=1"`
	InstitutionID *uint   `json:"institutionId" validate:"omitempty,min=1"`
	DistrictID    *uint   `json:"districtId" validate:"omitempty,min=1"`
	Status        *bool   `json:"status"`
}
