package models

const (
	MinScore = 1
	MaxScore = 5
)

// RatingFields are shared by nominee and institution ratings. Ratings are create-only.
type RatingFields struct {
	Score    int    `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	Severity int    `json:"severity" gorm:"not null;check:severity >= 1 AND severity <= 5"`
	Evidence string `json:"evidence"`
	UserID   uint   `json:"userId" gorm:"not null;index"`
	User     *User  `json:"user,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
}

type NomineeRating struct {
	Model
	RatingFields
	NomineeID        uint            `json:"nomineeId" gorm:"not null;index"`
	RatingCategoryID uint            `json:"ratingCategoryId" gorm:"not null;index"`
	RatingCategory   *RatingCategory `json:"ratingCategory,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
}

type InstitutionRating struct {
	Model
	RatingFields
	InstitutionID    uint                       `json:"institutionId" gorm:"not null;index"`
	RatingCategoryID uint                       `json:"ratingCategoryId" gorm:"not null;index"`
	RatingCategory   *InstitutionRatingCategory `json:"ratingCategory,omitempty" gorm:"foreignKey:RatingCategoryID;constraint:OnDelete:RESTRICT"`
}

// RatingInput is one element of a rating submission. Score and severity are
// decoded as raw JSON numbers so that strings and other types can be rejected.
type RatingInput struct {
	CategoryID       uint     `json:"categoryId"`
	RatingCategoryID uint     `json:"ratingCategoryId"`
	Score            *float64 `json:"score"`
	Severity         *float64 `json:"severity"`
	Evidence         string   `json:"evidence"`
}

// Category returns the category id, accepting either spelling used by clients.
func (r RatingInput) Category() uint {
	if r.CategoryID != 0 {
		return r.CategoryID
	}
	return r.RatingCategoryID
}

type RateRequest struct {
	Ratings []RatingInput `json:"ratings"`
}
