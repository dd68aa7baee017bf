package models

// Comment is a user's remark on exactly one nominee or institution.
type Comment struct {
	Model
	Content       string       `json:"content" gorm:"not null"`
	UserID        uint         `json:"userId" gorm:"not null;index"`
	User          *User        `json:"user,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	NomineeID     *uint        `json:"nomineeId" gorm:"index;check:comment_single_target,(nominee_id IS NULL) <> (institution_id IS NULL)"`
	InstitutionID *uint        `json:"institutionId" gorm:"index"`
	Nominee       *Nominee     `json:"-"`
	Institution   *Institution `json:"-"`
}

type CreateCommentRequest struct {
	Content       string `json:"content" conform:"trim" validate:"required,max=5000"`
	NomineeID     *uint  `json:"nomineeId"`
	InstitutionID *uint  `json:"institutionId"`
}
