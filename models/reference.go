package models

// Position is shared reference data held by nominees (e.g. "Minister").
type Position struct {
	Model
	Name     string    `json:"name" gorm:"not null"`
	Status   bool      `json:"status" gorm:"not null;index"`
	Nominees []Nominee `json:"nominees,omitempty"`
}

// District is shared reference data locating nominees.
type District struct {
	Model
	Name     string    `json:"name" gorm:"not null;uniqueIndex"`
	Region   string    `json:"region" gorm:"not null"`
	Status   bool      `json:"status" gorm:"not null;index"`
	Nominees []Nominee `json:"nominees,omitempty"`
}

type CreatePositionRequest struct {
	Name string `json:"name" conform:"trim" validate:"required,max=200"`
}

type UpdatePositionRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Status *bool   `json:"status"`
}

type CreateDistrictRequest struct {
	Name   string `json:"name" conform:"trim" validate:"required,max=200"`
	Region string `json:"region" conform:"trim" validate:"required,max=200"`
}

type UpdateDistrictRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Region *string `json:"region" validate:"omitempty,min=1,max=200"`
	Status *bool   `json:"status"`
}
