package models

// Roles a user can hold. Admins manage reference data; users rate and comment.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)
