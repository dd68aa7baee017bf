package models

import "fmt"

// GuardResult is the outcome of a lifecycle guard.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Dependents counts the records referencing a reference-data row.
type Dependents struct {
	ActiveNominees int64
	Nominees       int64
	Ratings        int64
	Comments       int64
}

// Any reports whether at least one dependent of any kind exists.
func (d Dependents) Any() bool {
	return d.Nominees > 0 || d.Ratings > 0 || d.Comments > 0
}

func allow() GuardResult { return GuardResult{Allowed: true} }

func deny(format string, args ...interface{}) GuardResult {
	return GuardResult{Reason: fmt.Sprintf(format, args...)}
}

// CanChangeStatus guards a status transition of an institution, position or
// district. Only active -> inactive is checked; reactivation always passes.
func CanChangeStatus(entity string, current, next bool, deps Dependents) GuardResult {
	if current && !next && deps.ActiveNominees > 0 {
		return deny("Cannot deactivate %s with active nominees", entity)
	}
	return allow()
}

// CanDeleteInstitution refuses deletion while anything still references the institution.
func CanDeleteInstitution(deps Dependents) GuardResult {
	if deps.Any() {
		return deny("Cannot delete institution with associated nominees or ratings")
	}
	return allow()
}

// CanDeleteReference guards deletion of a position or district.
func CanDeleteReference(entity string, deps Dependents) GuardResult {
	if deps.Nominees > 0 {
		return deny("Cannot delete %s with associated nominees", entity)
	}
	return allow()
}

// CanDeleteNominee refuses deletion while the nominee owns ratings or comments.
func CanDeleteNominee(deps Dependents) GuardResult {
	if deps.Ratings > 0 || deps.Comments > 0 {
		return deny("Cannot delete nominee with associated ratings or comments")
	}
	return allow()
}
