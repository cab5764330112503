// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check function with the ValidationError to report when the
// check fails. Apply evaluates rules in order and aggregates failures into a
// ValidationErrors value that satisfies the error interface.
//
// Date rules work on the YYYY/MM/DD textual form used by user records:
//
//	if err := validator.ValidateDateOfBirth(user.DateOfBirth); err != nil {
//	    // validator.IsValidationError(err) == true
//	}
//
// The package holds no state and is safe for concurrent use.
package validator
