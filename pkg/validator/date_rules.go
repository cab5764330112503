package validator

import (
	"regexp"
	"strconv"
	"time"
)

const (
	// DateOfBirthField is the record field checked by ValidateDateOfBirth.
	DateOfBirthField = "dateOfBirth"

	// MessageInvalidDateOfBirth is reported for malformed or impossible dates.
	MessageInvalidDateOfBirth = "Invalid date of birth"
)

// slashDatePattern matches exactly four digits, slash, two digits, slash, two digits.
var slashDatePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// IsValidDateOfBirth reports whether s is a YYYY/MM/DD string naming a real
// calendar date. The components are rebuilt into a date and must read back
// unchanged, which rejects month 13, day 0 and day 31 in 30-day months
// instead of letting time.Date roll them over.
func IsValidDateOfBirth(s string) bool {
	if !slashDatePattern.MatchString(s) {
		return false
	}

	// The pattern guarantees ASCII digits at fixed offsets.
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// DateOfBirth validates that value is a real calendar date in YYYY/MM/DD form.
func DateOfBirth(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidDateOfBirth(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        MessageInvalidDateOfBirth,
			TranslationKey: "validation.date_of_birth",
			TranslationValues: map[string]any{
				"field":  field,
				"format": "YYYY/MM/DD",
			},
		},
	}
}

// ValidateDateOfBirth returns ValidationErrors carrying MessageInvalidDateOfBirth
// when s is not a valid date of birth, and nil otherwise.
func ValidateDateOfBirth(s string) error {
	return Apply(DateOfBirth(DateOfBirthField, s))
}
