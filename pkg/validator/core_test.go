package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dobcheck/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "dateOfBirth",
			Message: "Invalid date of birth",
		})
		assert.Equal(t, "validation failed: dateOfBirth: Invalid date of birth", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "name", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "dateOfBirth", Message: "Invalid date of birth"})

		assert.Equal(t, "validation failed: name: is required; dateOfBirth: Invalid date of birth", errs.Error())
		assert.Equal(t, "is required; Invalid date of birth", errs.Message())
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "dateOfBirth", Message: "Invalid date of birth"},
	}

	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
	assert.ErrorIs(t, errs, validator.ErrValidationFailed)
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "bad"},
		}
	}

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("failures keep rule order", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "a", errs[0].Field)
		assert.Equal(t, "b", errs[1].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("record 2: %w", validator.ValidationErrors{{Field: "f", Message: "m"}})
	errs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, errs, 1)
	assert.Equal(t, "m", errs[0].Message)
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.True(t, validator.IsValidationError(validator.ValidateDateOfBirth("nope")))
}
