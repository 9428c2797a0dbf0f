package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "5f0c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "5f0c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 5f0c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := errs.NewObjectNotFoundErrorWithCause("order", "5f0c", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "5f0c", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 5f0c (cause: connection reset by peer)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("pizza", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("address")

		assert.Equal(t, "address", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: address", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("ensure this field has no more than 200 characters")
		err := errs.NewValueIsInvalidErrorWithCause("address", cause)

		assert.Equal(t, "address", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: address (cause: ensure this field has no more than 200 characters)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("count", 0, 1, 32767)

		assert.Equal(t, "count", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 32767, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is count, min value is 1, max value is 32767", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("count must be positive")
		err := errs.NewValueIsOutOfRangeErrorWithCause("count", -5, 1, 32767, cause)

		assert.Equal(t, "count", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 32767, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is count, min value is 1, max value is 32767 (cause: count must be positive)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("phone", "555\n0100", 0, 50)
		assert.Contains(t, err.Error(), "555 0100")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: blank)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("name", "Alice")

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, "Alice", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: name is Alice", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewObjectAlreadyExistsErrorWithCause("name", "Alice", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: name is Alice (cause: duplicate key value violates unique constraint)",
			err.Error())
	})
}

func TestFields(t *testing.T) {
	t.Run("single invalid value uses its cause as the message", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("pizzas", errors.New("empty"))

		assert.Equal(t, map[string]string{"pizzas": "empty"}, errs.Fields(err))
	})

	t.Run("joined errors are flattened and the first message per field wins", func(t *testing.T) {
		err := errors.Join(
			errs.NewValueIsRequiredError("name"),
			errs.NewValueIsOutOfRangeError("count", 0, 1, 32767),
			errs.NewValueIsInvalidErrorWithCause("name", errors.New("too long")),
		)

		assert.Equal(t, map[string]string{
			"name":  "required",
			"count": "must be between 1 and 32767",
		}, errs.Fields(err))
	})

	t.Run("non validation errors produce no fields", func(t *testing.T) {
		assert.Empty(t, errs.Fields(errs.NewObjectNotFoundError("order", "1")))
		assert.Empty(t, errs.Fields(nil))
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("status")))
	assert.True(t, errs.IsValidation(errors.Join(errs.NewValueIsRequiredError("address"))))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("count", 0, 1, 2)))
	assert.False(t, errs.IsValidation(errs.NewObjectAlreadyExistsError("name", "x")))
	assert.False(t, errs.IsValidation(errors.New("boom")))
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrObjectAlreadyExists)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("username")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		alreadyExistsErr := errs.NewObjectAlreadyExistsError("name", "Alice")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrObjectAlreadyExists)
	})

	t.Run("errors.Is matches the cause of validation errors", func(t *testing.T) {
		cannotUpdate := errors.New("cannot update")
		invalid := errs.NewValueIsInvalidErrorWithCause("status", cannotUpdate)
		require.ErrorIs(t, invalid, cannotUpdate)
		require.ErrorIs(t, invalid, errs.ErrValueIsInvalid)
		require.ErrorIs(t, fmt.Errorf("advance: %w", invalid), cannotUpdate)
		assert.NotErrorIs(t, invalid, errs.ErrValueIsRequired)
		assert.NotErrorIs(t, errs.NewValueIsInvalidError("status"), cannotUpdate)

		blank := errors.New("blank")
		required := errs.NewValueIsRequiredErrorWithCause("name", blank)
		require.ErrorIs(t, required, blank)
		require.ErrorIs(t, required, errs.ErrValueIsRequired)
		assert.NotErrorIs(t, required, errs.ErrValueIsInvalid)
	})
}
