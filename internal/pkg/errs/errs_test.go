package errs_test

import (
	"errors"
	"testing"

	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause prints the id only", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("service order", "OS-1")

		assert.Equal(t, "service order", err.ParamName)
		assert.Equal(t, "OS-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: OS-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause prints param and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("service order", "OS-1", cause)

		assert.Equal(t, "service order", err.ParamName)
		assert.Equal(t, "OS-1", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: service order, ID is: OS-1 (cause: connection reset)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non string ids", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("version", 456)

		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("priority")

		assert.Equal(t, "priority", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: priority", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("FOO is not a status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: FOO is not a status)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("labor cost", -5, 0, 1000)

		assert.Equal(t, "labor cost", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is labor cost, min value is 0, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("number length", 40, 1, 32, cause)

		assert.Equal(t, "number length", err.ParamName)
		assert.Equal(t, 40, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 32, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 40 is number length, min value is 1, max value is 32 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("flattens newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("title", "broken\nscreen", 1, 120)

		assert.Contains(t, err.Error(), "broken screen")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("flattens carriage returns in bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("title", "x", "a\r\nb", "c\rd")

		assert.Equal(t, "value is invalid: x is title, min value is a b, max value is c d", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("number")

		assert.Equal(t, "number", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: number", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("blank")
		err := errs.NewValueIsRequiredErrorWithCause("title", cause)

		assert.Equal(t, "title", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: title (cause: blank)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("expected version 3")
		err := errs.NewVersionIsInvalidError("service order", cause)

		assert.Equal(t, "service order", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: service order (cause: expected version 3)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("service order", nil)

		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: service order", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is matches the sentinel", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("id", "1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("version", -1, 0, "unbounded"), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("title"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("version", errors.New("stale")), errs.ErrVersionIsInvalid)
	})

	t.Run("errors.As finds the typed error through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("update failed"), errs.NewVersionIsInvalidError("service order", nil))

		var target *errs.VersionIsInvalidError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "service order", target.ParamName)
		assert.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)
	})
}
