package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ledgerly/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	require.Errorf(t, err, "expected AppError with code %q, got nil", expectedCode)

	var appErr *apperrors.AppError
	require.ErrorAsf(t, err, &appErr, "expected *AppError, got %T", err)

	assert.Equalf(t, expectedCode, appErr.Code, "error code (message: %s)", appErr.Message)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	require.NoError(t, err)
}

// AssertAmount compares a decimal amount against its string form.
func AssertAmount(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()

	assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "%s = %s, want %s", label, got.String(), want)
}

// AssertEqual reports a labelled diff when got and want are not deeply equal.
func AssertEqual(t *testing.T, label string, got, want any) {
	t.Helper()

	assert.Equalf(t, want, got, "%s", label)
}
