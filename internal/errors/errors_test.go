package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrStore,
		ErrInput,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .tally.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "store error",
			code:       ErrStore,
			message:    "Could not save habit grid",
			suggestion: "Check the data directory is writable",
		},
		{
			name:       "input error",
			code:       ErrInput,
			message:    "Habit name cannot be empty",
			suggestion: "Give the habit a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check .tally.yaml syntax"),
			expectedParts: []string{"✗ Invalid configuration", "Check .tally.yaml syntax"},
		},
		{
			name:          "with cause",
			err:           WrapWithCode(fmt.Errorf("disk full"), ErrStore, "Save failed", "Free some space"),
			expectedParts: []string{"Save failed", "disk full", "Free some space"},
		},
		{
			name:          "no suggestion",
			err:           Wrap(fmt.Errorf("boom"), "Load failed"),
			expectedParts: []string{"Load failed", "boom"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, out, part)
			}
			for _, part := range tt.notExpected {
				assert.False(t, strings.Contains(out, part), "should not contain %q", part)
			}
		})
	}
}

func TestWrap_DefaultsToStoreCode(t *testing.T) {
	err := Wrap(fmt.Errorf("x"), "msg")
	assert.Equal(t, ErrStore, err.Code)
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := WrapWithCode(cause, ErrStore, "outer", "")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsCode(t *testing.T) {
	err := New(ErrInput, "bad", "")

	assert.True(t, IsCode(err, ErrInput))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrInput))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrInput))

	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, IsCode(wrapped, ErrInput), "should find code through fmt wrapping")
}

func TestNewOutOfRange(t *testing.T) {
	err := NewOutOfRange("day", 29, 28)

	assert.Equal(t, ErrInput, err.Code)
	assert.Equal(t, ReasonOutOfRange, err.Reason)
	assert.Equal(t, "day 29 is out of range", err.Message)
	assert.Equal(t, "Pick a day between 1 and 28", err.Suggestion)

	empty := NewOutOfRange("habit", 1, 0)
	assert.Equal(t, "There is no habit to pick", empty.Suggestion)
}

func TestReasons(t *testing.T) {
	err := New(ErrStore, "Timed out waiting for the habit data lock", "").WithReason(ReasonLocked)

	assert.True(t, HasReason(err, ReasonLocked))
	assert.True(t, HasReason(fmt.Errorf("save: %w", err), ReasonLocked))
	assert.False(t, HasReason(err, ReasonNotFound))
	assert.False(t, HasReason(fmt.Errorf("plain"), ReasonLocked))
	assert.False(t, HasReason(nil, ReasonLocked))
}

func TestAs(t *testing.T) {
	inner := New(ErrInput, "inner", "")
	outer := WrapWithCode(inner, ErrStore, "outer", "")

	got, ok := As(fmt.Errorf("ctx: %w", outer))
	require.True(t, ok)
	assert.Same(t, outer, got, "outermost structured error wins")

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
