package cli

import (
	"encoding/json"
	"io"

	"github.com/rileyhilliard/tally/internal/errors"
)

// machineMode is set by --json on commands that support it.
var machineMode bool

// MachineMode reports whether output should be JSON instead of styled text.
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope is the top-level shape of every --json response, success or
// failure.
type JSONEnvelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *JSONError `json:"error,omitempty"`
}

// JSONError is the machine-readable form of an errors.Error.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Cause      string `json:"cause,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeStoreFailed    = "STORE_FAILED"
	ErrCodeStoreLocked    = "STORE_LOCKED"
	ErrCodeOutOfRange     = "OUT_OF_RANGE"
	ErrCodeHabitNotFound  = "HABIT_NOT_FOUND"
	ErrCodeBlankName      = "BLANK_NAME"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeCommandFailed  = "COMMAND_FAILED"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful envelope carrying data.
func WriteJSONSuccess(w io.Writer, data any) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONFromError writes a failed envelope describing err.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{Error: ErrorToJSON(err)})
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts err for the envelope. Errors that aren't errors.Error
// come out as UNKNOWN with their text as the message.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	tErr, ok := errors.As(err)
	if !ok {
		return &JSONError{Code: ErrCodeUnknown, Message: err.Error()}
	}

	out := &JSONError{
		Code:       mapErrorCode(tErr.Code, tErr.Reason),
		Message:    tErr.Message,
		Suggestion: tErr.Suggestion,
	}
	if tErr.Cause != nil {
		out.Cause = tErr.Cause.Error()
	}
	return out
}

// mapErrorCode picks the public code for an internal code and reason.
func mapErrorCode(code, reason string) string {
	switch code {
	case errors.ErrConfig:
		if reason == errors.ReasonNotFound {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrStore:
		if reason == errors.ReasonLocked {
			return ErrCodeStoreLocked
		}
		return ErrCodeStoreFailed
	case errors.ErrInput:
		switch reason {
		case errors.ReasonOutOfRange:
			return ErrCodeOutOfRange
		case errors.ReasonNotFound:
			return ErrCodeHabitNotFound
		case errors.ReasonBlank:
			return ErrCodeBlankName
		}
		return ErrCodeInvalidInput
	case errors.ErrExec:
		return ErrCodeCommandFailed
	}
	return ErrCodeUnknown
}
