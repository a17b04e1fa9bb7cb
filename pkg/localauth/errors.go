package localauth

import (
	"errors"

	"github.com/go-localauth/localauth/pkg/latypes"
)

// Code is the application-level classification of a failed challenge.
type Code int

const (
	CodeAppCancel Code = iota + 1
	CodeSystemCancel
	CodeUserCancel
	CodeBiometryNotEnrolled
	CodeBiometryLockout
	CodeBiometryNotAvailable
	CodePasscodeNotSet
	CodeFallback
	CodeFailed
	CodeOther
)

func (c Code) String() string {
	switch c {
	case CodeAppCancel:
		return "cancelled by application"
	case CodeSystemCancel:
		return "cancelled by system"
	case CodeUserCancel:
		return "cancelled by user"
	case CodeBiometryNotEnrolled:
		return "biometry not enrolled"
	case CodeBiometryLockout:
		return "biometry locked out"
	case CodeBiometryNotAvailable:
		return "biometry not available"
	case CodePasscodeNotSet:
		return "device passcode not set"
	case CodeFallback:
		return "user chose fallback"
	case CodeFailed:
		return "authentication failed"
	case CodeOther:
		return "other"
	}
	return "Code(unknown)"
}

// Error is the closed error model of the facade. Underlying is set only for
// CodeOther, where the original platform error is retained losslessly.
type Error struct {
	Code       Code
	Underlying error
}

func newError(code Code) *Error {
	return &Error{Code: code}
}

func (e *Error) Error() string {
	if e.Code == CodeOther && e.Underlying != nil {
		return "localauth: " + e.Code.String() + ": " + e.Underlying.Error()
	}
	return "localauth: " + e.Code.String()
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// IsCancel reports whether the challenge ended because someone cancelled it,
// regardless of which party did.
func (e *Error) IsCancel() bool {
	switch e.Code {
	case CodeAppCancel, CodeSystemCancel, CodeUserCancel:
		return true
	}
	return false
}

// mapPlatformError turns a platform error into exactly one Error variant.
// The cases form a priority cascade matching the platform's code-assignment
// order; keep them in this order.
func mapPlatformError(err error) *Error {
	var perr *latypes.PlatformError
	if !errors.As(err, &perr) {
		return &Error{Code: CodeOther, Underlying: err}
	}

	switch perr.Code {
	case latypes.LAErrorAppCancel:
		return newError(CodeAppCancel)
	case latypes.LAErrorUserFallback:
		return newError(CodeFallback)
	case latypes.LAErrorSystemCancel:
		return newError(CodeSystemCancel)
	case latypes.LAErrorUserCancel:
		return newError(CodeUserCancel)
	case latypes.LAErrorAuthenticationFailed:
		return newError(CodeFailed)
	case latypes.LAErrorPasscodeNotSet:
		return newError(CodePasscodeNotSet)
	case latypes.LAErrorBiometryNotEnrolled:
		return newError(CodeBiometryNotEnrolled)
	case latypes.LAErrorBiometryLockout:
		return newError(CodeBiometryLockout)
	case latypes.LAErrorBiometryNotAvailable:
		return newError(CodeBiometryNotAvailable)
	default:
		return &Error{Code: CodeOther, Underlying: err}
	}
}
