package latypes

import "strconv"

// PlatformError is the opaque status the OS authentication service returned
// for a challenge that did not succeed.
type PlatformError struct {
	Code        Code
	Description string
}

func NewPlatformError(code Code) *PlatformError {
	return &PlatformError{Code: code}
}

func (e *PlatformError) Error() string {
	if e.Description != "" {
		return e.Code.String() + " (" + e.Description + ")"
	}
	return e.Code.String() + " (" + strconv.Itoa(int(e.Code)) + ")"
}
