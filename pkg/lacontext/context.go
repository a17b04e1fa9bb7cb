// Package lacontext binds the platform's local authentication context.
// On darwin it drives one LAContext per instance through cgo; everywhere
// else every operation reports ErrNotSupported.
package lacontext

import (
	"errors"

	"github.com/go-localauth/localauth/pkg/latypes"
	"github.com/samber/mo"
)

var ErrNotSupported = errors.New("lacontext: local authentication is not supported on this platform")

// Context is one platform authentication session. Instances are single-use:
// create one per challenge and Close it when the challenge concludes.
type Context interface {
	// CanEvaluate reports whether the given policy could currently be
	// evaluated. A false result carries the platform error explaining why.
	CanEvaluate(policy latypes.Policy) (bool, error)

	// BiometryKind reports which biometric sensor the platform exposes.
	// ok is false on platforms that lack the kind query entirely; callers
	// must then fall back to CanEvaluate-based inference.
	BiometryKind() (kind latypes.BiometryType, ok bool)

	// SetFallbackTitle overrides the fallback button label. mo.None leaves
	// the platform default; an empty string hides the button.
	SetFallbackTitle(title mo.Option[string])

	// SetCancelTitle overrides the cancel button label. mo.None leaves the
	// platform default.
	SetCancelTitle(title mo.Option[string])

	// Evaluate runs the policy challenge with the given reason and blocks
	// until the sensor/passcode flow concludes.
	Evaluate(policy latypes.Policy, reason string) (bool, error)

	Close() error
}

// New returns a fresh platform context. Which implementation backs it is
// decided at build time, not per call.
func New() Context {
	return newPlatformContext()
}
