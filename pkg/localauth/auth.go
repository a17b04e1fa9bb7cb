// Package localauth wraps the platform's biometric/passcode authentication
// service behind a small typed facade: enumerated configuration in, a closed
// set of error cases out. The sensor and policy evaluation stay with the OS.
package localauth

import (
	"context"
	"log/slog"

	"github.com/go-localauth/localauth/pkg/lacontext"
	"github.com/go-localauth/localauth/pkg/latypes"
	"github.com/go-localauth/localauth/pkg/options"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// AuthenticationType selects which factors a challenge accepts.
type AuthenticationType int

const (
	// TypeBiometry accepts biometric verification only.
	TypeBiometry AuthenticationType = iota
	// TypeBiometryOrPasscode also offers the device passcode as a fallback.
	TypeBiometryOrPasscode
)

func (t AuthenticationType) policy() latypes.Policy {
	if t == TypeBiometryOrPasscode {
		return latypes.PolicyBiometryOrPasscode
	}
	return latypes.PolicyBiometry
}

// Authenticator is the facade over the platform authentication context.
//
// The three Default fields are read at call time; set them once at startup.
// Mutating them while a challenge is in flight is undefined behavior.
type Authenticator struct {
	// DefaultReason is used when Authenticate is called with an empty
	// reason. At least one of the two must be non-empty.
	DefaultReason string

	// DefaultFallbackTitle applies when a call passes no fallback title.
	DefaultFallbackTitle *FallbackTitle

	// DefaultCancelTitle applies when a call passes no cancel title.
	DefaultCancelTitle *CancelTitle

	logger     *slog.Logger
	ctx        context.Context
	newContext func() lacontext.Context
}

func New(opts ...options.Option) *Authenticator {
	oo := options.NewOptions(opts...)
	return &Authenticator{
		logger:     oo.Logger,
		ctx:        oo.Context,
		newContext: oo.NewContext,
	}
}

// Context returns the context the authenticator was configured with. It
// does not cancel an OS prompt (only the platform's own UI can), but
// blocking wrappers bound their wait on it.
func (a *Authenticator) Context() context.Context {
	return a.ctx
}

// SupportsBiometric reports whether the platform can currently evaluate a
// biometric-only challenge.
func (a *Authenticator) SupportsBiometric() bool {
	ctx := a.newContext()
	defer func() {
		_ = ctx.Close()
	}()

	ok, err := ctx.CanEvaluate(latypes.PolicyBiometry)
	return ok && err == nil
}

// BiometryType reports which biometric sensor the device carries. On
// platforms without the kind query, any evaluable biometry reports as
// Touch ID; those platforms predate Face ID and cannot distinguish it.
func (a *Authenticator) BiometryType() latypes.BiometryType {
	ctx := a.newContext()
	defer func() {
		_ = ctx.Close()
	}()

	if kind, ok := ctx.BiometryKind(); ok {
		return kind
	}

	if ok, err := ctx.CanEvaluate(latypes.PolicyBiometry); ok && err == nil {
		return latypes.BiometryTouchID
	}
	return latypes.BiometryNone
}

// SupportsFaceID reports whether the device carries a Face ID sensor.
func (a *Authenticator) SupportsFaceID() bool {
	return a.BiometryType() == latypes.BiometryFaceID
}

// SupportsTouchID reports whether the device carries a Touch ID sensor.
func (a *Authenticator) SupportsTouchID() bool {
	return a.BiometryType() == latypes.BiometryTouchID
}

// Authenticate runs one challenge. Each call gets a fresh platform context,
// so concurrent calls never share a sensor session. The reply callback is
// invoked exactly once, from a goroutine owned by the facade; the caller's
// goroutine never blocks.
//
// The reason shown to the user is the reason argument when non-empty, else
// DefaultReason. Both empty is a contract violation and panics before any
// platform call is made. Nil titles fall back to the configured defaults,
// else to the platform's own labels.
//
// Failures are mapped once and surfaced verbatim; nothing is retried and
// nothing is logged on the error path.
func (a *Authenticator) Authenticate(
	typ AuthenticationType,
	reason string,
	fallbackTitle *FallbackTitle,
	cancelTitle *CancelTitle,
	reply func(Result),
) {
	resolved := reason
	if resolved == "" {
		resolved = a.DefaultReason
	}
	if resolved == "" {
		panic("localauth: Authenticate needs a reason; pass one or set DefaultReason")
	}

	ctx := a.newContext()
	ctx.SetFallbackTitle(resolveFallbackTitle(fallbackTitle, a.DefaultFallbackTitle))
	ctx.SetCancelTitle(resolveCancelTitle(cancelTitle, a.DefaultCancelTitle))

	policy := typ.policy()
	session := uuid.New()
	a.logger.Debug("starting local authentication challenge",
		slog.String("session", session.String()),
		slog.String("policy", policy.String()),
	)

	go func() {
		defer func() {
			_ = ctx.Close()
		}()

		ok, err := ctx.Evaluate(policy, resolved)
		if ok && err == nil {
			reply(Result{})
			return
		}
		if err == nil {
			// The platform reported failure without a code.
			err = latypes.NewPlatformError(latypes.LAErrorAuthenticationFailed)
		}
		reply(Result{Err: mapPlatformError(err)})
	}()
}

func resolveFallbackTitle(explicit, configured *FallbackTitle) mo.Option[string] {
	if explicit != nil {
		return explicit.Resolve()
	}
	if configured != nil {
		return configured.Resolve()
	}
	return mo.None[string]()
}

func resolveCancelTitle(explicit, configured *CancelTitle) mo.Option[string] {
	if explicit != nil {
		return explicit.Resolve()
	}
	if configured != nil {
		return configured.Resolve()
	}
	return mo.None[string]()
}
