package sugar

import (
	"context"

	"github.com/go-localauth/localauth/pkg/latypes"
	"github.com/go-localauth/localauth/pkg/localauth"
	"github.com/go-localauth/localauth/pkg/options"
	"github.com/samber/lo"
)

// AuthenticateSync bridges the callback-based Authenticate into a blocking
// call. The wait is bounded by ctx and by the authenticator's configured
// context; cancelling either ends only the wait. The OS prompt stays up
// until the user answers it, and its eventual result is dropped.
func AuthenticateSync(
	ctx context.Context,
	auth *localauth.Authenticator,
	typ localauth.AuthenticationType,
	reason string,
	fallbackTitle *localauth.FallbackTitle,
	cancelTitle *localauth.CancelTitle,
) (localauth.Result, error) {
	// Buffered so the late reply never blocks the facade's goroutine.
	ch := make(chan localauth.Result, 1)
	auth.Authenticate(typ, reason, fallbackTitle, cancelTitle, func(res localauth.Result) {
		ch <- res
	})

	select {
	case res := <-ch:
		return res, nil
	case <-ctx.Done():
		return localauth.Result{}, ctx.Err()
	case <-auth.Context().Done():
		return localauth.Result{}, auth.Context().Err()
	}
}

// Prompt is the one-call path: build an authenticator, run a biometry-or-
// passcode challenge with the given reason, and block until it concludes.
func Prompt(ctx context.Context, reason string, opts ...options.Option) error {
	auth := localauth.New(opts...)
	res, err := AuthenticateSync(ctx, auth, localauth.TypeBiometryOrPasscode, reason, nil, nil)
	if err != nil {
		return err
	}
	if res.Err != nil {
		return res.Err
	}
	return nil
}

// SupportedTypes lists the biometry kinds the device can currently serve.
// At most one entry today; the slice shape leaves room for platforms that
// ever report more.
func SupportedTypes(opts ...options.Option) []latypes.BiometryType {
	auth := localauth.New(opts...)
	kind := auth.BiometryType()

	return lo.Filter(
		[]latypes.BiometryType{latypes.BiometryTouchID, latypes.BiometryFaceID},
		func(t latypes.BiometryType, _ int) bool {
			return t == kind
		},
	)
}
