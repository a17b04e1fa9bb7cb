//go:build !darwin || !cgo

package lacontext_test

import (
	"testing"

	"github.com/go-localauth/localauth/pkg/lacontext"
	"github.com/go-localauth/localauth/pkg/latypes"
	"github.com/go-localauth/localauth/pkg/localauth"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubContext(t *testing.T) {
	ctx := lacontext.New()
	defer func() {
		_ = ctx.Close()
	}()

	ok, err := ctx.CanEvaluate(latypes.PolicyBiometry)
	assert.False(t, ok)
	assert.ErrorIs(t, err, lacontext.ErrNotSupported)

	ok, err = ctx.Evaluate(latypes.PolicyBiometryOrPasscode, "Unlock vault")
	assert.False(t, ok)
	assert.ErrorIs(t, err, lacontext.ErrNotSupported)

	kind, known := ctx.BiometryKind()
	assert.Equal(t, latypes.BiometryNone, kind)
	assert.False(t, known)

	// Title overrides are accepted and dropped.
	ctx.SetFallbackTitle(mo.Some("Enter passcode"))
	ctx.SetCancelTitle(mo.None[string]())

	require.NoError(t, ctx.Close())
}

func TestFacadeOverStub(t *testing.T) {
	auth := localauth.New()

	assert.False(t, auth.SupportsBiometric())
	assert.Equal(t, latypes.BiometryNone, auth.BiometryType())
	assert.False(t, auth.SupportsFaceID())
	assert.False(t, auth.SupportsTouchID())
}
