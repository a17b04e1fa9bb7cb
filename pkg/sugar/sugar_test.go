package sugar

import (
	"context"
	"testing"

	"github.com/go-localauth/localauth/pkg/lacontext"
	"github.com/go-localauth/localauth/pkg/latypes"
	"github.com/go-localauth/localauth/pkg/localauth"
	"github.com/go-localauth/localauth/pkg/options"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedContext struct {
	kind      latypes.BiometryType
	kindKnown bool
	evalOK    bool
	evalErr   error
	gate      chan struct{}
}

var _ lacontext.Context = (*scriptedContext)(nil)

func (s *scriptedContext) CanEvaluate(latypes.Policy) (bool, error) {
	return s.kindKnown && s.kind != latypes.BiometryNone, nil
}

func (s *scriptedContext) BiometryKind() (latypes.BiometryType, bool) {
	return s.kind, s.kindKnown
}

func (s *scriptedContext) SetFallbackTitle(mo.Option[string]) {}

func (s *scriptedContext) SetCancelTitle(mo.Option[string]) {}

func (s *scriptedContext) Evaluate(latypes.Policy, string) (bool, error) {
	if s.gate != nil {
		<-s.gate
	}
	return s.evalOK, s.evalErr
}

func (s *scriptedContext) Close() error {
	return nil
}

func withScripted(sc *scriptedContext) options.Option {
	return options.WithNewContext(func() lacontext.Context {
		return sc
	})
}

func TestAuthenticateSync_Success(t *testing.T) {
	auth := localauth.New(withScripted(&scriptedContext{evalOK: true}))

	res, err := AuthenticateSync(context.Background(), auth, localauth.TypeBiometryOrPasscode, "Unlock vault", nil, nil)
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
}

func TestAuthenticateSync_MappedFailure(t *testing.T) {
	auth := localauth.New(withScripted(&scriptedContext{
		evalErr: latypes.NewPlatformError(latypes.LAErrorPasscodeNotSet),
	}))

	res, err := AuthenticateSync(context.Background(), auth, localauth.TypeBiometryOrPasscode, "Unlock vault", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Err)
	assert.Equal(t, localauth.CodePasscodeNotSet, res.Err.Code)
}

func TestAuthenticateSync_WaitCancellation(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	auth := localauth.New(withScripted(&scriptedContext{evalOK: true, gate: gate}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AuthenticateSync(ctx, auth, localauth.TypeBiometry, "Unlock vault", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuthenticateSync_ConfiguredContextBoundsWait(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	auth := localauth.New(
		withScripted(&scriptedContext{evalOK: true, gate: gate}),
		options.WithContext(cancelled),
	)

	_, err := AuthenticateSync(context.Background(), auth, localauth.TypeBiometry, "Unlock vault", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompt_ConfiguredContextBoundsWait(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	err := Prompt(context.Background(), "Unlock vault",
		withScripted(&scriptedContext{evalOK: true, gate: gate}),
		options.WithContext(cancelled),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompt(t *testing.T) {
	err := Prompt(context.Background(), "Unlock vault", withScripted(&scriptedContext{evalOK: true}))
	require.NoError(t, err)

	err = Prompt(context.Background(), "Unlock vault", withScripted(&scriptedContext{
		evalErr: latypes.NewPlatformError(latypes.LAErrorUserCancel),
	}))
	var aerr *localauth.Error
	require.ErrorAs(t, err, &aerr)
	assert.True(t, aerr.IsCancel())
}

func TestSupportedTypes(t *testing.T) {
	types := SupportedTypes(withScripted(&scriptedContext{kind: latypes.BiometryFaceID, kindKnown: true}))
	assert.Equal(t, []latypes.BiometryType{latypes.BiometryFaceID}, types)

	types = SupportedTypes(withScripted(&scriptedContext{kind: latypes.BiometryNone, kindKnown: true}))
	assert.Empty(t, types)
}
