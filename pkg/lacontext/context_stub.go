//go:build !darwin || !cgo

package lacontext

import (
	"github.com/go-localauth/localauth/pkg/latypes"
	"github.com/samber/mo"
)

type stubContext struct{}

func newPlatformContext() Context {
	return stubContext{}
}

func (stubContext) CanEvaluate(latypes.Policy) (bool, error) {
	return false, ErrNotSupported
}

func (stubContext) BiometryKind() (latypes.BiometryType, bool) {
	return latypes.BiometryNone, false
}

func (stubContext) SetFallbackTitle(mo.Option[string]) {}

func (stubContext) SetCancelTitle(mo.Option[string]) {}

func (stubContext) Evaluate(latypes.Policy, string) (bool, error) {
	return false, ErrNotSupported
}

func (stubContext) Close() error {
	return nil
}
