//go:build darwin && cgo

package lacontext

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework LocalAuthentication -framework Foundation

#import <Foundation/Foundation.h>
#import <LocalAuthentication/LocalAuthentication.h>
#include <stdlib.h>

static void *la_context_new(void) {
	LAContext *ctx = [[LAContext alloc] init];
	return (__bridge_retained void *)ctx;
}

static void la_context_free(void *ref) {
	LAContext *ctx = (__bridge_transfer LAContext *)ref;
	ctx = nil;
}

static int la_can_evaluate(void *ref, int policy, long *code) {
	LAContext *ctx = (__bridge LAContext *)ref;
	NSError *error = nil;
	BOOL ok = [ctx canEvaluatePolicy:(LAPolicy)policy error:&error];
	*code = error != nil ? error.code : 0;
	return ok ? 1 : 0;
}

// Returns the LABiometryType, or -1 when the platform predates the query.
// biometryType is only valid after a canEvaluatePolicy call.
static long la_biometry_kind(void *ref) {
	LAContext *ctx = (__bridge LAContext *)ref;
	NSError *error = nil;
	[ctx canEvaluatePolicy:LAPolicyDeviceOwnerAuthenticationWithBiometrics error:&error];
	if (@available(macOS 10.13.2, iOS 11.0, *)) {
		return (long)ctx.biometryType;
	}
	return -1;
}

static void la_set_fallback_title(void *ref, const char *title) {
	LAContext *ctx = (__bridge LAContext *)ref;
	ctx.localizedFallbackTitle = title != NULL ? [NSString stringWithUTF8String:title] : nil;
}

static void la_set_cancel_title(void *ref, const char *title) {
	LAContext *ctx = (__bridge LAContext *)ref;
	if (@available(macOS 10.12, iOS 10.0, *)) {
		ctx.localizedCancelTitle = title != NULL ? [NSString stringWithUTF8String:title] : nil;
	}
}

static int la_evaluate(void *ref, int policy, const char *reason, long *code) {
	LAContext *ctx = (__bridge LAContext *)ref;
	dispatch_semaphore_t sema = dispatch_semaphore_create(0);
	__block int ok = 0;
	__block long ec = 0;
	[ctx evaluatePolicy:(LAPolicy)policy
		localizedReason:[NSString stringWithUTF8String:reason]
		reply:^(BOOL success, NSError *error) {
			ok = success ? 1 : 0;
			ec = error != nil ? error.code : 0;
			dispatch_semaphore_signal(sema);
		}];
	dispatch_semaphore_wait(sema, DISPATCH_TIME_FOREVER);
	*code = ec;
	return ok;
}
*/
import "C"
import (
	"unsafe"

	"github.com/go-localauth/localauth/pkg/latypes"
	"github.com/samber/mo"
)

type darwinContext struct {
	ref unsafe.Pointer
}

func newPlatformContext() Context {
	return &darwinContext{ref: C.la_context_new()}
}

func (c *darwinContext) CanEvaluate(policy latypes.Policy) (bool, error) {
	var code C.long
	ok := C.la_can_evaluate(c.ref, C.int(policy), &code) == 1
	if code != 0 {
		return ok, latypes.NewPlatformError(latypes.Code(code))
	}
	return ok, nil
}

func (c *darwinContext) BiometryKind() (latypes.BiometryType, bool) {
	kind := C.la_biometry_kind(c.ref)
	if kind < 0 {
		return latypes.BiometryNone, false
	}
	return latypes.BiometryType(kind), true
}

func (c *darwinContext) SetFallbackTitle(title mo.Option[string]) {
	s, ok := title.Get()
	if !ok {
		C.la_set_fallback_title(c.ref, nil)
		return
	}
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	C.la_set_fallback_title(c.ref, cs)
}

func (c *darwinContext) SetCancelTitle(title mo.Option[string]) {
	s, ok := title.Get()
	if !ok {
		C.la_set_cancel_title(c.ref, nil)
		return
	}
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	C.la_set_cancel_title(c.ref, cs)
}

func (c *darwinContext) Evaluate(policy latypes.Policy, reason string) (bool, error) {
	creason := C.CString(reason)
	defer C.free(unsafe.Pointer(creason))

	var code C.long
	ok := C.la_evaluate(c.ref, C.int(policy), creason, &code) == 1
	if code != 0 {
		return ok, latypes.NewPlatformError(latypes.Code(code))
	}
	return ok, nil
}

func (c *darwinContext) Close() error {
	if c.ref != nil {
		C.la_context_free(c.ref)
		c.ref = nil
	}
	return nil
}
