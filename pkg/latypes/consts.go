package latypes

// Policy selects which local authentication policy the OS evaluates.
// Values mirror the LAPolicy constants of the LocalAuthentication framework.
type Policy int

const (
	// PolicyBiometry accepts biometric verification only.
	PolicyBiometry Policy = 1
	// PolicyBiometryOrPasscode accepts biometric verification with the
	// device passcode as a fallback.
	PolicyBiometryOrPasscode Policy = 2
)

func (p Policy) String() string {
	switch p {
	case PolicyBiometry:
		return "DeviceOwnerAuthenticationWithBiometrics"
	case PolicyBiometryOrPasscode:
		return "DeviceOwnerAuthentication"
	}
	return "Policy(unknown)"
}

// BiometryType reports which biometric sensor the device carries.
// Values mirror LABiometryType.
type BiometryType int

const (
	BiometryNone    BiometryType = 0
	BiometryTouchID BiometryType = 1
	BiometryFaceID  BiometryType = 2
)

func (t BiometryType) String() string {
	switch t {
	case BiometryNone:
		return "none"
	case BiometryTouchID:
		return "touchID"
	case BiometryFaceID:
		return "faceID"
	}
	return "BiometryType(unknown)"
}

// Code is a platform error code returned by the OS authentication service.
// Values mirror the LAError domain.
type Code int

const (
	LAErrorAuthenticationFailed Code = -1
	LAErrorUserCancel           Code = -2
	LAErrorUserFallback         Code = -3
	LAErrorSystemCancel         Code = -4
	LAErrorPasscodeNotSet       Code = -5
	LAErrorBiometryNotAvailable Code = -6
	LAErrorBiometryNotEnrolled  Code = -7
	LAErrorBiometryLockout      Code = -8
	LAErrorAppCancel            Code = -9
	LAErrorInvalidContext       Code = -10
	LAErrorNotInteractive       Code = -1004
)

// Touch ID era names predating the biometry rename. The platform assigned
// the renamed constants the same raw values, so these are aliases kept for
// callers still matching against the old spelling.
const (
	LAErrorTouchIDNotAvailable = LAErrorBiometryNotAvailable
	LAErrorTouchIDNotEnrolled  = LAErrorBiometryNotEnrolled
	LAErrorTouchIDLockout      = LAErrorBiometryLockout
)

func (c Code) String() string {
	switch c {
	case LAErrorAuthenticationFailed:
		return "LAErrorAuthenticationFailed"
	case LAErrorUserCancel:
		return "LAErrorUserCancel"
	case LAErrorUserFallback:
		return "LAErrorUserFallback"
	case LAErrorSystemCancel:
		return "LAErrorSystemCancel"
	case LAErrorPasscodeNotSet:
		return "LAErrorPasscodeNotSet"
	case LAErrorBiometryNotAvailable:
		return "LAErrorBiometryNotAvailable"
	case LAErrorBiometryNotEnrolled:
		return "LAErrorBiometryNotEnrolled"
	case LAErrorBiometryLockout:
		return "LAErrorBiometryLockout"
	case LAErrorAppCancel:
		return "LAErrorAppCancel"
	case LAErrorInvalidContext:
		return "LAErrorInvalidContext"
	case LAErrorNotInteractive:
		return "LAErrorNotInteractive"
	}
	return "LAError(unknown)"
}
