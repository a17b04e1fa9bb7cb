package localauth

import "github.com/samber/mo"

type titleKind int

const (
	titleSystemDefault titleKind = iota
	titleHide
	titleCustom
)

// FallbackTitle decides the label of the fallback button shown when
// biometric verification fails or is unavailable.
type FallbackTitle struct {
	kind titleKind
	text string
}

// FallbackTitleHide suppresses the fallback button entirely.
func FallbackTitleHide() FallbackTitle {
	return FallbackTitle{kind: titleHide}
}

// FallbackTitleSystemDefault keeps the platform's own label.
func FallbackTitleSystemDefault() FallbackTitle {
	return FallbackTitle{kind: titleSystemDefault}
}

// FallbackTitleCustom shows text instead of the platform label.
func FallbackTitleCustom(text string) FallbackTitle {
	return FallbackTitle{kind: titleCustom, text: text}
}

// Resolve returns the string handed to the platform context. mo.None means
// no override; the empty string hides the button.
func (t FallbackTitle) Resolve() mo.Option[string] {
	switch t.kind {
	case titleHide:
		return mo.Some("")
	case titleCustom:
		return mo.Some(t.text)
	}
	return mo.None[string]()
}

// CancelTitle decides the label of the cancel button. Unlike FallbackTitle
// there is no hide case; the platform always shows a cancel affordance.
type CancelTitle struct {
	kind titleKind
	text string
}

func CancelTitleSystemDefault() CancelTitle {
	return CancelTitle{kind: titleSystemDefault}
}

func CancelTitleCustom(text string) CancelTitle {
	return CancelTitle{kind: titleCustom, text: text}
}

func (t CancelTitle) Resolve() mo.Option[string] {
	if t.kind == titleCustom {
		return mo.Some(t.text)
	}
	return mo.None[string]()
}
