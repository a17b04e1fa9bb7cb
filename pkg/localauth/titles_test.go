package localauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackTitle_Resolve(t *testing.T) {
	hide := FallbackTitleHide().Resolve()
	assert.Equal(t, "", hide.MustGet())

	def := FallbackTitleSystemDefault().Resolve()
	assert.True(t, def.IsAbsent())

	custom := FallbackTitleCustom("Use passcode instead").Resolve()
	assert.Equal(t, "Use passcode instead", custom.MustGet())
}

func TestCancelTitle_Resolve(t *testing.T) {
	def := CancelTitleSystemDefault().Resolve()
	assert.True(t, def.IsAbsent())

	custom := CancelTitleCustom("Dismiss").Resolve()
	assert.Equal(t, "Dismiss", custom.MustGet())
}

func TestFallbackTitle_ZeroValueIsSystemDefault(t *testing.T) {
	var title FallbackTitle
	assert.True(t, title.Resolve().IsAbsent())
}
