package lacontext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Real challenges need a sensor and a user, so only construction is covered
// here; the facade's behavior is tested against a scripted Context.
func TestNew(t *testing.T) {
	ctx := New()
	require.NotNil(t, ctx)
	require.NoError(t, ctx.Close())
}
