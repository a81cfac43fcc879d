package buildtags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varcalc/varcalc/internal/calc"
)

// The constants vary with build tags; these tests hold under any tag
// combination.

func TestDefaultOpIsValid(t *testing.T) {
	_, err := calc.ParseOp(DefaultOp)
	require.NoError(t, err)
}

func TestDebugSafeInAnyBuild(t *testing.T) {
	// Debug must be safe to call in every build; output only appears
	// when DebugEnabled is true.
	assert.NotPanics(t, func() {
		Debug("buildtags: debug=%v\n", DebugEnabled)
	})
}
