package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAddition(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{73, 37, 110},
		{0, 0, 0},
		{-5, 3, -2},
		{1000000, 1, 1000001},
	}
	for _, c := range cases {
		got, sym, err := Calculate(c.a, c.b, OpAddition)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
		assert.Equal(t, '+', sym)
	}
}

func TestCalculateSubtraction(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{73, 37, 36},
		{0, 0, 0},
		{3, 5, -2},
		{-1, -1, 0},
	}
	for _, c := range cases {
		got, sym, err := Calculate(c.a, c.b, OpSubtraction)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
		assert.Equal(t, '-', sym)
	}
}

func TestCalculateNone(t *testing.T) {
	_, _, err := Calculate(73, 37, OpNone)
	assert.Error(t, err)
}

func TestParseOp(t *testing.T) {
	op, err := ParseOp("addition")
	require.NoError(t, err)
	assert.Equal(t, OpAddition, op)

	op, err = ParseOp("subtraction")
	require.NoError(t, err)
	assert.Equal(t, OpSubtraction, op)

	op, err = ParseOp("none")
	require.NoError(t, err)
	assert.Equal(t, OpNone, op)

	op, err = ParseOp("")
	require.NoError(t, err)
	assert.Equal(t, OpNone, op)

	_, err = ParseOp("modulo")
	assert.Error(t, err)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "Addition", OpAddition.String())
	assert.Equal(t, "Substraction", OpSubtraction.String())
	assert.Equal(t, "None", OpNone.String())
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "Adding 37 to 73", OpAddition.Banner(73, 37))
	assert.Equal(t, "Substracting 37 from 73", OpSubtraction.Banner(73, 37))
	assert.Equal(t, "No operation specified; nothing to calculate", OpNone.Banner(73, 37))
}
