package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSense(t *testing.T) {
	for in, want := range map[string]Sense{
		"min": Minimize, "MIN": Minimize, "minimize": Minimize,
		"max": Maximize, " Maximize ": Maximize,
	} {
		got, err := ParseSense(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseSense_Invalid(t *testing.T) {
	_, err := ParseSense("sideways")
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestSense_Comparisons(t *testing.T) {
	assert.True(t, Minimize.Better(1, 2))
	assert.False(t, Minimize.Better(2, 2))
	assert.True(t, Minimize.AtLeastAsGood(2, 2))
	assert.True(t, Maximize.Better(2, 1))
	assert.Equal(t, 1.0, Minimize.Best(3, 1))
	assert.Equal(t, 3.0, Maximize.Best(3, 1))
	assert.Equal(t, Sentinel, Minimize.Initial())
	assert.Equal(t, -Sentinel, Maximize.Initial())
}

func TestColorForCode(t *testing.T) {
	c, err := ColorForCode("3")
	require.NoError(t, err)
	assert.Equal(t, ColorUnsolved, c)

	c, err = ColorForCode("14")
	require.NoError(t, err)
	assert.Equal(t, ColorSolution, c)

	_, err = ColorForCode("7")
	assert.Error(t, err)
}
