package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaletteNext(t *testing.T) {
	p := NewPalette("red", "green", "blue")

	// test each color
	require.Equal(t, Color("red"), p.Next())
	require.Equal(t, Color("green"), p.Next())
	require.Equal(t, Color("blue"), p.Next())

	// test wrap around
	require.Equal(t, Color("red"), p.Next())

	p.Reset()
	require.Equal(t, Color("red"), p.Next())
}

func TestDefaultPalette(t *testing.T) {
	p := NewPalette()
	require.Equal(t, defaultColors[0], p.Next())
}
