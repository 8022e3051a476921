package color_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestColorsOrder(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Yellow, color.Green, color.Blue}, color.Colors)
}

func TestPaintKeepsText(t *testing.T) {
	require.Contains(t, color.Red.Paint("U"), "U")
	require.Contains(t, color.Red.Paint("U"), "(red)")
	require.Contains(t, color.Special.Paintf("[%d]", 4), "[4]")
	require.NotContains(t, color.Special.Paint("(*)"), "(special)")
}
