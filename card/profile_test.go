package card

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFadeProfile(t *testing.T) {
	assert := assert.New(t)
	g := Geometry{ContentWidth: 80, ContentHeight: 60, ReflectionSize: 30}
	out := Render(solid(80, 60, red), g, DefaultStyle())

	profile := FadeProfile(out, g)
	require.Len(t, profile, 30)
	assert.InDelta(DefaultStyle().Gradient.AlphaAt(0.5/30), profile[0], 0.02)
	for i := 1; i < len(profile); i++ {
		assert.LessOrEqual(profile[i], profile[i-1]+0.005, "row %d", i)
	}
	assert.InDelta(0, profile[len(profile)-1], 1e-9)

	assert.Nil(FadeProfile(out, Geometry{ContentWidth: 80, ContentHeight: 60}))
}

func TestPlotFadeProfile(t *testing.T) {
	g := Geometry{ContentWidth: 40, ContentHeight: 30, ReflectionSize: 15, CornerRadius: 5}
	out := Render(solid(40, 30, red), g, DefaultStyle())

	path := filepath.Join(t.TempDir(), "profile.png")
	require.NoError(t, PlotFadeProfile(out, g, DefaultStyle(), 320, 240, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, PlotFadeProfile(out, Geometry{ContentWidth: 40, ContentHeight: 30}, DefaultStyle(), 320, 240, path))
}
