package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/solarveyo/iconkit/config"
)

func TestResolveFonts_Fallbacks(t *testing.T) {
	bitmap := ResolveFonts(config.Fonts{Fallback: config.FallbackBitmap})
	assert.False(t, bitmap.Scalable())
	assert.False(t, bitmap.Face(40, false).Scalable())

	emb := ResolveFonts(config.Fonts{Fallback: config.FallbackEmbedded})
	assert.True(t, emb.Scalable())
	assert.True(t, emb.Face(40, true).Scalable())
}

func TestResolveFonts_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bold.ttf")
	require.NoError(t, os.WriteFile(path, gobold.TTF, 0o600))

	set := ResolveFonts(config.Fonts{Bold: path, Fallback: config.FallbackBitmap})
	require.NotNil(t, set.Bold)
	assert.Equal(t, path, set.Bold.Path())
	assert.Nil(t, set.Regular)
}

func TestResolveFonts_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o600))

	set := ResolveFonts(config.Fonts{Regular: path, Fallback: config.FallbackEmbedded})
	require.NotNil(t, set.Regular)
	assert.Empty(t, set.Regular.Path(), "embedded fallback has no path")
}
