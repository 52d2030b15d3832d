package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarveyo/iconkit"
)

func TestVerify_Problems(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sizes = []int{72, 96, 512}
	run(t, cfg)

	dir := cfg.OutputDir
	// Wrong dimensions under the right name.
	require.NoError(t, iconkit.NewCanvas(10, 10, iconkit.White).SavePNG(filepath.Join(dir, IconName(72))))
	// Not an image at all.
	require.NoError(t, os.WriteFile(filepath.Join(dir, IconName(96)), []byte("hello"), 0o600))
	// PNG where an ICO is expected.
	require.NoError(t, iconkit.NewCanvas(32, 32, iconkit.White).SavePNG(filepath.Join(dir, "favicon.ico")))

	report, err := Verify(dir, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "icon-72x72.png is 10x10, want 72x72")
	assert.Contains(t, err.Error(), "icon-96x96.png")
	assert.Contains(t, err.Error(), `favicon.ico: content is "png", want "ico"`)

	names := make([]string, 0, len(report.Files))
	for _, f := range report.Files {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"icon-512x512.png", "apple-touch-icon.png"}, names)
}

func TestVerify_Missing(t *testing.T) {
	cfg := testConfig(t)
	_, err := Verify("", cfg)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReport(t *testing.T) {
	r := &Report{Design: "logo"}
	r.add(File{Name: "a", Bytes: 10})
	r.add(File{Name: "b", Bytes: 5})
	assert.Equal(t, int64(15), r.Bytes())
	assert.Equal(t, "logo: 2 files, 15 bytes", r.String())
}
