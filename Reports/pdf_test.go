package Reports

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 255, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writeTestJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
	return path
}

func TestAllowedImage(t *testing.T) {
	assert.True(t, AllowedImage("scan.png"))
	assert.True(t, AllowedImage("scan.jpg"))
	assert.True(t, AllowedImage("SCAN.JPEG"))
	assert.False(t, AllowedImage("scan.gif"))
	assert.False(t, AllowedImage("scan.pdf"))
	assert.False(t, AllowedImage("scan"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "report_1.png", SanitizeFilename("report 1.png"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "scan.jpg", SanitizeFilename("scan.jpg"))
}

func TestStagedNameIsUnique(t *testing.T) {
	a := StagedName("scan.png")
	b := StagedName("scan.png")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "scan.png")
}

func TestConvertImagesToPDF(t *testing.T) {
	dir := t.TempDir()
	first := writeTestPNG(t, dir, "first.png", 10, 12)
	second := writeTestJPEG(t, dir, "second.jpg")

	outPath := filepath.Join(dir, "report.pdf")
	require.NoError(t, ConvertImagesToPDF([]string{first, second}, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	// One page per image.
	assert.Contains(t, string(data), "/Count 2")
}

func TestConvertImagesToPDFRejectsUndecodableImage(t *testing.T) {
	dir := t.TempDir()
	valid := writeTestPNG(t, dir, "ok.png", 10, 10)
	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("not an image"), 0o644))

	outPath := filepath.Join(dir, "report.pdf")
	err := ConvertImagesToPDF([]string{valid, broken}, outPath)
	require.Error(t, err)

	// No partial PDF may survive a failed conversion.
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertImagesToPDFNoInput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.pdf")
	assert.Error(t, ConvertImagesToPDF(nil, outPath))
}
