package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFitDownscalesKeepingAspect(t *testing.T) {
	out, err := Fit(encodePNG(t, 400, 100), "image/png", 200, 200)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestFitLeavesSmallImagesAlone(t *testing.T) {
	in := encodePNG(t, 50, 50)

	out, err := Fit(in, "image/png", 200, 200)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFitPassesThroughOtherFormats(t *testing.T) {
	in := []byte("GIF89a...")

	out, err := Fit(in, "image/gif", 10, 10)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFitRejectsCorruptImage(t *testing.T) {
	_, err := Fit([]byte("\x89PNG\r\n\x1a\nbroken"), "image/png", 10, 10)
	assert.Error(t, err)
}

func TestFitDownscalesWebP(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, webp.Encode(&in, image.NewRGBA(image.Rect(0, 0, 300, 300)), &webp.Options{Lossless: true}))

	out, err := Fit(in.Bytes(), "image/webp", 100, 100)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}
