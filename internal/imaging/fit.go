// Package imaging shrinks oversized uploads before they are stored.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxWidth  = 1600
	DefaultMaxHeight = 1600

	lossyQuality = 85
)

// Fit downscales JPEG, PNG and WebP images so they fit within maxW x maxH,
// keeping the aspect ratio and the original format. Other formats, and
// images that already fit, are returned unchanged.
func Fit(data []byte, contentType string, maxW, maxH int) ([]byte, error) {
	var decode func([]byte) (image.Image, error)
	var encode func(*bytes.Buffer, image.Image) error

	switch contentType {
	case "image/jpeg":
		decode = func(b []byte) (image.Image, error) { return jpeg.Decode(bytes.NewReader(b)) }
		encode = func(w *bytes.Buffer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: lossyQuality})
		}
	case "image/png":
		decode = func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) }
		encode = func(w *bytes.Buffer, img image.Image) error { return png.Encode(w, img) }
	case "image/webp":
		decode = func(b []byte) (image.Image, error) { return webp.Decode(bytes.NewReader(b)) }
		encode = func(w *bytes.Buffer, img image.Image) error {
			return webp.Encode(w, img, &webp.Options{Quality: lossyQuality})
		}
	default:
		return data, nil
	}

	src, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", contentType, err)
	}

	dst, scaled := downscale(src, maxW, maxH)
	if !scaled {
		return data, nil
	}

	var buf bytes.Buffer
	if err := encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode %s: %w", contentType, err)
	}
	return buf.Bytes(), nil
}

func downscale(src image.Image, maxW, maxH int) (image.Image, bool) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src, false
	}

	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst, true
}
