package icon

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// SupportedContentTypes are the image formats accepted for item photos
var SupportedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageInfo describes an uploaded photo
type ImageInfo struct {
	ContentType string
	Width       int
	Height      int
}

// Inspect sniffs the content type from the bytes themselves and reads the
// dimensions without decoding the full image. Images above MaxImagePixels
// fail with domain.ErrImageTooLarge.
func Inspect(data []byte) (ImageInfo, error) {
	contentType := http.DetectContentType(data)
	if !SupportedContentTypes[contentType] {
		return ImageInfo{}, fmt.Errorf("%s: %s", ErrContextUnsupportedType, contentType)
	}

	cfg, err := decodeConfig(data)
	if err != nil {
		return ImageInfo{}, err
	}
	return ImageInfo{ContentType: contentType, Width: cfg.Width, Height: cfg.Height}, nil
}

// decodeConfig reads the header and enforces the pixel budget, so a small
// file declaring a huge canvas is refused before anything is allocated.
func decodeConfig(data []byte) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, fmt.Errorf("%s: %w", ErrContextDecodeConfig, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Config{}, fmt.Errorf("%s: %dx%d", ErrContextEmptyImage, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return image.Config{}, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			domain.ErrImageTooLarge, cfg.Width, cfg.Height, MaxImagePixels)
	}
	return cfg, nil
}

func decode(data []byte) (image.Image, error) {
	if _, err := decodeConfig(data); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeImage, err)
	}
	return img, nil
}

// downscale fits img within maxSide keeping the aspect ratio. Smaller images
// are converted to RGBA unscaled.
func downscale(img image.Image, maxSide int) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dw, dh := w, h
	if w > maxSide || h > maxSide {
		if w >= h {
			dw = maxSide
			dh = max(1, h*maxSide/w)
		} else {
			dh = maxSide
			dw = max(1, w*maxSide/h)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	if dw == w && dh == h {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
