package icon

import (
	"fmt"

	"github.com/bbrks/go-blurhash"
)

// BlurHash computes a compact placeholder for a photo and returns it with the
// original dimensions.
func BlurHash(data []byte) (hash string, width, height int, err error) {
	img, err := decode(data)
	if err != nil {
		return "", 0, 0, err
	}

	bounds := img.Bounds()
	thumbnail := downscale(img, BlurHashSize)

	hash, err = blurhash.Encode(BlurHashXComponents, BlurHashYComponents, thumbnail)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%s: %w", ErrContextEncodeBlurHash, err)
	}
	return hash, bounds.Dx(), bounds.Dy(), nil
}
