package icon

import (
	"sort"

	"github.com/osse101/MonoCollector_Go/internal/utils"
)

type colorBucket struct {
	key     uint16
	count   int
	r, g, b int
}

// ExtractPalette returns up to MaxPaletteColors dominant colors of a photo,
// most frequent first. Undecodable input yields nil; callers fall back to
// FallbackPalette.
func ExtractPalette(data []byte) []string {
	img, err := decode(data)
	if err != nil {
		return nil
	}
	sample := downscale(img, PaletteSampleSize)

	buckets := make(map[uint16]*colorBucket)
	bounds := sample.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := sample.RGBAAt(x, y)
			if c.A < minOpaqueAlpha {
				continue
			}
			key := utils.QuantizeRGB(c.R, c.G, c.B)
			bucket, ok := buckets[key]
			if !ok {
				bucket = &colorBucket{key: key}
				buckets[key] = bucket
			}
			bucket.count++
			bucket.r += int(c.R)
			bucket.g += int(c.G)
			bucket.b += int(c.B)
		}
	}
	if len(buckets) == 0 {
		return nil
	}

	ranked := make([]*colorBucket, 0, len(buckets))
	for _, b := range buckets {
		ranked = append(ranked, b)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].key < ranked[j].key
	})

	n := min(len(ranked), MaxPaletteColors)
	palette := make([]string, n)
	for i, b := range ranked[:n] {
		// Average of the bucket's pixels, not the bucket center, so flat colors stay exact
		palette[i] = utils.RGBToHex(uint8(b.r/b.count), uint8(b.g/b.count), uint8(b.b/b.count))
	}
	return palette
}
