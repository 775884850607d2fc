package category

import "github.com/osse101/MonoCollector_Go/internal/utils"

const (
	colorSaturation = 0.65
	colorLightness  = 0.55
)

// DefaultColor derives a stable color for a custom category from its id
func DefaultColor(id string) string {
	hue := float64(utils.Bucket(utils.StableHash(id), 360))
	return utils.HSLToHex(hue, colorSaturation, colorLightness)
}
