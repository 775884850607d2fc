package icon

import (
	"fmt"
	"strings"

	"github.com/osse101/MonoCollector_Go/internal/utils"
)

type shapeFunc func(sb *strings.Builder, fill string, rotation int)

var shapes = []shapeFunc{
	func(sb *strings.Builder, fill string, _ int) {
		fmt.Fprintf(sb, `<circle cx="50" cy="50" r="46" fill="%s"/>`, fill)
	},
	func(sb *strings.Builder, fill string, rotation int) {
		fmt.Fprintf(sb, `<rect x="8" y="8" width="84" height="84" rx="20" fill="%s" transform="rotate(%d 50 50)"/>`, fill, rotation%10)
	},
	func(sb *strings.Builder, fill string, _ int) {
		fmt.Fprintf(sb, `<polygon points="50,4 90,27 90,73 50,96 10,73 10,27" fill="%s"/>`, fill)
	},
	func(sb *strings.Builder, fill string, _ int) {
		fmt.Fprintf(sb, `<polygon points="50,3 97,50 50,97 3,50" fill="%s"/>`, fill)
	},
}

type patternFunc func(sb *strings.Builder, color string, rotation int)

var patterns = []patternFunc{
	// dots
	func(sb *strings.Builder, color string, _ int) {
		fmt.Fprintf(sb, `<g fill="%s" opacity="0.25">`, color)
		for y := 20; y <= 80; y += 20 {
			for x := 20; x <= 80; x += 20 {
				fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="3"/>`, x, y)
			}
		}
		sb.WriteString(`</g>`)
	},
	// stripes
	func(sb *strings.Builder, color string, rotation int) {
		fmt.Fprintf(sb, `<g stroke="%s" stroke-width="4" opacity="0.2" transform="rotate(%d 50 50)">`, color, rotation)
		for x := 10; x <= 90; x += 16 {
			fmt.Fprintf(sb, `<line x1="%d" y1="0" x2="%d" y2="100"/>`, x, x)
		}
		sb.WriteString(`</g>`)
	},
	// rings
	func(sb *strings.Builder, color string, _ int) {
		fmt.Fprintf(sb, `<g fill="none" stroke="%s" stroke-width="3" opacity="0.25">`, color)
		for r := 18; r <= 42; r += 12 {
			fmt.Fprintf(sb, `<circle cx="50" cy="50" r="%d"/>`, r)
		}
		sb.WriteString(`</g>`)
	},
}

// GenerateNameIcon draws a deterministic SVG avatar for an item name: a shape
// and pattern picked from the name hash, colored by a hashed hue, with the
// name's first character in the middle.
func GenerateNameIcon(name string) string {
	normalized := utils.NormalizeName(name)
	h := utils.StableHash(normalized)

	hue := float64(utils.Bucket(utils.Mix(h, saltHue), 360))
	fill := utils.HSLToHex(hue, nameSaturation, nameLightness)
	r, g, b := utils.HSLToRGB(hue, nameSaturation, nameLightness)

	textColor := "#FFFFFF"
	if utils.Luminance(r, g, b) > lightBackgroundThreshold {
		textColor = "#1F2937"
	}

	glyph := utils.FirstGlyph(normalized)
	if glyph == "" {
		glyph = fallbackGlyph
	}

	rotation := utils.Bucket(utils.Mix(h, saltRotation), 180)

	var sb strings.Builder
	sb.WriteString(svgOpen)
	shapes[utils.Bucket(utils.Mix(h, saltShape), len(shapes))](&sb, fill, rotation)
	patterns[utils.Bucket(utils.Mix(h, saltPattern), len(patterns))](&sb, textColor, rotation)
	fmt.Fprintf(&sb,
		`<text x="50" y="50" dy="0.35em" text-anchor="middle" font-family="sans-serif" font-size="44" font-weight="bold" fill="%s">%s</text>`,
		textColor, escapeText(glyph))
	sb.WriteString(svgClose)
	return sb.String()
}
