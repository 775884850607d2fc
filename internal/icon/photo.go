package icon

import (
	"fmt"
	"strings"

	"github.com/osse101/MonoCollector_Go/internal/utils"
)

// GeneratePhotoIcon draws a deterministic SVG from the dominant colors of a
// photo, as concentric rings or diagonal bands. Undecodable photos use
// FallbackPalette.
func GeneratePhotoIcon(data []byte) string {
	palette := ExtractPalette(data)
	if len(palette) == 0 {
		palette = FallbackPalette
	}

	h := utils.StableHashBytes(data)
	var sb strings.Builder
	sb.WriteString(svgOpen)
	fmt.Fprintf(&sb, `<rect width="100" height="100" rx="18" fill="%s"/>`, palette[0])

	if utils.Bucket(utils.Mix(h, saltLayout), 2) == 0 {
		writeRings(&sb, palette)
	} else {
		writeBands(&sb, palette, utils.Bucket(utils.Mix(h, saltRotation), 4)*45)
	}

	sb.WriteString(svgClose)
	return sb.String()
}

func writeRings(sb *strings.Builder, palette []string) {
	radius := 40
	step := radius / len(palette)
	for _, color := range palette[1:] {
		radius -= step
		fmt.Fprintf(sb, `<circle cx="50" cy="50" r="%d" fill="%s"/>`, radius+step/2, color)
	}
}

func writeBands(sb *strings.Builder, palette []string, rotation int) {
	fmt.Fprintf(sb, `<g transform="rotate(%d 50 50)">`, rotation)
	width := 140 / len(palette)
	for i, color := range palette[1:] {
		fmt.Fprintf(sb, `<rect x="%d" y="-20" width="%d" height="140" fill="%s"/>`, -20+(i+1)*width, width, color)
	}
	sb.WriteString(`</g>`)
}
