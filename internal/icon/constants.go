package icon

// SVG canvas
const (
	ViewBoxSize = 100
	svgOpen     = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">`
	svgClose    = `</svg>`
)

// Name icon styling
const (
	nameSaturation = 0.55
	nameLightness  = 0.58
	// Text switches to dark on backgrounds brighter than this
	lightBackgroundThreshold = 0.62
	fallbackGlyph            = "?"
)

// Hash salts so every visual attribute varies independently
const (
	saltHue uint32 = iota + 1
	saltShape
	saltPattern
	saltRotation
	saltLayout
)

// Photo palette extraction
const (
	// PaletteSampleSize is the longest side photos are downscaled to before counting colors
	PaletteSampleSize = 64
	// MaxPaletteColors caps the dominant colors returned
	MaxPaletteColors = 4
	// minOpaqueAlpha skips (mostly) transparent pixels
	minOpaqueAlpha = 128
)

// FallbackPalette is used when a photo cannot be decoded or has no opaque pixels
var FallbackPalette = []string{"#94A3B8", "#CBD5E1", "#64748B", "#E2E8F0"}

// MaxImagePixels caps width*height of photos that are decoded. A decoded
// RGBA canvas costs 4 bytes per pixel.
const MaxImagePixels = 40_000_000

// BlurHash placeholders
const (
	BlurHashSize        = 64
	BlurHashXComponents = 4
	BlurHashYComponents = 3
)

// NameIconCacheSize is the number of generated name icons kept in memory
const NameIconCacheSize = 512

// Error context messages
const (
	ErrContextDecodeImage     = "decode image"
	ErrContextDecodeConfig    = "read image header"
	ErrContextEmptyImage      = "image has no pixels"
	ErrContextEncodeBlurHash  = "encode blurhash"
	ErrContextUnsupportedType = "unsupported image type"
)
