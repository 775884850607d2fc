package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	t.Run("unifies full-width and half-width forms", func(t *testing.T) {
		assert.Equal(t, NormalizeName("ABC 123"), NormalizeName("ＡＢＣ　１２３"))
	})

	t.Run("folds case", func(t *testing.T) {
		assert.Equal(t, "coffee mug", NormalizeName("Coffee MUG"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "old lamp", NormalizeName("  old \t  lamp \n"))
	})

	t.Run("unifies half-width katakana", func(t *testing.T) {
		assert.Equal(t, NormalizeName("カメラ"), NormalizeName("ｶﾒﾗ"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", NormalizeName("   "))
	})
}

func TestFirstGlyph(t *testing.T) {
	assert.Equal(t, "り", FirstGlyph("りんご"))
	assert.Equal(t, "M", FirstGlyph("  mug"))
	assert.Equal(t, "A", FirstGlyph("ａpple"), "full-width letters are normalized")
	assert.Equal(t, "", FirstGlyph(""))
	assert.Equal(t, "", FirstGlyph(" \t "))
}

func TestSlugify(t *testing.T) {
	t.Run("ascii names", func(t *testing.T) {
		assert.Equal(t, "board-games", Slugify("Board Games!"))
		assert.Equal(t, "vinyl-records-2024", Slugify("  Vinyl -- Records 2024 "))
	})

	t.Run("non-ascii names fall back to a stable hash slug", func(t *testing.T) {
		first := Slugify("思い出の写真")
		assert.True(t, strings.HasPrefix(first, "custom-"))
		assert.Equal(t, first, Slugify("思い出の写真"))
		assert.NotEqual(t, first, Slugify("古い手紙"))
	})

	t.Run("long names are capped", func(t *testing.T) {
		slug := Slugify(strings.Repeat("collection ", 10))
		assert.LessOrEqual(t, len(slug), MaxSlugLength)
		assert.False(t, strings.HasSuffix(slug, "-"))
	})
}
