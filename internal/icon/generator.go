package icon

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/utils"
)

// Generator produces item icons and memoizes name icons, which are pure
// functions of the normalized name.
type Generator struct {
	names *expirable.LRU[string, string]
}

// NewGenerator creates a generator caching up to size name icons
func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = NameIconCacheSize
	}
	return &Generator{
		// ttl 0 never expires; entries only leave by LRU eviction
		names: expirable.NewLRU[string, string](size, nil, 0),
	}
}

// NameIcon returns the (cached) icon for name
func (g *Generator) NameIcon(name string) string {
	key := utils.NormalizeName(name)
	if svg, ok := g.names.Get(key); ok {
		return svg
	}
	svg := GenerateNameIcon(name)
	g.names.Add(key, svg)
	return svg
}

// PhotoIcon returns the icon for a photo. Photos are not cached; they are
// large and rarely regenerated.
func (g *Generator) PhotoIcon(data []byte) string {
	return GeneratePhotoIcon(data)
}

// Generate picks the generator for source. It reports false for unknown sources.
func (g *Generator) Generate(source domain.IconSource, name string, photo []byte) (string, bool) {
	switch source {
	case domain.IconSourceName:
		return g.NameIcon(name), true
	case domain.IconSourcePhoto:
		return g.PhotoIcon(photo), true
	default:
		return "", false
	}
}

// CachedNames reports how many name icons are cached
func (g *Generator) CachedNames() int {
	return g.names.Len()
}
