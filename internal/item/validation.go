package item

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidInput, MaxNameLength)
	}
	return name, nil
}

func validateText(field, value string, limit int) (string, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > limit {
		return "", fmt.Errorf("%w: %s exceeds %d characters", domain.ErrInvalidInput, field, limit)
	}
	return value, nil
}

// normalizeTags trims, drops blanks and removes duplicates keeping first-seen order
func normalizeTags(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return nil, fmt.Errorf("%w: tag %q exceeds %d characters", domain.ErrInvalidInput, tag, MaxTagLength)
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) > MaxTags {
		return nil, fmt.Errorf("%w: at most %d tags", domain.ErrInvalidInput, MaxTags)
	}
	return out, nil
}

func normalizeFilter(filter domain.ItemFilter) domain.ItemFilter {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}
