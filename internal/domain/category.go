package domain

import (
	"sort"
	"strings"
)

// DefaultCategory receives every file whose extension is not configured,
// including extensionless files.
const DefaultCategory = "Others"

// Mapping assigns file extensions to category names. It is built once from
// the loaded configuration and never mutated afterwards.
type Mapping struct {
	byExt      map[string]string
	categories []string
}

// NewMapping normalizes a raw category -> extensions table into a lookup
// index. Extensions are lowercased and get a leading dot if missing. When the
// same extension appears under two categories, the category that sorts first
// by name wins, so the result does not depend on map iteration order.
func NewMapping(raw map[string][]string) Mapping {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	byExt := make(map[string]string)
	for _, name := range names {
		for _, ext := range raw[name] {
			normalized := NormalizeExt(ext)
			if normalized == "" {
				continue
			}
			if _, taken := byExt[normalized]; !taken {
				byExt[normalized] = name
			}
		}
	}

	return Mapping{byExt: byExt, categories: names}
}

// Classify returns the category configured for ext, or DefaultCategory when
// the extension is unknown or empty. The lookup is case-insensitive and
// accepts extensions with or without the leading dot.
func (m Mapping) Classify(ext string) string {
	normalized := NormalizeExt(ext)
	if normalized == "" {
		return DefaultCategory
	}
	if category, ok := m.byExt[normalized]; ok {
		return category
	}
	return DefaultCategory
}

// Categories returns the configured category names in sorted order, without
// DefaultCategory.
func (m Mapping) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// Len reports how many extensions the mapping covers.
func (m Mapping) Len() int {
	return len(m.byExt)
}

// NormalizeExt lowercases an extension and ensures the leading dot. Empty or
// dot-only input normalizes to the empty string.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
