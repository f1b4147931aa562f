// Package shared provides filename helpers used across the labware-import
// packages.
package shared

import (
	"path/filepath"
	"strings"
)

// orientationSuffixes mark landscape and portrait variants of one geometry.
var orientationSuffixes = []string{"_L.rck", "_P.rck"}

// CanonicalPath strips an orientation suffix from a .rck path. Other paths
// are returned unchanged.
func CanonicalPath(path string) string {
	for _, suffix := range orientationSuffixes {
		if strings.HasSuffix(path, suffix) {
			return strings.TrimSuffix(path, suffix) + ".rck"
		}
	}
	return path
}

// ModelName returns the file name up to its first dot.
func ModelName(path string) string {
	base := filepath.Base(path)
	if idx := strings.Index(base, "."); idx >= 0 {
		return base[:idx]
	}
	return base
}

var leadingDigitWords = map[byte]string{
	'4': "Four",
	'5': "Five",
}

// IdentifierModelName spells out a leading digit so that the model name can
// be used as an identifier, e.g. "4mlTF_L" becomes "FourmlTF_L".
func IdentifierModelName(name string) string {
	if name == "" {
		return name
	}
	if word, ok := leadingDigitWords[name[0]]; ok {
		return word + name[1:]
	}
	return name
}
