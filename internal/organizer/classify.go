package organizer

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classify maps a file name or path to its label: the text after the last dot
// of the base name, lowercased. Names without a dot, or ending in one, map to
// NoExtensionLabel. Hidden files are not special-cased, so ".bashrc" yields
// "bashrc".
func Classify(name string) Label {
	base := filepath.Base(name)
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return NoExtensionLabel
	}
	ext := cases.Lower(language.Und).String(base[idx+1:])
	if ext == "" {
		return NoExtensionLabel
	}
	return Label(ext)
}
