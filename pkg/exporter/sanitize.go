package exporter

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultFilename is used when a destination has no usable base name.
const DefaultFilename = "frame.png"

// Sanitize rewrites a destination path so it is safe on restrictive file
// systems. The directory is kept as given. In the base name every rune that
// is not a letter, a number or '_' becomes '_'. The extension is always
// ".png", whatever was requested, because frames are PNG-encoded.
// Leading dots belong to the base name, so ".hidden" sanitizes to "_hidden.png".
func Sanitize(destinationPath string) string {
	dir, file := filepath.Split(destinationPath)
	base := strings.TrimSuffix(file, extension(file))
	if base == "" {
		base = strings.TrimSuffix(DefaultFilename, ".png")
	}

	safe := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return '_'
	}, base)

	return dir + safe + ".png"
}

// extension is filepath.Ext except that a dot in the leading run of dots
// never starts an extension.
func extension(file string) string {
	if !strings.Contains(strings.TrimLeft(file, "."), ".") {
		return ""
	}
	return filepath.Ext(file)
}
