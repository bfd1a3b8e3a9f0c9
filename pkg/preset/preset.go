// Package preset defines the resolution presets a frame can be exported at.
package preset

import "strings"

// Preset names a target resolution.
type Preset string

const (
	SD       Preset = "SD"
	HD       Preset = "HD"
	FHD      Preset = "FHD"
	QHD      Preset = "QHD"
	UHD4K    Preset = "4K"
	UHD8K    Preset = "8K"
	Original Preset = "Original"
)

// Default is the preset selected when none is given.
const Default = FHD

// Size is a pixel dimension.
type Size struct {
	Width  int
	Height int
}

var sizes = map[Preset]Size{
	SD:    {Width: 640, Height: 480},
	HD:    {Width: 1280, Height: 720},
	FHD:   {Width: 1920, Height: 1080},
	QHD:   {Width: 2560, Height: 1440},
	UHD4K: {Width: 3840, Height: 2160},
	UHD8K: {Width: 7680, Height: 4320},
}

// All lists every preset in display order.
var All = []Preset{SD, HD, FHD, QHD, UHD4K, UHD8K, Original}

// Size returns the target dimensions of p. The second result is false
// for Original and for any value outside the table, meaning "do not resize".
func (p Preset) Size() (Size, bool) {
	s, ok := sizes[p]
	return s, ok
}

// Resizes reports whether p maps to a fixed size.
func (p Preset) Resizes() bool {
	_, ok := sizes[p]
	return ok
}

func (p Preset) String() string {
	return string(p)
}

// Parse maps a preset name to a Preset. Matching ignores case and
// surrounding spaces. Unrecognized names map to Original.
func Parse(name string) Preset {
	name = strings.TrimSpace(name)
	for _, p := range All {
		if strings.EqualFold(name, string(p)) {
			return p
		}
	}
	switch strings.ToLower(name) {
	case "원본", "none", "native":
		return Original
	case "uhd":
		return UHD4K
	}
	return Original
}
