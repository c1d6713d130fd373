package labels

import "github.com/janelia-flyem/labelpyramid/dvid"

// PaletteSize is the number of entries in DefaultPalette.
const PaletteSize = 217

// DefaultPalette holds packed RGBA colors (R in the low byte, alpha 0xFF in the high
// byte) for label display.  No entry is black, so colored labels never look like
// background.
var DefaultPalette [PaletteSize]uint32

func init() {
	levels := [6]uint32{40, 83, 126, 169, 212, 255}
	for i := range DefaultPalette {
		// stride through the 6x6x6 cube so consecutive labels differ strongly
		c := (i*37 + 11) % 216
		r := levels[c%6]
		g := levels[(c/6)%6]
		b := levels[c/36]
		DefaultPalette[i] = 0xFF<<24 | b<<16 | g<<8 | r
	}
}

// Recolor writes palette[label % len(palette)] into dst for every nonzero label.
// Background voxels leave dst untouched.  If palette is empty, DefaultPalette is used.
func Recolor[T Label](data []T, dst []uint32, palette []uint32) {
	if len(palette) == 0 {
		palette = DefaultPalette[:]
	}
	n := T(len(palette))
	dvid.ParallelFor(len(data), dvid.NumCPU, func(begin, end int) {
		for i := begin; i < end; i++ {
			if lbl := data[i]; lbl != 0 {
				dst[i] = palette[lbl%n]
			}
		}
	})
}
