package picocad

import (
	"math"
	"strings"
)

// Texture dimensions of the footer grid, in pixels.
const (
	TextureWidth  = 128
	TextureHeight = 120

	footerLen = TextureWidth * TextureHeight
)

// Footer is the uv-mapping texture stored at the bottom of a project file:
// 120 lines of 128 hex digits, one palette color per pixel, row-major with
// the origin in the top-left corner.
type Footer struct {
	data []Color
}

// NewFooter returns an all-black footer.
func NewFooter() Footer {
	return Footer{data: make([]Color, footerLen)}
}

// ParseFooter parses the hex grid. Spaces and line breaks are ignored; the
// remaining characters must amount to exactly one full texture.
func ParseFooter(s string) (Footer, error) {
	data := make([]Color, 0, footerLen)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\r':
			continue
		}
		data = append(data, ColorFromChar(s[i]))
	}

	if len(data) != footerLen {
		return Footer{}, &FooterLengthError{Length: len(data)}
	}
	return Footer{data: data}, nil
}

// Serialize emits 120 lines of 128 hex digits, each newline-terminated.
func (f Footer) Serialize() string {
	var b strings.Builder
	b.Grow(footerLen + TextureHeight)
	for v := 0; v < TextureHeight; v++ {
		for u := 0; u < TextureWidth; u++ {
			b.WriteByte(f.data[u+v*TextureWidth].Char())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Get returns the color at the given pixel, or false when the coordinates
// fall outside the texture.
func (f Footer) Get(u, v int) (Color, bool) {
	if u < 0 || u >= TextureWidth || v < 0 || v >= TextureHeight {
		return ColorInvalid, false
	}
	return f.data[u+v*TextureWidth], true
}

// Set overwrites the color at the given pixel.
func (f *Footer) Set(u, v int, c Color) error {
	if u < 0 || u >= TextureWidth || v < 0 || v >= TextureHeight {
		return &IndexError{U: u, V: v}
	}
	f.data[u+v*TextureWidth] = c
	return nil
}

// at is the unchecked accessor used on paths that validated bounds already.
func (f Footer) at(u, v int) Color {
	if u < 0 || u >= TextureWidth || v < 0 || v >= TextureHeight {
		panic("picocad: footer index out of range")
	}
	return f.data[u+v*TextureWidth]
}

// Read looks up the pixel nearest to a continuous uv coordinate. Each pixel
// owns a 0.125 x 0.125 region, so the valid range extends half a pixel past
// the texture on the low side. Out-of-range coordinates return ColorInvalid
// rather than an error; this path runs during rendering-adjacent lookups
// where a sentinel is cheaper than a result.
func (f Footer) Read(u, v float64) Color {
	if u < -0.0625 || u >= 15.9375 || v < -0.0625 || v >= 14.9375 {
		return ColorInvalid
	}
	pu := int(math.Round(u * 8))
	pv := int(math.Round(v * 8))
	if pu < 0 {
		pu = 0
	}
	if pv < 0 {
		pv = 0
	}
	return f.at(pu, pv)
}

// IsSolid reports whether every pixel has the same color.
func (f Footer) IsSolid() bool {
	for _, c := range f.data {
		if c != f.data[0] {
			return false
		}
	}
	return true
}
