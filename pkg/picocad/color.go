package picocad

// Color is one entry of the fixed 16-color palette picoCAD renders with.
// ColorInvalid is the sentinel every total conversion falls back to; on the
// wire it is indistinguishable from ColorBlack (index 0, char '0').
type Color int

const (
	ColorInvalid Color = iota - 1
	ColorBlack
	ColorDarkBlue
	ColorDarkPurple
	ColorDarkGreen
	ColorBrown
	ColorDarkGrey
	ColorLightGrey
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorLavender
	ColorPink
	ColorLightPeach
)

// rgbTable holds the official base palette, indexed by color code.
var rgbTable = [16][3]uint8{
	{0, 0, 0},       // black
	{29, 43, 83},    // dark blue
	{126, 37, 83},   // dark purple
	{0, 135, 81},    // dark green
	{171, 82, 54},   // brown
	{95, 87, 79},    // dark grey
	{194, 195, 199}, // light grey
	{255, 241, 232}, // white
	{255, 0, 77},    // red
	{255, 163, 0},   // orange
	{255, 236, 39},  // yellow
	{0, 228, 54},    // green
	{41, 173, 255},  // blue
	{131, 118, 156}, // lavender
	{255, 119, 168}, // pink
	{255, 204, 170}, // light peach
}

var colorNames = [16]string{
	"black", "dark-blue", "dark-purple", "dark-green",
	"brown", "dark-grey", "light-grey", "white",
	"red", "orange", "yellow", "green",
	"blue", "lavender", "pink", "light-peach",
}

// ColorFromIndex converts an integer color code into a Color.
// Values outside 0-15 yield ColorInvalid.
func ColorFromIndex(i int) Color {
	if i < 0 || i > 15 {
		return ColorInvalid
	}
	return Color(i)
}

// ColorFromChar converts a lowercase hex digit into a Color.
// Anything else yields ColorInvalid.
func ColorFromChar(c byte) Color {
	switch {
	case c >= '0' && c <= '9':
		return Color(c - '0')
	case c >= 'a' && c <= 'f':
		return Color(c-'a') + 10
	}
	return ColorInvalid
}

// ColorFromRGB converts an rgb triplet into a Color. Only the exact palette
// values match; everything else yields ColorInvalid.
func ColorFromRGB(r, g, b uint8) Color {
	for i, rgb := range rgbTable {
		if rgb[0] == r && rgb[1] == g && rgb[2] == b {
			return Color(i)
		}
	}
	return ColorInvalid
}

// Index returns the integer code used for colors in the header and in face
// definitions. ColorInvalid maps to 0, same as black.
func (c Color) Index() int {
	if c < ColorBlack || c > ColorLightPeach {
		return 0
	}
	return int(c)
}

// Char returns the hex digit used for colors in the texture footer.
func (c Color) Char() byte {
	i := c.Index()
	if i < 10 {
		return byte('0' + i)
	}
	return byte('a' + i - 10)
}

// Hex returns the color as an uppercase RRGGBB hex code without a leading '#'.
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	r, g, b := c.RGB()
	return string([]byte{
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	})
}

// RGB returns the palette triplet for the color. ColorInvalid returns black.
func (c Color) RGB() (r, g, b uint8) {
	rgb := rgbTable[c.Index()]
	return rgb[0], rgb[1], rgb[2]
}

func (c Color) String() string {
	if c < ColorBlack || c > ColorLightPeach {
		return "invalid"
	}
	return colorNames[c]
}

// Shadow returns the color picoCAD replaces c with on a fully shadowed face.
// The mapping is fixed domain data lifted from picoCAD's renderer, not
// something derivable from the palette itself.
func (c Color) Shadow() Color {
	switch c {
	case ColorBlack, ColorDarkBlue, ColorDarkPurple, ColorDarkGrey:
		return ColorBlack
	case ColorDarkGreen, ColorBrown, ColorRed, ColorGreen, ColorLavender:
		return ColorDarkBlue
	case ColorLightGrey, ColorBlue:
		return ColorDarkGrey
	case ColorOrange, ColorPink:
		return ColorDarkPurple
	case ColorYellow, ColorLightPeach:
		return ColorBrown
	case ColorWhite:
		return ColorLavender
	}
	return ColorInvalid
}

// ShadowTransition returns the intermediate color picoCAD uses while a face
// transitions into shadow. Like Shadow, this is a handwritten table.
func (c Color) ShadowTransition() Color {
	switch c {
	case ColorBlack, ColorDarkBlue:
		return ColorBlack
	case ColorDarkPurple, ColorDarkGrey:
		return ColorDarkBlue
	case ColorDarkGreen, ColorLavender:
		return ColorDarkGrey
	case ColorBrown, ColorRed:
		return ColorDarkPurple
	case ColorLightGrey, ColorBlue:
		return ColorLavender
	case ColorYellow, ColorLightPeach:
		return ColorOrange
	case ColorWhite:
		return ColorLightGrey
	case ColorOrange:
		return ColorBrown
	case ColorGreen:
		return ColorDarkGreen
	case ColorPink:
		return ColorRed
	}
	return ColorInvalid
}
