package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/KononK/resize"
	"github.com/esimov/colorquant"

	"picocad-tools/pkg/picocad"
)

// palette is the 16-color picoCAD palette as an image/color palette.
var palette = func() color.Palette {
	p := make(color.Palette, 0, 16)
	for c := picocad.ColorBlack; c <= picocad.ColorLightPeach; c++ {
		r, g, b := c.RGB()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return p
}()

// ExportTexturePNG writes the texture footer as a PNG, upscaled by an
// integer factor. Scale 1 yields the native 128x120 image.
func ExportTexturePNG(f picocad.Footer, w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, picocad.TextureWidth*scale, picocad.TextureHeight*scale))
	for v := 0; v < picocad.TextureHeight; v++ {
		for u := 0; u < picocad.TextureWidth; u++ {
			c, _ := f.Get(u, v)
			r, g, b := c.RGB()
			rgba := color.RGBA{R: r, G: g, B: b, A: 255}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(u*scale+dx, v*scale+dy, rgba)
				}
			}
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode texture png: %w", err)
	}
	return nil
}

// ImportTexturePNG reads an arbitrary PNG and converts it into a texture
// footer: scaled to 128x120, quantized down to 16 colors and snapped to the
// nearest palette entry per pixel.
func ImportTexturePNG(r io.Reader) (picocad.Footer, error) {
	src, err := png.Decode(r)
	if err != nil {
		return picocad.Footer{}, fmt.Errorf("failed to decode png: %w", err)
	}

	scaled := resize.Resize(picocad.TextureWidth, picocad.TextureHeight, src, resize.NearestNeighbor)

	dst := image.NewPaletted(scaled.Bounds(), palette)
	colorquant.NoDither.Quantize(scaled, dst, 16, false, true)

	footer := picocad.NewFooter()
	for v := 0; v < picocad.TextureHeight; v++ {
		for u := 0; u < picocad.TextureWidth; u++ {
			r, g, b, _ := palette.Convert(dst.At(u, v)).RGBA()
			c := picocad.ColorFromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			if c == picocad.ColorInvalid {
				c = picocad.ColorBlack
			}
			if err := footer.Set(u, v, c); err != nil {
				return picocad.Footer{}, err
			}
		}
	}
	return footer, nil
}
