package export

import (
	"fmt"
	"io"

	"picocad-tools/pkg/picocad"
)

// SVGWriter renders model wireframes as SVG
type SVGWriter struct {
	w      io.Writer
	width  float64
	height float64
	axis   picocad.Axis
	scale  float64
}

func NewSVGWriter(w io.Writer, width, height float64, axis picocad.Axis, scale float64) *SVGWriter {
	return &SVGWriter{
		w:      w,
		width:  width,
		height: height,
		axis:   axis,
		scale:  scale,
	}
}

func (s *SVGWriter) WriteHeader() {
	fmt.Fprintf(s.w, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1"
width="%.2f" height="%.2f" viewBox="0 0 %.2f %.2f">
`, s.width, s.height, s.width, s.height)
}

func (s *SVGWriter) WriteFooter() {
	fmt.Fprintln(s.w, "</svg>")
}

// WriteModel draws every mesh as a group of closed face outlines, looking
// down the configured axis. Faces are stroked and lightly filled with their
// own palette color.
func (s *SVGWriter) WriteModel(m picocad.Model) {
	center := picocad.Point2D{U: s.width / 2, V: s.height / 2}

	for i, mesh := range m.Meshes {
		fmt.Fprintf(s.w, `<g id="%s_%d">`+"\n", sanitizeName(mesh.Name), i)
		for _, face := range mesh.Faces {
			s.writeFace(mesh, face, center)
		}
		fmt.Fprintln(s.w, `</g>`)
	}
}

func (s *SVGWriter) writeFace(mesh picocad.Mesh, face picocad.Face, center picocad.Point2D) {
	verts := face.Vertices(mesh.Vertices)
	if len(verts) < 2 {
		return
	}

	data := ""
	for i, v := range verts {
		p := mesh.Position.Add(v).Project(s.axis, s.scale, center)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		data += fmt.Sprintf("%s%.3f,%.3f ", cmd, p.U, p.V)
	}
	data += "z"

	hex := face.Color.Hex()
	fmt.Fprintf(s.w, `<path fill="#%s55" stroke="#%s" stroke-width="0.5" d="%s" />`+"\n",
		hex, hex, data)
}

// ExportSVG writes a wireframe projection of the whole model.
func ExportSVG(m picocad.Model, w io.Writer, axis picocad.Axis, scale float64) error {
	svg := NewSVGWriter(w, 256, 256, axis, scale)
	svg.WriteHeader()
	svg.WriteModel(m)
	svg.WriteFooter()
	return nil
}
