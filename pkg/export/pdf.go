package export

import (
	"io"

	"github.com/go-pdf/fpdf"

	"picocad-tools/pkg/picocad"
)

// ExportPDF writes a wireframe sheet of the model, one A4 page per mesh.
// It uses "github.com/go-pdf/fpdf".
func ExportPDF(m picocad.Model, w io.Writer, axis picocad.Axis, scale float64) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 10)

	// A4 center in mm.
	center := picocad.Point2D{U: 105, V: 148.5}

	for _, mesh := range m.Meshes {
		pdf.AddPage()
		pdf.Text(10, 10, mesh.Name)

		pdf.SetLineWidth(0.2)
		pdf.SetDrawColor(0, 0, 0)

		for _, edge := range mesh.Edges() {
			a := mesh.Position.Add(edge.Start).Project(axis, scale, center)
			b := mesh.Position.Add(edge.End).Project(axis, scale, center)
			pdf.Line(a.U, a.V, b.U, b.V)
		}
	}

	return pdf.Output(w)
}
