package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"picocad-tools/pkg/picocad"
)

// ExportOBJ exports the model to Wavefront OBJ format.
// It writes the OBJ data to w and creates an MTL file with the 16 palette
// materials next to objPath.
func ExportOBJ(m picocad.Model, w io.Writer, objPath string) error {
	baseName := filepath.Base(objPath)
	mtlFileName := strings.TrimSuffix(baseName, filepath.Ext(baseName)) + ".mtl"
	mtlPath := filepath.Join(filepath.Dir(objPath), mtlFileName)

	fmt.Fprintln(w, "# Exported by picocad-tools")
	fmt.Fprintf(w, "mtllib %s\n", mtlFileName)

	// Global indices for OBJ (1-based)
	vOffset := 1
	vtOffset := 1

	for meshIdx, mesh := range m.Meshes {
		fmt.Fprintf(w, "\no %s_%d\n", sanitizeName(mesh.Name), meshIdx)

		for _, v := range mesh.Vertices {
			p := mesh.Position.Add(v)
			fmt.Fprintf(w, "v %f %f %f\n", p.X, -p.Y, p.Z)
		}

		// Texture coordinates come per face corner, so duplicates are
		// written rather than deduplicated. Valid OBJ either way.
		meshVTs := 0
		var faceBuffer strings.Builder

		for _, face := range mesh.Faces {
			corners := make([]int, 0, len(face.UVMaps))
			for _, uv := range face.UVMaps {
				if uv.VertexIndex < 0 || uv.VertexIndex >= len(mesh.Vertices) {
					continue
				}
				// uv space spans the 16x15 texture area, OBJ wants 0..1
				// with the origin at the bottom left.
				fmt.Fprintf(w, "vt %f %f\n", uv.Coords.U/16, 1-uv.Coords.V/15)
				corners = append(corners, uv.VertexIndex)
				meshVTs++
			}
			if len(corners) < 3 {
				continue
			}

			fmt.Fprintf(&faceBuffer, "usemtl %s\n", materialName(face.Color))
			fmt.Fprintf(&faceBuffer, "f")
			vtIdx := vtOffset + meshVTs - len(corners)
			for i, vi := range corners {
				fmt.Fprintf(&faceBuffer, " %d/%d", vOffset+vi, vtIdx+i)
			}
			fmt.Fprintf(&faceBuffer, "\n")
		}

		fmt.Fprint(w, faceBuffer.String())

		vOffset += len(mesh.Vertices)
		vtOffset += meshVTs
	}

	if err := generateMTL(mtlPath); err != nil {
		return fmt.Errorf("failed to generate material library: %w", err)
	}

	return nil
}

// generateMTL writes one flat material per palette color.
func generateMTL(mtlPath string) error {
	f, err := os.Create(mtlPath)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Exported by picocad-tools")

	for c := picocad.ColorBlack; c <= picocad.ColorLightPeach; c++ {
		r, g, b := c.RGB()
		fmt.Fprintf(f, "\nnewmtl %s\n", materialName(c))
		fmt.Fprintf(f, "Kd %f %f %f\n", float64(r)/255, float64(g)/255, float64(b)/255)
		fmt.Fprintf(f, "Ka 0.000000 0.000000 0.000000\n")
		fmt.Fprintf(f, "Ks 0.000000 0.000000 0.000000\n")
	}
	return nil
}

func materialName(c picocad.Color) string {
	// Faces without a color fall back to black, same as the renderer.
	return sanitizeName("pico_" + picocad.ColorFromIndex(c.Index()).String())
}

func sanitizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, s)
}
