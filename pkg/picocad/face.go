package picocad

import (
	"strings"
)

// UVMap ties one vertex of a face to a texture coordinate. VertexIndex is
// zero-based in memory; the file format counts from one, and the conversion
// happens only while decoding and serializing.
type UVMap struct {
	VertexIndex int
	Coords      Point2D
}

// Face is a single polygon of a mesh. The boolean attributes mirror the
// optional flags of the file format and are omitted from output when false.
type Face struct {
	DoubleSided    bool
	NoShading      bool
	RenderPriority bool
	NoTexture      bool
	Color          Color
	UVMaps         []UVMap
}

func decodeFace(t *Table) (Face, error) {
	face := Face{Color: ColorInvalid}

	for _, v := range t.Seq {
		if v.Kind != KindNumber {
			return Face{}, &FieldError{Scope: "face", Field: "vertex index"}
		}
		face.UVMaps = append(face.UVMaps, UVMap{VertexIndex: int(v.Number) - 1})
	}

	if _, ok := t.Named["dbl"]; ok {
		face.DoubleSided = true
	}
	if _, ok := t.Named["noshade"]; ok {
		face.NoShading = true
	}
	if _, ok := t.Named["notex"]; ok {
		face.NoTexture = true
	}
	if _, ok := t.Named["prio"]; ok {
		face.RenderPriority = true
	}

	if v, ok := t.Named["c"]; ok && v.Kind == KindNumber {
		face.Color = ColorFromIndex(int(v.Number))
	}

	if v, ok := t.Named["uv"]; ok && v.Kind == KindTable {
		var uvs []float64
		for _, e := range v.Table.Seq {
			if e.Kind != KindNumber {
				break
			}
			uvs = append(uvs, e.Number)
		}
		if len(uvs) != 2*len(face.UVMaps) {
			return Face{}, &UVLengthError{Indices: len(face.UVMaps), Values: len(uvs)}
		}
		for i := range face.UVMaps {
			face.UVMaps[i].Coords = Point2D{U: uvs[2*i], V: uvs[2*i+1]}
		}
	}

	return face, nil
}

// Serialize writes the face back in the file format, flags in the fixed
// order dbl, noshade, notex, prio.
func (f Face) Serialize() string {
	var b strings.Builder
	b.WriteByte('{')
	for _, m := range f.UVMaps {
		b.WriteString(formatNum(float64(m.VertexIndex + 1)))
		b.WriteByte(',')
	}
	b.WriteString(" c=")
	b.WriteString(formatNum(float64(f.Color.Index())))
	b.WriteString(", ")
	if f.DoubleSided {
		b.WriteString("dbl=1, ")
	}
	if f.NoShading {
		b.WriteString("noshade=1, ")
	}
	if f.NoTexture {
		b.WriteString("notex=1, ")
	}
	if f.RenderPriority {
		b.WriteString("prio=1, ")
	}
	b.WriteString("uv={")
	uvs := make([]string, 0, 2*len(f.UVMaps))
	for _, m := range f.UVMaps {
		uvs = append(uvs, formatNum(m.Coords.U), formatNum(m.Coords.V))
	}
	b.WriteString(strings.Join(uvs, ","))
	b.WriteString("} }")
	return b.String()
}

// Vertices resolves the face's vertex indices against the mesh vertex list.
// Indices outside the list are skipped rather than reported; a partially
// resolvable face still yields its resolvable corners.
func (f Face) Vertices(meshVertices []Point3D) []Point3D {
	var pts []Point3D
	for _, m := range f.UVMaps {
		if m.VertexIndex < 0 || m.VertexIndex >= len(meshVertices) {
			continue
		}
		pts = append(pts, meshVertices[m.VertexIndex])
	}
	return pts
}

// Edge is an undirected segment between two vertices.
type Edge struct {
	Start Point3D
	End   Point3D
}

// Equal reports whether two edges connect the same endpoints, in either
// direction.
func (e Edge) Equal(o Edge) bool {
	return (e.Start == o.Start && e.End == o.End) ||
		(e.Start == o.End && e.End == o.Start)
}

// Edges returns the outline of the face, including the closing edge back to
// the first corner. Consecutive duplicate corners are collapsed; fewer than
// two resolvable corners yield no edges.
func (f Face) Edges(meshVertices []Point3D) []Edge {
	pts := f.Vertices(meshVertices)
	if len(pts) < 2 {
		return nil
	}
	var edges []Edge
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			continue
		}
		edges = append(edges, Edge{Start: pts[i-1], End: pts[i]})
	}
	edges = append(edges, Edge{Start: pts[len(pts)-1], End: pts[0]})
	return edges
}
