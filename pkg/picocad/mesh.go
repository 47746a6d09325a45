package picocad

import (
	"fmt"
	"math"
	"strings"
)

// Rotation is a mesh orientation in full turns per axis, so 0.5 is half a
// revolution and 1 is a full one.
type Rotation Point3D

// Round rounds each component to three decimal places, matching the
// precision the editor itself writes.
func (r Rotation) Round() Rotation {
	round := func(v float64) float64 {
		return math.Round(v*1000) / 1000
	}
	return Rotation{X: round(r.X), Y: round(r.Y), Z: round(r.Z)}
}

// Normalize maps each component into [0, 1), wrapping whole turns away.
func (r Rotation) Normalize() Rotation {
	wrap := func(v float64) float64 {
		return math.Mod(math.Mod(v, 1)+1, 1)
	}
	return Rotation{X: wrap(r.X), Y: wrap(r.Y), Z: wrap(r.Z)}
}

// EqualRotation reports whether two rotations describe the same orientation.
// Both sides are rounded, normalized and rounded again before comparison,
// so 1.2504 and 0.25 compare equal while raw float comparison would not.
func (r Rotation) EqualRotation(o Rotation) bool {
	return r.Round().Normalize().Round() == o.Round().Normalize().Round()
}

const defaultMeshName = "mesh"

// Mesh is one object of a model: a named vertex cloud plus the faces that
// connect it.
type Mesh struct {
	Name     string
	Position Point3D
	Rotation Rotation
	Vertices []Point3D
	Faces    []Face
}

// NewMesh returns an empty mesh with the given name. An empty name falls
// back to the editor's default.
func NewMesh(name string) Mesh {
	if name == "" {
		name = defaultMeshName
	}
	return Mesh{Name: name}
}

// decodeMesh reads a mesh table. Every field is optional and falls back to
// its default; a field that is present with the wrong shape is an error
// naming that field.
func decodeMesh(t *Table) (Mesh, error) {
	mesh := NewMesh("")

	if v, ok := t.Named["name"]; ok {
		if v.Kind != KindString {
			return Mesh{}, &FieldError{Scope: "mesh", Field: "name"}
		}
		mesh.Name = v.Str
	}

	if v, ok := t.Named["pos"]; ok {
		if v.Kind != KindTable {
			return Mesh{}, &FieldError{Scope: "mesh", Field: "pos"}
		}
		pos, err := decodePoint3D(v.Table)
		if err != nil {
			return Mesh{}, fmt.Errorf("failed to decode mesh position: %w", err)
		}
		mesh.Position = pos
	}

	if v, ok := t.Named["rot"]; ok {
		if v.Kind != KindTable {
			return Mesh{}, &FieldError{Scope: "mesh", Field: "rot"}
		}
		rot, err := decodePoint3D(v.Table)
		if err != nil {
			return Mesh{}, fmt.Errorf("failed to decode mesh rotation: %w", err)
		}
		mesh.Rotation = Rotation(rot)
	}

	if v, ok := t.Named["v"]; ok {
		if v.Kind != KindTable {
			return Mesh{}, &FieldError{Scope: "mesh", Field: "v"}
		}
		for i, e := range v.Table.Seq {
			if e.Kind != KindTable {
				return Mesh{}, &FieldError{Scope: "mesh", Field: "v"}
			}
			p, err := decodePoint3D(e.Table)
			if err != nil {
				return Mesh{}, fmt.Errorf("failed to decode vertex %d: %w", i+1, err)
			}
			mesh.Vertices = append(mesh.Vertices, p)
		}
	}

	if v, ok := t.Named["f"]; ok {
		if v.Kind != KindTable {
			return Mesh{}, &FieldError{Scope: "mesh", Field: "f"}
		}
		for i, e := range v.Table.Seq {
			if e.Kind != KindTable {
				return Mesh{}, &FieldError{Scope: "mesh", Field: "f"}
			}
			face, err := decodeFace(e.Table)
			if err != nil {
				return Mesh{}, fmt.Errorf("failed to decode face %d: %w", i+1, err)
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}

	return mesh, nil
}

// ParseMesh evaluates a single mesh table literal.
func ParseMesh(src string) (Mesh, error) {
	t, err := EvalTable(src)
	if err != nil {
		return Mesh{}, fmt.Errorf("failed to evaluate mesh table: %w", err)
	}
	return decodeMesh(t)
}

// Serialize writes the mesh back as a table literal, laid out the way the
// editor saves it.
func (m Mesh) Serialize() string {
	vs := make([]string, 0, len(m.Vertices))
	for _, v := range m.Vertices {
		vs = append(vs, "  {"+v.String()+"}")
	}
	fs := make([]string, 0, len(m.Faces))
	for _, f := range m.Faces {
		fs = append(fs, "  "+f.Serialize())
	}
	return fmt.Sprintf("{\n name='%s', pos={%s}, rot={%s},\n v={\n%s\n },\n f={\n%s\n }\n}",
		m.Name,
		m.Position.String(),
		Point3D(m.Rotation).String(),
		strings.Join(vs, ",\n"),
		strings.Join(fs, ",\n"))
}

// Edges returns the distinct undirected edges of the mesh across all faces.
func (m Mesh) Edges() []Edge {
	var edges []Edge
	for _, f := range m.Faces {
		for _, e := range f.Edges(m.Vertices) {
			dup := false
			for _, have := range edges {
				if have.Equal(e) {
					dup = true
					break
				}
			}
			if !dup {
				edges = append(edges, e)
			}
		}
	}
	return edges
}
