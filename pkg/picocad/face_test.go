package picocad

import (
	"errors"
	"reflect"
	"testing"
)

func decodeFaceLiteral(t *testing.T, src string) (Face, error) {
	t.Helper()
	tab, err := EvalTable(src)
	if err != nil {
		t.Fatalf("EvalTable failed: %v", err)
	}
	return decodeFace(tab)
}

func TestDecodeFace(t *testing.T) {
	got, err := decodeFaceLiteral(t, "{4,3,2,1, c=10, dbl=1, uv={2,3.5,1,3.5,1.5,2,0,0}}")
	if err != nil {
		t.Fatalf("decodeFace failed: %v", err)
	}

	want := Face{
		DoubleSided: true,
		Color:       ColorYellow,
		UVMaps: []UVMap{
			{VertexIndex: 3, Coords: Point2D{U: 2, V: 3.5}},
			{VertexIndex: 2, Coords: Point2D{U: 1, V: 3.5}},
			{VertexIndex: 1, Coords: Point2D{U: 1.5, V: 2}},
			{VertexIndex: 0, Coords: Point2D{U: 0, V: 0}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decodeFace got %+v, want %+v", got, want)
	}

	// 1-based indices come back in the original order.
	wantSerialized := "{4,3,2,1, c=10, dbl=1, uv={2,3.5,1,3.5,1.5,2,0,0} }"
	if s := got.Serialize(); s != wantSerialized {
		t.Errorf("Serialize got %q, want %q", s, wantSerialized)
	}
}

func TestDecodeFace_UVLength(t *testing.T) {
	_, err := decodeFaceLiteral(t, "{1,2,3, c=0, uv={0,0,1,1}}")
	var uvErr *UVLengthError
	if !errors.As(err, &uvErr) {
		t.Fatalf("got %v, want UVLengthError", err)
	}
	if uvErr.Indices != 3 || uvErr.Values != 4 {
		t.Errorf("got indices=%d values=%d, want 3 and 4", uvErr.Indices, uvErr.Values)
	}
}

func TestDecodeFace_MissingColor(t *testing.T) {
	got, err := decodeFaceLiteral(t, "{1,2,3, uv={0,0,1,1,2,2}}")
	if err != nil {
		t.Fatalf("decodeFace failed: %v", err)
	}
	if got.Color != ColorInvalid {
		t.Errorf("color got %v, want %v", got.Color, ColorInvalid)
	}
	// An absent color still serializes as index 0.
	if s := got.Serialize(); s != "{1,2,3, c=0, uv={0,0,1,1,2,2} }" {
		t.Errorf("Serialize got %q", s)
	}
}

func TestFaceSerialize(t *testing.T) {
	f := Face{
		NoTexture: true,
		Color:     ColorBlack,
		UVMaps: []UVMap{
			{VertexIndex: 0, Coords: Point2D{U: 2, V: 3.5}},
			{VertexIndex: 2, Coords: Point2D{U: 1, V: 3.5}},
			{VertexIndex: 1, Coords: Point2D{U: 1.5, V: 2}},
		},
	}
	want := "{1,3,2, c=0, notex=1, uv={2,3.5,1,3.5,1.5,2} }"
	if got := f.Serialize(); got != want {
		t.Errorf("Serialize got %q, want %q", got, want)
	}
}

func TestFaceVertices_Lenient(t *testing.T) {
	verts := []Point3D{{X: 1}, {Y: 1}}
	f := Face{UVMaps: []UVMap{
		{VertexIndex: 0},
		{VertexIndex: 5}, // out of range, dropped
		{VertexIndex: 1},
	}}
	got := f.Vertices(verts)
	want := []Point3D{{X: 1}, {Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices got %+v, want %+v", got, want)
	}
}

func TestFaceEdges(t *testing.T) {
	verts := []Point3D{{X: 0}, {X: 1}, {X: 1, Y: 1}}
	f := Face{UVMaps: []UVMap{
		{VertexIndex: 0}, {VertexIndex: 1}, {VertexIndex: 2},
	}}
	got := f.Edges(verts)
	if len(got) != 3 {
		t.Fatalf("Edges got %d edges, want 3", len(got))
	}
	closing := Edge{Start: verts[2], End: verts[0]}
	if !got[2].Equal(closing) {
		t.Errorf("closing edge got %+v, want %+v", got[2], closing)
	}
}

func TestFaceEdges_Degenerate(t *testing.T) {
	verts := []Point3D{{X: 0}}
	f := Face{UVMaps: []UVMap{{VertexIndex: 0}, {VertexIndex: 7}}}
	if got := f.Edges(verts); got != nil {
		t.Errorf("Edges with one resolvable corner got %+v, want nil", got)
	}

	// Duplicate consecutive corners collapse, the closing edge stays.
	f = Face{UVMaps: []UVMap{{VertexIndex: 0}, {VertexIndex: 0}}}
	verts = []Point3D{{X: 0}}
	got := f.Edges(verts)
	if len(got) != 1 {
		t.Fatalf("Edges got %d edges, want 1", len(got))
	}
	if got[0].Start != got[0].End {
		t.Errorf("closing edge got %+v", got[0])
	}
}

func TestEdgeEqual(t *testing.T) {
	a := Edge{Start: Point3D{X: 1}, End: Point3D{Y: 1}}
	b := Edge{Start: Point3D{Y: 1}, End: Point3D{X: 1}}
	if !a.Equal(b) {
		t.Error("reversed edge not equal")
	}
	c := Edge{Start: Point3D{X: 1}, End: Point3D{Z: 1}}
	if a.Equal(c) {
		t.Error("distinct edges compared equal")
	}
}
