package picocad

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testModelText() string {
	return "picocad;cube;16;1;0\n{\n" + testCubeMesh + "\n}%\n" + solidFooterText('0')
}

func TestParseModel(t *testing.T) {
	m, err := Parse(testModelText())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Header.Name != "cube" {
		t.Errorf("name got %q, want %q", m.Header.Name, "cube")
	}
	if len(m.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(m.Meshes))
	}
	if m.Meshes[0].Name != "cube" {
		t.Errorf("mesh name got %q", m.Meshes[0].Name)
	}
	if !m.Footer.IsSolid() {
		t.Error("footer should be solid black")
	}
}

func TestModelRoundTrip(t *testing.T) {
	text := testModelText()
	m, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := m.Serialize(); got != text {
		t.Error("Serialize does not reproduce the input")
	}

	// And the model survives a second trip structurally.
	again, err := Parse(m.Serialize())
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}
	if !reflect.DeepEqual(m, again) {
		t.Error("model changed across a round trip")
	}
}

func TestParseModel_SplitErrors(t *testing.T) {
	var splitErr *SplitError
	_, err := Parse("no newline at all")
	if !errors.As(err, &splitErr) || splitErr.Sep != `\n` {
		t.Errorf("missing newline got %v", err)
	}

	_, err = Parse("picocad;m;16;1;0\nno percent here")
	if !errors.As(err, &splitErr) || splitErr.Sep != "%" {
		t.Errorf("missing percent got %v", err)
	}
}

func TestParseModel_MeshError(t *testing.T) {
	text := "picocad;m;16;1;0\n{\n{ name='ok', pos={0,0,0}, rot={0,0,0}, v={}, f={} },\n{ pos={0,0,0} }\n}%\n" + solidFooterText('0')
	_, err := Parse(text)
	if err == nil {
		t.Fatal("Parse accepted a malformed mesh")
	}
	if !strings.Contains(err.Error(), "mesh 2") {
		t.Errorf("error does not name the failing mesh: %v", err)
	}
}

func TestParseModel_Minimal(t *testing.T) {
	text := "picocad;unnamed;16;1;0\n" +
		"{\n{ name='cube', pos={0,0,0}, rot={0,0,0}, v={ {-0.5,-0.5,-0.5},{0.5,-0.5,-0.5} }, f={ {1,2, c=11, uv={0,0,1,0} } } }\n}%\n" +
		solidFooterText('0')

	m, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Header.Name != "unnamed" {
		t.Errorf("name got %q, want %q", m.Header.Name, "unnamed")
	}
	if len(m.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(m.Meshes))
	}
	mesh := m.Meshes[0]
	if len(mesh.Vertices) != 2 {
		t.Errorf("got %d vertices, want 2", len(mesh.Vertices))
	}
	if len(mesh.Faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(mesh.Faces))
	}
	if got := mesh.Faces[0].Color.Index(); got != 11 {
		t.Errorf("face color index got %d, want 11", got)
	}
	if !m.Footer.IsSolid() {
		t.Error("footer should be solid")
	}
}

func TestDefaultModel(t *testing.T) {
	m := DefaultModel()
	text := m.Serialize()

	again, err := Parse(text)
	if err != nil {
		t.Fatalf("default model does not re-parse: %v", err)
	}
	if again.Header != DefaultHeader() {
		t.Errorf("header got %+v", again.Header)
	}
	if len(again.Meshes) != 0 {
		t.Errorf("got %d meshes, want 0", len(again.Meshes))
	}
}
