// Package picocad reads and writes picoCAD project files.
//
// A project file has three sections: a semicolon-separated header line, a
// list of mesh table literals wrapped in braces, and a hex texture grid.
// Model ties the three together and round-trips losslessly through
// Parse and Serialize.
package picocad

import (
	"fmt"
	"strings"
)

// Model is a complete project file.
type Model struct {
	Header Header
	Meshes []Mesh
	Footer Footer
}

// DefaultModel returns an empty project: default header, no meshes and an
// all-black texture.
func DefaultModel() Model {
	return Model{
		Header: DefaultHeader(),
		Footer: NewFooter(),
	}
}

// splitModel cuts the raw text into header line, mesh list and footer.
func splitModel(text string) (header, meshes, footer string, err error) {
	i := strings.Index(text, "\n")
	if i < 0 {
		return "", "", "", &SplitError{Sep: `\n`}
	}
	header, rest := text[:i], text[i+1:]

	j := strings.LastIndex(rest, "%")
	if j < 0 {
		return "", "", "", &SplitError{Sep: "%"}
	}
	return header, rest[:j], rest[j+1:], nil
}

// Parse decodes a full project file.
func Parse(text string) (Model, error) {
	rawHeader, rawMeshes, rawFooter, err := splitModel(text)
	if err != nil {
		return Model{}, fmt.Errorf("failed to split project file: %w", err)
	}

	header, err := ParseHeader(rawHeader)
	if err != nil {
		return Model{}, fmt.Errorf("failed to parse header: %w", err)
	}

	footer, err := ParseFooter(rawFooter)
	if err != nil {
		return Model{}, fmt.Errorf("failed to parse footer: %w", err)
	}

	table, err := EvalTable(rawMeshes)
	if err != nil {
		return Model{}, fmt.Errorf("failed to parse mesh list: %w", err)
	}
	var meshes []Mesh
	for i, v := range table.Seq {
		if v.Kind != KindTable {
			return Model{}, fmt.Errorf("mesh %d: not a table", i+1)
		}
		mesh, err := decodeMesh(v.Table)
		if err != nil {
			return Model{}, fmt.Errorf("mesh %d: %w", i+1, err)
		}
		meshes = append(meshes, mesh)
	}

	return Model{Header: header, Meshes: meshes, Footer: footer}, nil
}

// Serialize writes the project back out. Parsing the result yields the
// same model again.
func (m Model) Serialize() string {
	parts := make([]string, 0, len(m.Meshes))
	for _, mesh := range m.Meshes {
		parts = append(parts, mesh.Serialize())
	}
	return m.Header.Serialize() + "\n{\n" + strings.Join(parts, ",") + "\n}%\n" + m.Footer.Serialize()
}
