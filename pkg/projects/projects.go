// Package projects locates and loads picoCAD project files from the
// pico-8 application data directory.
package projects

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"picocad-tools/pkg/picocad"
)

// Extension is the file suffix picoCAD saves with.
const Extension = ".txt"

// Dir returns the platform's picoCAD save directory. The directory is not
// required to exist.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "pico-8", "appdata", "picocad"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "pico-8", "appdata", "picocad"), nil
	default:
		return filepath.Join(home, ".lexaloffle", "pico-8", "appdata", "picocad"), nil
	}
}

// List returns the project names found in the save directory, sorted and
// without the file extension.
func List() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return ListDir(dir)
}

// ListDir returns the project names found in an arbitrary directory.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the full save path for a project name.
func Path(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+Extension), nil
}

// Load reads a project by name from the save directory.
func Load(name string) (string, error) {
	p, err := Path(name)
	if err != nil {
		return "", err
	}
	return LoadPath(p)
}

// LoadPath reads a project file. Files picoCAD wrote on older Windows
// installs can carry cp1252 names, so non-utf8 content is decoded as
// Windows-1252 instead of being rejected.
func LoadPath(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read project file: %w", err)
	}
	if !utf8.Valid(raw) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("failed to decode project file: %w", err)
		}
		raw = decoded
	}
	return string(raw), nil
}

// Write saves project text under a name in the save directory.
func Write(name, text string) error {
	p, err := Path(name)
	if err != nil {
		return err
	}
	return WritePath(p, text)
}

// WritePath saves project text to a file.
func WritePath(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadModel reads and parses a project by name.
func LoadModel(name string) (picocad.Model, error) {
	text, err := Load(name)
	if err != nil {
		return picocad.Model{}, err
	}
	return picocad.Parse(text)
}

// LoadModelPath reads and parses a project file.
func LoadModelPath(path string) (picocad.Model, error) {
	text, err := LoadPath(path)
	if err != nil {
		return picocad.Model{}, err
	}
	return picocad.Parse(text)
}

// WriteModel serializes and saves a model under a name.
func WriteModel(name string, m picocad.Model) error {
	return Write(name, m.Serialize())
}

// WriteModelPath serializes and saves a model to a file.
func WriteModelPath(path string, m picocad.Model) error {
	return WritePath(path, m.Serialize())
}
