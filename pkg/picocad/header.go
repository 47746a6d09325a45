package picocad

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier is the magic token every project file starts with.
const Identifier = "picocad"

// Header is the single settings line at the top of a project file:
// identifier, project name, zoom level at last save, background color and
// the color rendered as transparent on textured faces.
type Header struct {
	Identifier string
	Name       string
	Zoom       int
	Background Color
	Alpha      Color
}

// DefaultHeader returns the header picoCAD writes for a fresh project:
// "picocad;unnamed;16;1;0".
func DefaultHeader() Header {
	return Header{
		Identifier: Identifier,
		Name:       "unnamed",
		Zoom:       16,
		Background: ColorDarkBlue,
		Alpha:      ColorBlack,
	}
}

// ParseHeader parses the ';'-separated settings line.
func ParseHeader(line string) (Header, error) {
	fields := strings.SplitN(strings.TrimSpace(line), ";", 5)

	if len(fields) != 5 {
		return Header{}, &HeaderLengthError{Fields: len(fields)}
	}
	if fields[0] != Identifier {
		return Header{}, ErrIdentifier
	}

	zoom, err := strconv.ParseUint(fields[2], 10, 31)
	if err != nil {
		return Header{}, &FieldError{Scope: "header", Field: "zoom"}
	}

	bg, err := strconv.Atoi(fields[3])
	if err != nil {
		return Header{}, &FieldError{Scope: "header", Field: "background"}
	}

	alpha, err := strconv.Atoi(fields[4])
	if err != nil {
		return Header{}, &FieldError{Scope: "header", Field: "alpha"}
	}

	return Header{
		Identifier: fields[0],
		Name:       fields[1],
		Zoom:       int(zoom),
		Background: ColorFromIndex(bg),
		Alpha:      ColorFromIndex(alpha),
	}, nil
}

// Serialize emits the settings line without a trailing newline.
func (h Header) Serialize() string {
	return fmt.Sprintf("%s;%s;%d;%d;%d",
		h.Identifier, h.Name, h.Zoom, h.Background.Index(), h.Alpha.Index())
}
