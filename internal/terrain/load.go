package terrain

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the on-disk heightmap encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

type document struct {
	LEDs []Vertex `json:"leds" msgpack:"leds"`
}

// FormatFor picks the encoding from a file extension.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("terrain: unknown heightmap extension %q", filepath.Ext(name))
	}
}

// Load reads a heightmap file and builds its Path.
func Load(name string) (*Path, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("terrain: open heightmap: %w", err)
	}
	defer f.Close()
	vs, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("terrain: %s: %w", name, err)
	}
	return NewPath(vs)
}

// Decode reads the vertex list from r.
func Decode(r io.Reader, format Format) ([]Vertex, error) {
	var doc document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return doc.LEDs, nil
}

// Encode writes the vertex list to w.
func Encode(w io.Writer, format Format, vs []Vertex) error {
	doc := document{LEDs: vs}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("terrain: unsupported format %q", format)
	}
}

// Save writes the vertex list to name, choosing the format by extension.
func Save(name string, vs []Vertex) error {
	format, err := FormatFor(name)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("terrain: create heightmap: %w", err)
	}
	if err := Encode(f, format, vs); err != nil {
		f.Close()
		return fmt.Errorf("terrain: %s: %w", name, err)
	}
	return f.Close()
}
