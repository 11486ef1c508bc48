package terrain

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPathRejectsMalformedGeometry(t *testing.T) {
	cases := map[string][]Vertex{
		"empty":      nil,
		"single":     {{Index: 0}},
		"gap":        {{Index: 0}, {Index: 1}, {Index: 3}},
		"duplicate":  {{Index: 0}, {Index: 1}, {Index: 1}},
		"offset":     {{Index: 1}, {Index: 2}},
		"nan":        {{Index: 0}, {Index: 1, X: math.NaN()}},
		"negative":   {{Index: -1}, {Index: 0}},
		"infinite y": {{Index: 0, Y: math.Inf(1)}, {Index: 1}},
	}
	for name, vs := range cases {
		if _, err := NewPath(vs); !errors.Is(err, ErrMalformedGeometry) {
			t.Fatalf("%s: expected ErrMalformedGeometry, got %v", name, err)
		}
	}
}

func TestNewPathSortsByIndex(t *testing.T) {
	p, err := NewPath([]Vertex{{Index: 2, X: 2}, {Index: 0, X: 0}, {Index: 1, X: 1, Y: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("expected 3 vertices, got %d", p.Len())
	}
	for i := 0; i < p.Len(); i++ {
		v, ok := p.VertexAt(i)
		if !ok || v.Index != i {
			t.Fatalf("vertex %d out of order: %+v", i, v)
		}
	}
	if got, _ := p.TangentAngle(0); math.Abs(got-math.Pi/4) > 1e-12 {
		t.Fatalf("expected 45 degree tangent, got %v", got)
	}
	if got, _ := p.TangentAngle(1); math.Abs(got+math.Pi/4) > 1e-12 {
		t.Fatalf("expected -45 degree tangent, got %v", got)
	}
}

func TestTangentAngleBounds(t *testing.T) {
	p, err := NewPath(Flat(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, i := range []int{-1, 3, 4} {
		if _, err := p.TangentAngle(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("tangent %d: expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if _, ok := p.VertexAt(4); ok {
		t.Fatal("vertex beyond the path must not be found")
	}
}

func TestTangentRoundTripThroughFile(t *testing.T) {
	cfg := DefaultGenerateConfig()
	cfg.Count = 120
	raw, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	dir := t.TempDir()
	for _, name := range []string{"strip.json", "strip.msgpack"} {
		file := filepath.Join(dir, name)
		if err := Save(file, raw); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		p, err := Load(file)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if p.Len() != len(raw) {
			t.Fatalf("%s: expected %d vertices, got %d", name, len(raw), p.Len())
		}
		for i := 0; i < len(raw)-1; i++ {
			want := math.Atan2(raw[i+1].Y-raw[i].Y, raw[i+1].X-raw[i].X)
			got, err := p.TangentAngle(i)
			if err != nil {
				t.Fatalf("%s: tangent %d: %v", name, i, err)
			}
			if got != want {
				t.Fatalf("%s: tangent %d drifted: got %v want %v", name, i, got, want)
			}
		}
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	file := filepath.Join(t.TempDir(), "strip.csv")
	if err := os.WriteFile(file, []byte("0,0,0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatal("expected an error for an unknown extension")
	}
}

func TestLoadReportsMalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "strip.json")
	doc := `{"leds":[{"index":0,"x":0,"y":0},{"index":2,"x":1,"y":0}]}`
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); !errors.Is(err, ErrMalformedGeometry) {
		t.Fatalf("expected ErrMalformedGeometry, got %v", err)
	}
}

func TestHeightsInvertY(t *testing.T) {
	p, err := NewPath([]Vertex{{Index: 0, Y: 2}, {Index: 1, Y: -3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := p.Heights()
	if h[0] != -2 || h[1] != 3 {
		t.Fatalf("unexpected heights %v", h)
	}
}
