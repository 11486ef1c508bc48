package terrain

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrMalformedGeometry reports vertex data that cannot describe a strip path.
	ErrMalformedGeometry = errors.New("terrain: malformed geometry")
	// ErrIndexOutOfRange reports a tangent lookup outside [0, Len()-2].
	ErrIndexOutOfRange = errors.New("terrain: index out of range")
)

// Vertex is the spatial position of one LED along the strip. Y grows
// downward, as in the images the heightmaps are traced from.
type Vertex struct {
	Index int     `json:"index" msgpack:"index"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
}

// Path is the immutable geometry of a strip. It is safe to share between
// goroutines because nothing mutates it after NewPath returns.
type Path struct {
	vertices []Vertex
	angles   []float64
}

// NewPath validates the vertices and precomputes tangent angles. Vertices may
// be supplied in any order; their indices must cover 0..n-1 exactly once.
func NewPath(vs []Vertex) (*Path, error) {
	if len(vs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 vertices, got %d", ErrMalformedGeometry, len(vs))
	}
	sorted := slices.Clone(vs)
	slices.SortFunc(sorted, func(a, b Vertex) int { return a.Index - b.Index })
	for i, v := range sorted {
		if v.Index != i {
			return nil, fmt.Errorf("%w: expected index %d, found %d", ErrMalformedGeometry, i, v.Index)
		}
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return nil, fmt.Errorf("%w: vertex %d has non-finite coordinates", ErrMalformedGeometry, i)
		}
	}
	angles := make([]float64, len(sorted)-1)
	for i := range angles {
		angles[i] = angleBetween(sorted[i], sorted[i+1])
	}
	return &Path{vertices: sorted, angles: angles}, nil
}

func angleBetween(a, b Vertex) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Len returns the number of vertices (LEDs) on the path.
func (p *Path) Len() int { return len(p.vertices) }

// VertexAt returns the vertex for strip index i.
func (p *Path) VertexAt(i int) (Vertex, bool) {
	if i < 0 || i >= len(p.vertices) {
		return Vertex{}, false
	}
	return p.vertices[i], true
}

// TangentAngle returns the direction in radians from vertex i to vertex i+1.
func (p *Path) TangentAngle(i int) (float64, error) {
	if i < 0 || i >= len(p.angles) {
		return 0, fmt.Errorf("%w: tangent %d on a path of %d vertices", ErrIndexOutOfRange, i, len(p.vertices))
	}
	return p.angles[i], nil
}

// Vertices returns a copy of the vertex list ordered by index.
func (p *Path) Vertices() []Vertex { return slices.Clone(p.vertices) }

// Heights returns the terrain height of every vertex, which is -Y.
func (p *Path) Heights() []float64 {
	out := make([]float64, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = -v.Y
	}
	return out
}

// Bounds returns the bounding box of the path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range p.vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}
