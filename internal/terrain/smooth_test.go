package terrain

import (
	"math"
	"slices"
	"testing"
)

func TestSavitzkyGolayPreservesCubicInterior(t *testing.T) {
	ys := make([]float64, 40)
	for i := range ys {
		x := float64(i) / 10
		ys[i] = 0.5*x*x*x - 2*x*x + x + 3
	}
	out, err := SavitzkyGolay(ys, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(ys) {
		t.Fatalf("expected %d samples, got %d", len(ys), len(out))
	}
	for i := 3; i < len(ys)-3; i++ {
		if math.Abs(out[i]-ys[i]) > 1e-9 {
			t.Fatalf("sample %d changed: got %v want %v", i, out[i], ys[i])
		}
	}
}

func TestSavitzkyGolayFlattensNoise(t *testing.T) {
	ys := make([]float64, 60)
	for i := range ys {
		if i%2 == 0 {
			ys[i] = 1
		} else {
			ys[i] = -1
		}
	}
	out, err := SavitzkyGolay(ys, 11, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 10; i < 50; i++ {
		if math.Abs(out[i]) > 0.5 {
			t.Fatalf("sample %d still oscillating: %v", i, out[i])
		}
	}
}

func TestSavitzkyGolayRejectsBadWindows(t *testing.T) {
	ys := make([]float64, 10)
	for _, tc := range []struct{ window, order int }{{4, 2}, {3, 3}, {0, 1}, {21, 3}} {
		if _, err := SavitzkyGolay(ys, tc.window, tc.order); err == nil {
			t.Fatalf("window=%d order=%d: expected an error", tc.window, tc.order)
		}
	}
}

func TestLocalExtremaAreStrict(t *testing.T) {
	ys := []float64{3, 1, 2, 2, 5, 4, 4, 0}
	if got := LocalMinima(ys); !slices.Equal(got, []int{1}) {
		t.Fatalf("unexpected minima %v", got)
	}
	if got := LocalMaxima(ys); !slices.Equal(got, []int{4}) {
		t.Fatalf("unexpected maxima %v", got)
	}
}

func TestFindExtremaOnSineTerrain(t *testing.T) {
	vs := make([]Vertex, 300)
	for i := range vs {
		// one full period: height peaks near 75 and dips near 225
		vs[i] = Vertex{Index: i, X: float64(i), Y: -10 * math.Sin(2*math.Pi*float64(i)/300)}
	}
	p, err := NewPath(vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	valleys, peaks, err := FindExtrema(p, DefaultSmoothWindow, DefaultSmoothOrder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peaks) != 1 || math.Abs(float64(peaks[0]-75)) > 2 {
		t.Fatalf("expected one peak near 75, got %v", peaks)
	}
	if len(valleys) != 1 || math.Abs(float64(valleys[0]-225)) > 2 {
		t.Fatalf("expected one valley near 225, got %v", valleys)
	}
}

func TestFindExtremaShortPath(t *testing.T) {
	p, err := NewPath(Flat(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	valleys, peaks, err := FindExtrema(p, DefaultSmoothWindow, DefaultSmoothOrder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(valleys) != 0 || len(peaks) != 0 {
		t.Fatalf("short path should have no extrema, got %v %v", valleys, peaks)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultGenerateConfig()
	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Generate(cfg)
	if !slices.Equal(a, b) {
		t.Fatal("same config produced different terrain")
	}
	cfg.Seed++
	c, _ := Generate(cfg)
	if slices.Equal(a, c) {
		t.Fatal("different seeds should produce different terrain")
	}
}
