package heightmap

import (
	"testing"

	"slopelight/internal/core"
	"slopelight/internal/core/mocks"
	"slopelight/internal/terrain"

	"go.uber.org/mock/gomock"
)

func rampPath(t *testing.T) *terrain.Path {
	t.Helper()
	path, err := terrain.NewPath([]terrain.Vertex{
		{Index: 0, X: 0, Y: 2},
		{Index: 1, X: 1, Y: 4},
		{Index: 2, X: 2, Y: 6},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestHuesNormaliseY(t *testing.T) {
	got := Hues(rampPath(t))
	want := []float64{0, 0.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hue %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestHuesOnLevelPath(t *testing.T) {
	path, err := terrain.NewPath(terrain.Flat(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, h := range Hues(path) {
		if h != 0 {
			t.Fatalf("hue %d: expected 0 on a level path, got %v", i, h)
		}
	}
}

func TestPaintWritesEveryLED(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, err := New(rampPath(t), Config{Drift: 0.25, Brightness: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Step(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := mocks.NewMockStrip(ctrl)
	gomock.InOrder(
		s.EXPECT().AddHSV(0.0, 0.25, 1.0, 0.5),
		s.EXPECT().AddHSV(1.0, 0.75, 1.0, 0.5),
		s.EXPECT().AddHSV(2.0, 1.25, 1.0, 0.5),
	)
	h.Paint(s)
}

func TestStepRejectsNegativeDelta(t *testing.T) {
	h, err := New(rampPath(t), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Step(-0.1); err == nil {
		t.Fatal("expected an error for a negative delta")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"drift": "0.1", "brightness": "7"})
	if c.Drift != 0.1 || c.Brightness != 1 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["heightmap"]
	if !ok {
		t.Fatal("heightmap is not registered")
	}
	sim, err := f(rampPath(t), nil)
	if err != nil || sim.Name() != "heightmap" {
		t.Fatalf("unexpected factory result %v %v", sim, err)
	}
}
