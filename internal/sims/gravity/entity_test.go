package gravity

import (
	"errors"
	"math"
	"testing"

	"slopelight/internal/core"
	"slopelight/internal/core/mocks"
	"slopelight/internal/terrain"

	"go.uber.org/mock/gomock"
)

func flatEnv(t *testing.T, n int) *Env {
	t.Helper()
	path, err := terrain.NewPath(terrain.Flat(n))
	if err != nil {
		t.Fatalf("flat path: %v", err)
	}
	cfg := DefaultConfig()
	return &Env{Path: path, Physics: cfg.Physics, Look: cfg.Look, Params: cfg.Params}
}

func rollingParticle(pos, v, lifetime float64) *Particle {
	return NewParticle(Body{Position: pos, Velocity: v, Hue: 0.3, Mass: 1, Radius: 1, TTL: 2}, lifetime)
}

func TestFlatPathDecaysByDragOnlyAndExpires(t *testing.T) {
	env := flatEnv(t, 300)
	const dt = 0.05
	p := rollingParticle(150, 1, 1000)

	restTick, deadTick := -1, -1
	for tick := 1; tick <= 400; tick++ {
		before := p.Velocity
		if err := p.Tick(dt, env); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		want := before - env.Physics.AirResistance/env.Physics.ReferenceMass*before*dt
		if math.Abs(p.Velocity-want) > 1e-12 {
			t.Fatalf("tick %d: slope contributed acceleration, v=%v want %v", tick, p.Velocity, want)
		}
		if restTick < 0 && math.Abs(p.Velocity) < env.Physics.RestingThreshold {
			restTick = tick
		}
		if !p.Alive(env.Path.Len()) {
			deadTick = tick
			break
		}
	}
	if restTick < 0 || deadTick < 0 {
		t.Fatalf("particle never rested (%d) or died (%d)", restTick, deadTick)
	}
	elapsed := float64(deadTick-restTick) * dt
	if elapsed > env.Physics.DefaultTTL+dt+1e-9 {
		t.Fatalf("particle outlived its resting TTL: %.2fs after resting", elapsed)
	}
	if elapsed < env.Physics.DefaultTTL-dt-1e-9 {
		t.Fatalf("particle expired too early: %.2fs after resting", elapsed)
	}
}

func TestMovingParticleKeepsResettingTTL(t *testing.T) {
	env := flatEnv(t, 300)
	p := rollingParticle(10, 5, 1000)
	p.TTL = 0.5
	if err := p.Tick(0.01, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TTL != env.Physics.DefaultTTL {
		t.Fatalf("expected TTL reset to %v, got %v", env.Physics.DefaultTTL, p.TTL)
	}
}

func TestSlopeAccelerationFollowsMassSign(t *testing.T) {
	// y grows downward, so this path descends towards higher indices.
	vs := make([]terrain.Vertex, 20)
	for i := range vs {
		vs[i] = terrain.Vertex{Index: i, X: float64(i), Y: float64(i)}
	}
	path, err := terrain.NewPath(vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := DefaultConfig()
	env := &Env{Path: path, Physics: cfg.Physics, Look: cfg.Look, Params: cfg.Params}

	heavy := NewParticle(Body{Position: 10, Mass: 0.5, TTL: 2}, 10)
	light := NewParticle(Body{Position: 10, Mass: -0.1, TTL: 2}, 10)
	if err := heavy.Tick(0.05, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := light.Tick(0.05, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 9.81 * 0.5 * math.Sin(math.Pi/4) * 0.05
	if math.Abs(heavy.Velocity-want) > 1e-12 {
		t.Fatalf("expected v=%v, got %v", want, heavy.Velocity)
	}
	if heavy.Position <= 10 || light.Position >= 10 {
		t.Fatalf("positive mass must roll downhill and negative uphill: %v %v", heavy.Position, light.Position)
	}
}

func TestHistoryIsBoundedAndChronological(t *testing.T) {
	env := flatEnv(t, 300)
	p := rollingParticle(5, 2, 1000)
	for tick := 0; tick < 80; tick++ {
		if err := p.Tick(0.02, env); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		if p.History.Len() > HistoryCap {
			t.Fatalf("history grew to %d", p.History.Len())
		}
	}
	got := p.History.Positions()
	if len(got) != HistoryCap {
		t.Fatalf("expected a full history, got %d entries", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("history out of order at %d: %v", i, got)
		}
	}
	if got[len(got)-1] != p.Position {
		t.Fatalf("newest history entry %v differs from position %v", got[len(got)-1], p.Position)
	}
}

func TestPositionWrapsAtTickStart(t *testing.T) {
	env := flatEnv(t, 300)
	low := rollingParticle(-0.5, 0, 10)
	high := rollingParticle(299.2, 0, 10)
	if err := low.Tick(0, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := high.Tick(0, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if low.Position != 298 || high.Position != 1 {
		t.Fatalf("unexpected wrap targets %v %v", low.Position, high.Position)
	}
}

func TestInvalidStateIsReported(t *testing.T) {
	env := flatEnv(t, 300)
	nan := rollingParticle(math.NaN(), 0, 10)
	if err := nan.Tick(0.05, env); !errors.Is(err, ErrInvalidSimulationState) {
		t.Fatalf("expected ErrInvalidSimulationState, got %v", err)
	}

	runaway := rollingParticle(10, math.MaxFloat64, 10)
	if err := runaway.Tick(1, env); !errors.Is(err, ErrInvalidSimulationState) {
		t.Fatalf("expected ErrInvalidSimulationState for overflow, got %v", err)
	}
	if runaway.Position != 10 {
		t.Fatalf("rejected update must not be applied, position=%v", runaway.Position)
	}

	short := flatEnv(t, 2)
	p := rollingParticle(1.5, 0, 10)
	if err := p.Tick(0.05, short); !errors.Is(err, ErrInvalidSimulationState) {
		t.Fatalf("expected ErrInvalidSimulationState on a 2 LED path, got %v", err)
	}
}

func TestLauncherFiresSymmetricPair(t *testing.T) {
	env := flatEnv(t, 300)
	rng := core.NewRNG(3)
	l := &Launcher{
		Body:        Body{Position: 42, Hue: 2.0 / 3, Mass: -0.1, Radius: -0.003},
		Cooldown:    0,
		FireRate:    1.2,
		LaunchSpeed: 2,
		ParticleTTL: 1,
	}
	if err := l.Tick(0.05, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	born := l.Spawn(rng, env)
	if len(born) != 2 {
		t.Fatalf("expected 2 particles, got %d", len(born))
	}
	a, b := born[0].State(), born[1].State()
	if a.Velocity != -b.Velocity || a.Velocity == 0 {
		t.Fatalf("expected opposite velocities, got %v and %v", a.Velocity, b.Velocity)
	}
	if math.Abs(a.Velocity) < 1 || math.Abs(a.Velocity) >= 2 {
		t.Fatalf("launch speed %v outside [1,2)", a.Velocity)
	}
	for _, e := range born {
		s := e.State()
		if e.Kind() != KindParticle || s.Hue != l.Hue || s.Mass != l.Mass || s.Radius != l.Radius || s.Position != l.Position {
			t.Fatalf("spawned entity does not inherit launcher state: %v", e)
		}
	}
	if l.Cooldown <= 0 || l.Cooldown < 0.6 || l.Cooldown >= 1.2 {
		t.Fatalf("cooldown %v outside [0.6,1.2)", l.Cooldown)
	}
	if again := l.Spawn(rng, env); len(again) != 0 {
		t.Fatalf("launcher fired twice without cooling down")
	}
	if !l.Alive(0) {
		t.Fatal("launchers never die")
	}
}

func TestLauncherPaintsFixedMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := flatEnv(t, 300)
	s := mocks.NewMockStrip(ctrl)
	s.EXPECT().AddHSV(10.0, 2.0/3, 1.0, env.Look.LauncherBrightness).Times(1)

	l := &Launcher{Body: Body{Position: 10, Hue: 2.0 / 3}}
	l.Paint(s, env)
}

func TestParticlePaintsHeadAndStridedTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := flatEnv(t, 300)
	p := rollingParticle(20, 2, 1)
	for i := 0; i < 12; i++ {
		p.History.Push(float64(i))
	}
	s := mocks.NewMockStrip(ctrl)
	s.EXPECT().AddHSV(20.0, 0.3, 1.0, 1.0).Times(1)
	for _, i := range []int{0, 5, 10} {
		s.EXPECT().AddHSV(float64(i), 0.3, 1.0, env.Look.TrailBrightness/12*float64(i)).Times(1)
	}
	p.Paint(s, env)
}

func TestParticleBrightnessHasFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := flatEnv(t, 300)
	p := rollingParticle(20, 0, 1)
	p.Lifetime = 0.01
	s := mocks.NewMockStrip(ctrl)
	s.EXPECT().AddHSV(20.0, 0.3, 1.0, env.Look.MinBrightness).Times(1)
	p.Paint(s, env)
}

func TestDeadParticleBurstsIntoDebrisOnce(t *testing.T) {
	env := flatEnv(t, 300)
	env.Params.DebrisPerDeath = 3
	rng := core.NewRNG(9)

	p := rollingParticle(100, 1, 0.01)
	if err := p.Tick(0.05, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Alive(env.Path.Len()) {
		t.Fatal("particle should have exhausted its lifetime")
	}
	debris := p.Spawn(rng, env)
	if len(debris) != 3 {
		t.Fatalf("expected 3 debris, got %d", len(debris))
	}
	for _, d := range debris {
		if d.Kind() != KindDebris || d.State().Position != p.Position || d.State().Hue != p.Hue {
			t.Fatalf("unexpected debris %v", d)
		}
		if len(d.Spawn(rng, env)) != 0 {
			t.Fatal("debris must not spawn")
		}
	}
	if again := p.Spawn(rng, env); len(again) != 0 {
		t.Fatal("particle burst twice")
	}

	gone := rollingParticle(298.5, 50, 10)
	if err := gone.Tick(0.05, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gone.Alive(env.Path.Len()) {
		t.Fatal("particle should have left the strip")
	}
	if n := len(gone.Spawn(rng, env)); n != 0 {
		t.Fatalf("off-strip particle burst into %d debris", n)
	}
}

func TestDebrisFadesAndExpires(t *testing.T) {
	env := flatEnv(t, 300)
	d := NewDebris(Body{Position: 50, Velocity: 0.5, TTL: 2}, env.Params.DebrisTTL)
	prev := d.Brightness
	ticks := 0
	for d.Alive(env.Path.Len()) {
		if err := d.Tick(0.05, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Brightness >= prev {
			t.Fatalf("debris did not fade: %v -> %v", prev, d.Brightness)
		}
		prev = d.Brightness
		ticks++
		if ticks > 100 {
			t.Fatal("debris never expired")
		}
	}
	if float64(ticks)*0.05 > env.Params.DebrisTTL+0.05+1e-9 {
		t.Fatalf("debris lived %d ticks", ticks)
	}
}
