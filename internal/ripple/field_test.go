package ripple

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// manualClock is a settable simulation clock.
type manualClock struct{ now time.Duration }

func (c *manualClock) Now() time.Duration { return c.now }

func newTestField() (*Field, *manualClock) {
	c := &manualClock{}
	return New(WithClock(c.Now)), c
}

func TestAddRippleKeepsTenMostRecent(t *testing.T) {
	f, c := newTestField()
	var ids []uint64
	for i := range 15 {
		c.now = time.Duration(i) * 10 * time.Millisecond
		e, err := f.AddRipple(mgl32.Vec2{float32(i), 0}, 1)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, e.ID)
	}
	if f.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", f.Len(), Capacity)
	}

	live := f.Live()
	for i, e := range live {
		want := ids[len(ids)-1-i]
		if e.ID != want {
			t.Fatalf("Live()[%d].ID = %d, want %d", i, e.ID, want)
		}
	}

	u := f.PackUniforms(c.now)
	for slot := range MaxSlots {
		x := u.Positions[slot][0]
		if x < 5 {
			t.Fatalf("slot %d holds evicted ripple at x=%v", slot, x)
		}
	}

	for i := range 5 {
		for _, e := range live {
			if e.Position[0] == float32(i) {
				t.Fatalf("evicted ripple %d still live", i)
			}
		}
	}
}

func TestAddRippleRejectsBadStrength(t *testing.T) {
	f, _ := newTestField()
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := f.AddRipple(mgl32.Vec2{}, s); !errors.Is(err, ErrInvalidStrength) {
			t.Fatalf("AddRipple(strength=%v) error = %v, want ErrInvalidStrength", s, err)
		}
	}
	if f.Len() != 0 {
		t.Fatalf("rejected ripples were stored: Len() = %d", f.Len())
	}
}

func TestIDsIncreaseInCreationOrder(t *testing.T) {
	f, _ := newTestField()
	var last uint64
	for range 3 {
		e, _ := f.AddRipple(mgl32.Vec2{}, 1)
		if e.ID <= last {
			t.Fatalf("ID %d not greater than %d", e.ID, last)
		}
		last = e.ID
	}
}

func TestOriginScenario(t *testing.T) {
	f, c := newTestField()
	if _, err := f.AddRipple(mgl32.Vec2{0, 0}, 1); err != nil {
		t.Fatal(err)
	}
	// Distance 0 needs no guard: the result must be finite.
	v0 := f.Evaluate(mgl32.Vec2{0, 0}, 0)
	if math.IsNaN(v0) || math.IsInf(v0, 0) {
		t.Fatalf("Evaluate at the ripple centre = %v", v0)
	}

	g, _ := newTestField()
	g.AddRipple(mgl32.Vec2{0, 0}, 2)
	for _, p := range []mgl32.Vec2{{0, 0}, {0.1, 0}, {0.3, 0.2}} {
		for _, now := range []time.Duration{0, 100 * time.Millisecond} {
			a, b := f.Evaluate(p, now), g.Evaluate(p, now)
			if math.Abs(b-2*a) > 1e-12 {
				t.Fatalf("Evaluate(%v, %v) not proportional to strength: %v vs %v", p, now, a, b)
			}
		}
	}

	c.now = 6 * time.Second
	if got := f.Evaluate(mgl32.Vec2{0, 0}, c.now); got != 0 {
		t.Fatalf("Evaluate at 6s = %v, want exactly 0", got)
	}
}

func TestContributionIsZeroFromLifetime(t *testing.T) {
	f, _ := newTestField()
	e, _ := f.AddRipple(mgl32.Vec2{}, 1)
	p := mgl32.Vec2{0.2, 0}
	for _, age := range []time.Duration{DefaultLifetime, DefaultLifetime + time.Millisecond, time.Minute} {
		if got := f.Contribution(e, p, age); got != 0 {
			t.Fatalf("Contribution at age %v = %v, want 0", age, got)
		}
	}
	if got := f.Contribution(e, p, DefaultLifetime-time.Millisecond); got == 0 {
		t.Fatal("Contribution just before lifetime should still be non-zero")
	}
}

func TestContributionBoundedByDecreasingEnvelope(t *testing.T) {
	f, _ := newTestField()
	e, _ := f.AddRipple(mgl32.Vec2{}, 1.5)
	p := mgl32.Vec2{0.25, 0.1}
	d := float64(p.Len())

	prev := math.Inf(1)
	for age := time.Duration(0); age <= 6*time.Second; age += 20 * time.Millisecond {
		env := f.Envelope(e, d, age)
		if env > prev {
			t.Fatalf("envelope increased at age %v: %v > %v", age, env, prev)
		}
		if v := math.Abs(f.Contribution(e, p, age)); v > env+1e-12 {
			t.Fatalf("|contribution| %v exceeds envelope %v at age %v", v, env, age)
		}
		prev = env
	}
	if prev != 0 {
		t.Fatalf("envelope after lifetime = %v, want 0", prev)
	}
}

func TestSimultaneousRipplesSumLinearly(t *testing.T) {
	one, _ := newTestField()
	one.AddRipple(mgl32.Vec2{0.1, 0.1}, 1)
	two, _ := newTestField()
	two.AddRipple(mgl32.Vec2{0.1, 0.1}, 1)
	two.AddRipple(mgl32.Vec2{0.1, 0.1}, 1)

	p := mgl32.Vec2{0.3, -0.2}
	now := 150 * time.Millisecond
	if a, b := one.Evaluate(p, now), two.Evaluate(p, now); math.Abs(b-2*a) > 1e-12 {
		t.Fatalf("two coincident ripples = %v, want %v", b, 2*a)
	}
}

func TestPruneDropsOnlyExpired(t *testing.T) {
	f, c := newTestField()
	f.AddRipple(mgl32.Vec2{}, 1)
	c.now = 2 * time.Second
	f.AddRipple(mgl32.Vec2{}, 1)
	c.now = 4 * time.Second
	f.AddRipple(mgl32.Vec2{}, 1)

	if n := f.Prune(5 * time.Second); n != 1 {
		t.Fatalf("Prune(5s) dropped %d, want 1", n)
	}
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if n := f.Prune(10 * time.Second); n != 2 || f.Len() != 0 {
		t.Fatalf("Prune(10s) dropped %d, Len() = %d", n, f.Len())
	}
}

func TestClear(t *testing.T) {
	f, _ := newTestField()
	f.AddRipple(mgl32.Vec2{}, 1)
	f.Clear()
	if f.Len() != 0 || f.Evaluate(mgl32.Vec2{0.1, 0}, 0) != 0 {
		t.Fatal("Clear left ripples behind")
	}
}

func TestSampleReusesBuffer(t *testing.T) {
	f, _ := newTestField()
	f.AddRipple(mgl32.Vec2{}, 1)

	buf := make([]float64, 0, 64)
	out := f.Sample(buf, 8, 4, 1, 100*time.Millisecond)
	if len(out) != 32 {
		t.Fatalf("len(Sample) = %d, want 32", len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Fatal("Sample allocated although dst had capacity")
	}

	want := f.Evaluate(mgl32.Vec2{float32(cellCenter(3, 8, 1)), float32(cellCenter(2, 4, 1))}, 100*time.Millisecond)
	if got := out[2*8+3]; got != want {
		t.Fatalf("Sample cell (3,2) = %v, want %v", got, want)
	}
}

func TestDefaultClockAdvances(t *testing.T) {
	f := New()
	e, err := f.AddRipple(mgl32.Vec2{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if e.CreatedAt < 0 {
		t.Fatalf("CreatedAt = %v, want non-negative", e.CreatedAt)
	}
}
