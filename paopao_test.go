package paopao

import (
	"math/rand/v2"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	cases := []struct {
		x, y float64
		want bool
	}{
		{50, 40, true},
		{10, 20, true},   // top-left corner is inside
		{110, 70, true},  // bottom-right corner is inside
		{9.9, 40, false},
		{50, 70.1, false},
		{-5, -5, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{Min: 5, Max: 10}
	for i := 0; i < 100; i++ {
		if v := r.Random(); v < 5 || v > 10 {
			t.Fatalf("Random() = %v, want within [5, 10]", v)
		}
	}
}

func TestRangeRandomDegenerate(t *testing.T) {
	r := Range{Min: 7, Max: 7}
	if v := r.Random(); v != 7 {
		t.Errorf("Random() = %v for a degenerate range, want 7", v)
	}
}

func TestRangeRandomInDeterministic(t *testing.T) {
	r := Range{Min: 0, Max: 100}
	a := r.randomIn(rand.New(rand.NewPCG(3, 5)))
	b := r.randomIn(rand.New(rand.NewPCG(3, 5)))
	if a != b {
		t.Errorf("randomIn diverged for the same seed: %v vs %v", a, b)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := clamp(-1, 0, 10); got != 0 {
		t.Errorf("clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := clamp(11, 0, 10); got != 10 {
		t.Errorf("clamp(11, 0, 10) = %v, want 10", got)
	}
}

func TestLerp(t *testing.T) {
	if got := lerp(0, 10, 0.5); got != 5 {
		t.Errorf("lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := lerp(3, 3, 0.7); got != 3 {
		t.Errorf("lerp(3, 3, 0.7) = %v, want 3", got)
	}
	if got := lerp(0, 10, 0); got != 0 {
		t.Errorf("lerp(0, 10, 0) = %v, want 0", got)
	}
	if got := lerp(0, 10, 1); got != 10 {
		t.Errorf("lerp(0, 10, 1) = %v, want 10", got)
	}
}

func TestDist(t *testing.T) {
	if got := dist(Vec2{X: 0, Y: 0}, Vec2{X: 3, Y: 4}); got != 5 {
		t.Errorf("dist = %v, want 5", got)
	}
	if got := dist(Vec2{X: 7, Y: 7}, Vec2{X: 7, Y: 7}); got != 0 {
		t.Errorf("dist of coincident points = %v, want 0", got)
	}
}

func TestThemeString(t *testing.T) {
	cases := []struct {
		theme Theme
		want  string
	}{
		{ThemeOcean, "ocean"},
		{ThemeMeadow, "meadow"},
		{ThemeSunset, "sunset"},
		{ThemeEmber, "ember"},
		{ThemeGlacier, "glacier"},
		{ThemeAurora, "aurora"},
		{themeCount, "unknown"},
	}
	for _, c := range cases {
		if got := c.theme.String(); got != c.want {
			t.Errorf("Theme(%d).String() = %q, want %q", c.theme, got, c.want)
		}
	}
}

func TestElementString(t *testing.T) {
	if ElementWater.String() != "water" || ElementFire.String() != "fire" || ElementIce.String() != "ice" {
		t.Error("element names wrong")
	}
}
