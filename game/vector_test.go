package game

import (
	"math"
	"testing"
)

func TestNormalizeUnitLength(t *testing.T) {
	vectors := []Vec2{
		{1, 0},
		{0, -3},
		{2.5, -7.1},
		{-1000, 0.001},
		{0.0001, 0.0001},
	}
	for _, v := range vectors {
		got := v.Normalize().Length()
		if math.Abs(got-1.0) > 1e-9 {
			t.Errorf("Normalize(%v).Length() = %v, want 1", v, got)
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	got := (Vec2{}).Normalize()
	if got != (Vec2{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", got)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	cases := []struct {
		a, b Vec2
	}{
		{Vec2{0, 0}, Vec2{3, 4}},
		{Vec2{-2, 7}, Vec2{5, -1}},
		{Vec2{1.5, 1.5}, Vec2{1.5, 1.5}},
	}
	for _, c := range cases {
		if d1, d2 := Distance(c.a, c.b), Distance(c.b, c.a); d1 != d2 {
			t.Errorf("Distance(%v,%v)=%v but Distance(%v,%v)=%v", c.a, c.b, d1, c.b, c.a, d2)
		}
	}
	if d := Distance(Vec2{9, -3}, Vec2{9, -3}); d != 0 {
		t.Errorf("Distance(a,a) = %v, want 0", d)
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}
	if got := a.Add(b); got != (Vec2{4, 1}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale = %v", got)
	}
	// operations never mutate their receiver
	if a != (Vec2{1, 2}) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec2{1, 2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	bad := []Vec2{
		{math.NaN(), 0},
		{0, math.Inf(1)},
		{math.Inf(-1), math.NaN()},
	}
	for _, v := range bad {
		if v.IsFinite() {
			t.Errorf("%v reported finite", v)
		}
	}
}

func TestCircleOverlap(t *testing.T) {
	a := &Entity{Pos: Vec2{0, 0}, Radius: 10}
	b := &Entity{Pos: Vec2{24, 0}, Radius: 15}
	if !a.Overlaps(b) {
		t.Error("circles with radii 10+15 at distance 24 should collide")
	}
	b.Pos = Vec2{26, 0}
	if a.Overlaps(b) {
		t.Error("circles with radii 10+15 at distance 26 should not collide")
	}
}
