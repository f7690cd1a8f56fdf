package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	got := Vec2{3, 4}.Length()
	if got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2ApproxEqual(t *testing.T) {
	a := Vec2{0.55, -1.1}
	if !a.ApproxEqual(Vec2{0.5500001, -1.1000001}, 1e-5) {
		t.Error("expected values within epsilon to compare equal")
	}
	if a.ApproxEqual(Vec2{0.56, -1.1}, 1e-5) {
		t.Error("expected values outside epsilon to differ")
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{0, 3, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}
