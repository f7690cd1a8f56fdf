package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the fourth column
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}

	got := m.TransformVec3(Vec3{1, 2, 3})
	if got != (Vec3{6, 12, 18}) {
		t.Errorf("TransformVec3: got %v, want (6, 12, 18)", got)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	// A plane normal (+Z) rotated by -90 degrees about X points up (+Y).
	m := RotateX(float32(-math.Pi / 2))
	got := m.TransformVec3(Vec3{0, 0, 1})

	if abs(got.X) > 0.001 || abs(got.Y-1) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("RotateX(-90): got %v, want (0, 1, 0)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestFromEulerZero(t *testing.T) {
	if FromEuler(Vec3{}) != Identity() {
		t.Error("FromEuler(0) should be identity")
	}
}

func TestFromEulerSingleAxis(t *testing.T) {
	angle := float32(0.7)
	got := FromEuler(Vec3{X: angle})
	want := RotateX(angle)

	for i := range got {
		if abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("FromEuler X only, element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformVec3(eye)
	if got.Length() > 0.0001 {
		t.Errorf("LookAt should map the eye to the origin, got %v", got)
	}
}

func TestNormalMatrix(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want [9]float32
	}{
		{
			name: "translation is ignored",
			m:    Translate(3, 4, 5),
			want: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		},
		{
			name: "non-uniform scale inverts",
			m: Mat4{
				2, 0, 0, 0,
				0, 4, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 1,
			},
			want: [9]float32{0.5, 0, 0, 0, 0.25, 0, 0, 0, 1},
		},
		{
			name: "singular falls back to identity",
			m:    Mat4{},
			want: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.NormalMatrix()
			for i := range got {
				if abs(got[i]-tt.want[i]) > 1e-6 {
					t.Fatalf("element %d: got %f, want %f", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalMatrixOfRotationIsRotation(t *testing.T) {
	r := RotateZ(0.3)
	n := r.NormalMatrix()
	upper := [9]float32{r[0], r[1], r[2], r[4], r[5], r[6], r[8], r[9], r[10]}

	for i := range n {
		if abs(n[i]-upper[i]) > 1e-5 {
			t.Fatalf("element %d: got %f, want %f", i, n[i], upper[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
