package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := Box{X: 100, Y: 200, W: 40, H: 40}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy float64
	}{
		{"inside maps to itself", 120, 220, 120, 220},
		{"left of box", 50, 220, 100, 220},
		{"right of box", 300, 220, 140, 220},
		{"above box", 120, 0, 120, 200},
		{"below box", 120, 500, 120, 240},
		{"top-left diagonal", 0, 0, 100, 200},
		{"bottom-right diagonal", 999, 999, 140, 240},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := b.ClosestPoint(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ClosestPoint(%v, %v) = (%v, %v), expected (%v, %v)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}

	if b.Right() != 140 || b.Bottom() != 240 {
		t.Errorf("Right/Bottom = %v/%v, expected 140/240", b.Right(), b.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
}
