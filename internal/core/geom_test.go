package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "car overlapping barrier",
			a:        NewRect(100, 540, 70, 70),
			b:        NewRect(110, 550, 40, 40),
			expected: true,
		},
		{
			name:     "barrier in another lane",
			a:        NewRect(100, 540, 70, 70),
			b:        NewRect(300, 550, 40, 40),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(100, 540, 70, 70),
			b:        NewRect(110, 400, 40, 40),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 70, 70),
			b:        NewRect(15, 15, 40, 40),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "barrier partly above the top edge",
			a:        NewRect(0, 0, 70, 70),
			b:        NewRect(10, -30, 40, 40),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"origin", NewRect(0, 0, 58, 72), NewRect(0, 0, 8, 2)},
		{"whole field", NewRect(0, 0, 580, 720), NewRect(0, 0, 80, 20)},
		{"tiny rect keeps one cell", NewRect(290, 360, 1, 1), NewRect(40, 10, 1, 1)},
		{"partly above top", NewRect(0, -36, 58, 72), NewRect(0, -1, 8, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Scale(580, 720, 80, 20)
			if got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	if got := NewRect(1, 1, 1, 1).Scale(0, 0, 10, 10); got != (Rect{}) {
		t.Errorf("Scale() on empty field = %+v, expected zero rect", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
