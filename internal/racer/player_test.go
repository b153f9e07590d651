package racer

import "testing"

func TestPlayerSteer(t *testing.T) {
	tests := []struct {
		name        string
		x           int
		left, right bool
		expected    int
	}{
		{"idle", 270, false, false, 270},
		{"left", 270, true, false, 265},
		{"right", 270, false, true, 275},
		{"both cancel", 270, true, true, 270},
		{"clamp left", 3, true, false, 0},
		{"clamp right", 508, false, true, 510},
		{"at right edge", 510, false, true, 510},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.x, Y: 540, W: 70, H: 70, Step: 5}
			p.Steer(tc.left, tc.right, 580)
			if p.X != tc.expected {
				t.Errorf("X = %d, expected %d", p.X, tc.expected)
			}
			if p.Y != 540 {
				t.Errorf("Y changed to %d", p.Y)
			}
		})
	}
}
