package racer

import "testing"

func TestTrackAdvance(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		speed    int
		expected int
	}{
		{"normal scroll", 100, 2, 102},
		{"just below wrap", 717, 2, 719},
		{"reaches height", 718, 2, 0},
		{"passes height", 719, 5, 0},
		{"zero speed", 300, 0, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTrack(720)
			tr.offset = tc.start
			tr.Advance(tc.speed)
			if tr.Offset() != tc.expected {
				t.Errorf("Offset() = %d, expected %d", tr.Offset(), tc.expected)
			}
		})
	}
}

func TestTrackStaysInRange(t *testing.T) {
	tr := NewTrack(720)
	for speed := 1; speed < 40; speed++ {
		for i := 0; i < 500; i++ {
			tr.Advance(speed)
			if o := tr.Offset(); o < 0 || o >= 720 {
				t.Fatalf("offset %d out of [0, 720) at speed %d", o, speed)
			}
		}
	}
}
