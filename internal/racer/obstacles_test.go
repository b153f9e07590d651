package racer

import (
	"testing"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// farAway is a player rect no obstacle can reach.
var farAway = core.NewRect(10000, 10000, 70, 70)

func newTestField(seed int64) *Field {
	f := NewField(seed, config.DefaultRacerConfig().Obstacles)
	f.Spawn()
	return f
}

func TestFieldSpawn(t *testing.T) {
	f := newTestField(1)

	if f.Len() != 6 {
		t.Fatalf("Len() = %d, expected 6", f.Len())
	}
	for i, o := range f.Obstacles() {
		if !o.Active {
			t.Errorf("obstacle %d should be active", i)
		}
		if want := -40 - i*100; o.Y != want {
			t.Errorf("obstacle %d Y = %d, expected %d", i, o.Y, want)
		}
		checkLaneX(t, i, o.X)
	}

	// Respawning replaces the records instead of appending
	f.Spawn()
	if f.Len() != 6 {
		t.Errorf("Len() after respawn = %d, expected 6", f.Len())
	}
}

func checkLaneX(t *testing.T, slot, x int) {
	t.Helper()
	base := 20 + (slot%3)*200
	if x < base || x >= base+100 {
		t.Errorf("slot %d X = %d, expected in [%d, %d)", slot, x, base, base+100)
	}
}

func TestFieldLaneXRange(t *testing.T) {
	f := newTestField(7)
	seen := make(map[int]bool)
	for n := 0; n < 3000; n++ {
		slot := n % 6
		x := f.LaneX(slot)
		checkLaneX(t, slot, x)
		if slot == 0 {
			seen[x-20] = true
		}
	}
	// Jitter should actually vary across the lane
	if len(seen) < 50 {
		t.Errorf("lane 0 jitter produced only %d distinct values", len(seen))
	}
}

func TestFieldUpdateFalls(t *testing.T) {
	f := newTestField(1)
	before := append([]Obstacle(nil), f.Obstacles()...)

	recycled, hit := f.Update(3, 720, farAway)
	if recycled != 0 || hit {
		t.Fatalf("Update() = (%d, %v), expected (0, false)", recycled, hit)
	}
	for i, o := range f.Obstacles() {
		if o.Y != before[i].Y+3 {
			t.Errorf("obstacle %d Y = %d, expected %d", i, o.Y, before[i].Y+3)
		}
		if o.X != before[i].X {
			t.Errorf("obstacle %d X changed while falling", i)
		}
	}
}

func TestFieldRecycle(t *testing.T) {
	tests := []struct {
		name     string
		startY   int
		speed    int
		recycled bool
	}{
		{"lands exactly on the bottom edge", 718, 2, false},
		{"passes the bottom edge", 719, 2, true},
		{"fast speed overshoots", 700, 30, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField(3)
			f.obstacles[4].Y = tc.startY

			recycled, _ := f.Update(tc.speed, 720, farAway)
			o := f.Obstacles()[4]
			if tc.recycled {
				if recycled != 1 {
					t.Errorf("recycled = %d, expected 1", recycled)
				}
				if o.Y != -40 {
					t.Errorf("recycled Y = %d, expected -40", o.Y)
				}
				checkLaneX(t, 4, o.X)
			} else {
				if recycled != 0 {
					t.Errorf("recycled = %d, expected 0", recycled)
				}
				if o.Y != tc.startY+tc.speed {
					t.Errorf("Y = %d, expected %d", o.Y, tc.startY+tc.speed)
				}
			}
		})
	}
}

func TestFieldUpdateNoEarlyExit(t *testing.T) {
	f := newTestField(5)
	player := core.NewRect(100, 540, 70, 70)

	// Slot 0 collides, slot 5 is about to pass the bottom edge
	f.obstacles[0] = Obstacle{X: 110, Y: 548, Active: true}
	f.obstacles[5].Y = 720

	recycled, hit := f.Update(2, 720, player)
	if !hit {
		t.Error("expected a hit from slot 0")
	}
	if recycled != 1 {
		t.Errorf("slots after the hit should still update, recycled = %d", recycled)
	}
	if f.Obstacles()[5].Y != -40 {
		t.Errorf("slot 5 Y = %d, expected -40", f.Obstacles()[5].Y)
	}
}

func TestFieldRecycledObstacleIsTestedAtNewPosition(t *testing.T) {
	f := newTestField(9)
	f.obstacles[0].Y = 720

	// A player sitting right at the spawn height sees the recycled barrier
	player := core.NewRect(0, -60, 580, 40)
	recycled, hit := f.Update(2, 720, player)
	if recycled != 1 || !hit {
		t.Errorf("Update() = (%d, %v), expected (1, true)", recycled, hit)
	}
}

func TestFieldSkipsInactive(t *testing.T) {
	f := newTestField(1)
	f.obstacles[2].Active = false
	y := f.obstacles[2].Y

	f.Update(5, 720, farAway)
	if f.obstacles[2].Y != y {
		t.Error("inactive obstacles should not move")
	}
}

func TestFieldDeterminism(t *testing.T) {
	a := newTestField(1234)
	b := newTestField(1234)
	for n := 0; n < 2000; n++ {
		a.Update(4, 720, farAway)
		b.Update(4, 720, farAway)
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Fatalf("slot %d differs: %+v vs %+v", i, a.Obstacles()[i], b.Obstacles()[i])
		}
	}
}
