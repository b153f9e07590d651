package racer

// Track is the vertical scroll offset of the road background.
// Renderers tile two copies at Offset() and Offset()-height.
type Track struct {
	offset int
	height int
}

// NewTrack creates a track scrolling over a field of the given height.
func NewTrack(height int) Track {
	return Track{height: height}
}

// Advance scrolls by speed and wraps to exactly 0 once a full screen has
// scrolled past.
func (t *Track) Advance(speed int) {
	t.offset += speed
	if t.offset >= t.height || t.offset < 0 {
		t.offset = 0
	}
}

// Offset returns the current scroll offset in [0, height).
func (t Track) Offset() int {
	return t.offset
}
