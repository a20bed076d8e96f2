package defense

import "math"

// Background is the scrolling corridor strip behind the playfield.
type Background struct {
	Offset      float64
	ScrollSpeed float64
	StripHeight float64
}

// Update scrolls the strip, wrapping at its height.
func (b *Background) Update() {
	if b.StripHeight <= 0 {
		return
	}
	b.Offset = math.Mod(b.Offset+b.ScrollSpeed, b.StripHeight)
}

// Reset returns the strip to its starting position.
func (b *Background) Reset() {
	b.Offset = 0
}
