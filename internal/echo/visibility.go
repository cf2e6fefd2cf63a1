package echo

import "math"

// Pulse is a single sonar emission expanding from a fixed pixel origin.
// Immutable once recorded; the field drops it when its lifetime ends.
type Pulse struct {
	X, Y      float64 // origin in pixels
	EmittedAt float64 // seconds on the session clock
}

// pulseLifetime is the total seconds a pulse stays active: the reveal
// window plus the time the ring needs to sweep its full radius.
const pulseLifetime = RevealDuration + PingMaxRadius/PingSpeed

// VisibilityField owns the per-cell reveal expiries and the active
// pulse set for one maze. All timestamps are seconds on whatever clock
// the caller advances; the field never reads a real clock itself.
type VisibilityField struct {
	cols, rows   int
	visibleUntil []float64 // row-major; -Inf means never revealed
	pulses       []Pulse
	lastEmit     float64
	emitted      int
}

// NewVisibilityField builds an all-hidden field for a cols x rows grid.
func NewVisibilityField(cols, rows int) *VisibilityField {
	vu := make([]float64, cols*rows)
	for i := range vu {
		vu[i] = math.Inf(-1)
	}
	return &VisibilityField{
		cols:         cols,
		rows:         rows,
		visibleUntil: vu,
		lastEmit:     math.Inf(-1),
	}
}

// Emit requests a pulse at pixel (x, y). Requests inside the cooldown
// window are dropped and report false with no other effect; accepted
// requests record the pulse, bump the usage counter, and report true.
func (v *VisibilityField) Emit(x, y, now float64) bool {
	if now-v.lastEmit < PingCooldown {
		return false
	}
	v.lastEmit = now
	v.emitted++
	v.pulses = append(v.pulses, Pulse{X: x, Y: y, EmittedAt: now})
	return true
}

// Advance drops pulses past their lifetime, then stamps every cell each
// surviving pulse currently covers. Walls are stamped the same as
// floors. A cell keeps the latest expiry any pulse ever gave it, so
// overlapping pings compose and reveal never shortens.
func (v *VisibilityField) Advance(now float64) {
	live := v.pulses[:0]
	for _, p := range v.pulses {
		if now-p.EmittedAt <= pulseLifetime {
			live = append(live, p)
		}
	}
	v.pulses = live

	for _, p := range v.pulses {
		age := now - p.EmittedAt
		radius := age * PingSpeed
		if radius <= 0 {
			continue
		}
		if radius > PingMaxRadius {
			radius = PingMaxRadius
		}

		// Scan only the bounding box of the current ring.
		minCol := max(0, int(math.Floor((p.X-radius)/CellSize)))
		maxCol := min(v.cols-1, int(math.Floor((p.X+radius)/CellSize)))
		minRow := max(0, int(math.Floor((p.Y-radius)/CellSize)))
		maxRow := min(v.rows-1, int(math.Floor((p.Y+radius)/CellSize)))

		until := p.EmittedAt + RevealDuration
		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				cx := float64(col*CellSize + CellSize/2)
				cy := float64(row*CellSize + CellSize/2)
				if math.Hypot(cx-p.X, cy-p.Y) <= radius+revealSlack {
					i := row*v.cols + col
					if until > v.visibleUntil[i] {
						v.visibleUntil[i] = until
					}
				}
			}
		}
	}
}

// IsVisible reports whether the cell at (col, row) is currently
// revealed. Out-of-bounds cells are never visible.
func (v *VisibilityField) IsVisible(col, row int, now float64) bool {
	if col < 0 || col >= v.cols || row < 0 || row >= v.rows {
		return false
	}
	return v.visibleUntil[row*v.cols+col] >= now
}

// Pulses returns the live pulse set for rendering. The slice is owned
// by the field; callers must not hold it across an Advance.
func (v *VisibilityField) Pulses() []Pulse {
	return v.pulses
}

// Emitted returns how many pulses have been accepted since construction.
func (v *VisibilityField) Emitted() int {
	return v.emitted
}

// RingState computes the drawable radius and a 0..1 alpha for a pulse.
// Alpha holds at full while the reveal window lasts, then fades
// linearly to zero over the remaining sweep time.
func RingState(p Pulse, now float64) (radius, alpha float64) {
	age := now - p.EmittedAt
	if age < 0 {
		return 0, 0
	}
	radius = age * PingSpeed
	if radius > PingMaxRadius {
		radius = PingMaxRadius
	}
	alpha = 1.0
	if now > p.EmittedAt+RevealDuration {
		remaining := p.EmittedAt + pulseLifetime - now
		if remaining < 0 {
			remaining = 0
		}
		alpha = remaining / (PingMaxRadius / PingSpeed)
	}
	return radius, alpha
}
