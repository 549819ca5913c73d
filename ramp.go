package bpx

import "sort"

// Stop is a control point of a ColorRamp at a normalized position in [0, 1].
type Stop struct {
	Color    Color
	Position float64
}

// ColorRamp interpolates colors between sorted control points.
type ColorRamp struct {
	stops []Stop
}

// NewColorRamp builds a ramp from the given stops. At least two stops are
// required; positions are clamped to [0, 1] and kept in ascending order.
// Stops sharing a position collapse to the last one given, so the resulting
// ramp can hold fewer control points than were passed in.
func NewColorRamp(stops ...Stop) (*ColorRamp, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}
	r := &ColorRamp{}
	for _, s := range stops {
		r.Add(s.Color, s.Position)
	}
	return r, nil
}

// NewColorRamp2 builds a two-stop ramp from start at 0 to end at 1.
func NewColorRamp2(start, end Color) *ColorRamp {
	return &ColorRamp{stops: []Stop{
		{Color: start, Position: 0},
		{Color: end, Position: 1},
	}}
}

// Add inserts a control point, keeping the stops sorted by position. The
// position is clamped to [0, 1]; adding at an existing position replaces
// that stop's color.
func (r *ColorRamp) Add(c Color, position float64) {
	position = clamp01f(position)
	i := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].Position >= position
	})
	if i < len(r.stops) && r.stops[i].Position == position {
		r.stops[i].Color = c
		return
	}
	r.stops = append(r.stops, Stop{})
	copy(r.stops[i+1:], r.stops[i:])
	r.stops[i] = Stop{Color: c, Position: position}
}

// Stops returns a copy of the control points in ascending position order.
func (r *ColorRamp) Stops() []Stop {
	out := make([]Stop, len(r.stops))
	copy(out, r.stops)
	return out
}

// Get returns the interpolated color at t, clamped to [0, 1]. Positions
// outside the first and last stop return the boundary color.
func (r *ColorRamp) Get(t float64) Color {
	if len(r.stops) == 0 {
		return Black
	}

	t = clamp01f(t)

	if t <= r.stops[0].Position {
		return r.stops[0].Color
	}
	last := r.stops[len(r.stops)-1]
	if t >= last.Position {
		return last.Color
	}

	i := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].Position >= t
	})
	if i == len(r.stops) {
		// t is NaN; every comparison above was false.
		return last.Color
	}
	prev, next := r.stops[i-1], r.stops[i]

	return Lerp(prev.Color, next.Color, (t-prev.Position)/(next.Position-prev.Position))
}
