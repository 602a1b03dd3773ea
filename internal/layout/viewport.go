package layout

// Viewport math for the pannable, zoomable floor plan. The client
// applies `scale(s) translate(ox, oy)`, so pan deltas measured in
// screen pixels are divided by the current scale before accumulating.

// Zoom bounds.
const (
	MinScale = 0.3
	MaxScale = 3.0
)

// Margin kept around the canvas when fitting it into a container.
const fitMargin = 40

// Viewport is the current scale and pan offset of the floor plan.
type Viewport struct {
	Scale  float64 `json:"scale"`
	Offset Point   `json:"offset"`
}

// FitToContainer computes the viewport that shows the whole venue
// centered inside a container of the given pixel dimensions. The
// scale never exceeds 1 so small venues are not blown up.
func FitToContainer(width, height float64) Viewport {
	scaleX := (width - fitMargin) / VenueWidth
	scaleY := (height - fitMargin) / VenueHeight
	scale := min(scaleX, scaleY, 1)
	return Viewport{
		Scale: scale,
		Offset: Point{
			X: (width - VenueWidth*scale) / 2 / scale,
			Y: (height - VenueHeight*scale) / 2 / scale,
		},
	}
}

// Zoom applies an additive zoom delta to scale, clamped to the
// [MinScale, MaxScale] range.
func Zoom(scale, delta float64) float64 {
	s := scale + delta
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// Pan accumulates a drag delta (in screen pixels) into the offset,
// compensating for the current scale.
func Pan(offset Point, dx, dy, scale float64) Point {
	return Point{
		X: offset.X + dx/scale,
		Y: offset.Y + dy/scale,
	}
}
