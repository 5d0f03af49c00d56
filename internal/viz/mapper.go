package viz

import "math"

// Mapper converts physics coordinates (meters, y up) to surface
// coordinates (pixels or sub-pixels, y down). It is a value computed
// from its inputs with no hidden state, so it can be rebuilt every
// frame or on every resize.
type Mapper struct {
	MaxX, MaxY float64
	Scale      float64
	Padding    float64
	Width      float64
	Height     float64
}

// NewMapper fits the physics extents into a surface of the given size,
// reserving padding on every side. The smaller of the two axis scales
// is used for both so the flight is not distorted.
func NewMapper(maxX, maxY, width, height, padding float64) Mapper {
	m := Mapper{
		MaxX:    maxX,
		MaxY:    maxY,
		Padding: padding,
		Width:   width,
		Height:  height,
	}

	usableW := width - 2*padding
	usableH := height - 2*padding
	if maxX <= 0 || maxY <= 0 || usableW <= 0 || usableH <= 0 {
		return m
	}

	m.Scale = math.Min(usableW/maxX, usableH/maxY)
	return m
}

// Map translates a physics point to surface coordinates. The origin
// lands at (padding, height-padding); physics up is surface up.
func (m Mapper) Map(x, y float64) (px, py float64) {
	return m.Padding + x*m.Scale, (m.Height - m.Padding) - y*m.Scale
}

// MapInt is Map truncated to integer sub-pixel coordinates.
func (m Mapper) MapInt(x, y float64) (px, py int) {
	fx, fy := m.Map(x, y)
	return int(fx), int(fy)
}

// GridStep returns the largest power of ten not exceeding maxDim, the
// spacing between grid lines on that axis. Non-positive extents return
// zero; callers must skip the grid rather than loop on a zero step.
func GridStep(maxDim float64) float64 {
	if maxDim <= 0 {
		return 0
	}
	return math.Pow(10, math.Floor(math.Log10(maxDim)))
}
