package visualization

import "math"

// NormalizePositions scales positions to fit within width x height minus padding
func NormalizePositions(positions map[string]Position, width, height, padding float64) map[string]Position {
	if len(positions) == 0 {
		return positions
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64

	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY

	// Degenerate axis: centre it rather than stretching noise.
	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	normalized := make(map[string]Position, len(positions))
	for sym, pos := range positions {
		p := Position{X: width / 2, Y: height / 2}
		if rangeX >= 0.01 {
			p.X = padding + ((pos.X-minX)/rangeX)*targetWidth
		}
		if rangeY >= 0.01 {
			p.Y = padding + ((pos.Y-minY)/rangeY)*targetHeight
		}
		normalized[sym] = p
	}

	return normalized
}
