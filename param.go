package bezier

import (
	"fmt"
	"math"
)

// Parameterization selects the heuristic that assigns a curve parameter to
// each point of a polyline, for example when estimating the t values of
// samples before fitting a curve through them.
type Parameterization int

const (
	// ChordLength spaces parameters proportionally to the distance between
	// consecutive points. It is the zero value and the default used by the
	// fitting functions.
	ChordLength Parameterization = iota
	// Uniform spaces parameters evenly, ignoring the geometry.
	Uniform
	// Centripetal spaces parameters proportionally to the square root of
	// the distance between consecutive points, which dampens the influence
	// of long edges.
	Centripetal
)

func (p Parameterization) String() string {
	switch p {
	case ChordLength:
		return "ChordLength"
	case Uniform:
		return "Uniform"
	case Centripetal:
		return "Centripetal"
	default:
		return fmt.Sprintf("Parameterization(%d)", int(p))
	}
}

// TValues returns a parameter in [0, 1] for every point, non-decreasing from
// 0 to 1. A single point maps to [0], no points to an empty slice. If the
// points are all coincident, the distance-based heuristics have no chords to
// measure and every parameter is 0.
func (p Parameterization) TValues(points []Point) []float64 {
	switch len(points) {
	case 0:
		return []float64{}
	case 1:
		return []float64{0.0}
	}

	ts := make([]float64, len(points))
	switch p {
	case Uniform:
		n := float64(len(points) - 1)
		for i := range ts {
			ts[i] = float64(i) / n
		}
	case Centripetal:
		for i := 1; i < len(points); i++ {
			ts[i] = ts[i-1] + math.Sqrt(points[i].Distance(points[i-1]))
		}
		normalizeT(ts)
	default:
		for i := 1; i < len(points); i++ {
			ts[i] = ts[i-1] + points[i].Distance(points[i-1])
		}
		normalizeT(ts)
	}
	return ts
}

// normalizeT scales cumulative lengths to [0, 1]. A zero total length leaves
// all parameters at 0.
func normalizeT(ts []float64) {
	total := ts[len(ts)-1]
	if total == 0 {
		return
	}
	for i := range ts {
		ts[i] /= total
	}
}
