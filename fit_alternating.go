package bezier

import (
	"fmt"
)

// UpdateMethod selects how [FitCubicAlternating] improves the parameter of
// each point between least squares solves.
type UpdateMethod int

const (
	// UpdateNearestPoint reprojects every point onto the current curve and
	// adopts the parameter of the nearest curve point. It is the zero value
	// and the default.
	UpdateNearestPoint UpdateMethod = iota
	// UpdateGaussNewton moves every parameter by one Gauss-Newton step on
	// the residual, clamped to [0, 1] with the endpoints pinned.
	UpdateGaussNewton
)

func (m UpdateMethod) String() string {
	switch m {
	case UpdateNearestPoint:
		return "NearestPoint"
	case UpdateGaussNewton:
		return "GaussNewton"
	default:
		return fmt.Sprintf("UpdateMethod(%d)", int(m))
	}
}

// FitCubicAlternating fits a single cubic Bézier segment to the points by
// alternating optimization: with the parameters fixed, the control points
// are solved in closed form; with the control points fixed, the parameters
// are improved with the given update method; and so on, up to maxIterations
// rounds. Iteration stops early once every point lies within tolerance of
// the curve. The parameters start from the [ChordLength] heuristic, and with
// maxIterations of 0, the result is that plain least squares fit.
//
// The point error is non-increasing over iterations for well-conditioned
// inputs, but there is no general convergence guarantee; maxIterations is
// the only hard bound.
func FitCubicAlternating(points []Point, maxIterations int, tolerance float64, method UpdateMethod) (Segment, error) {
	if len(points) < 4 {
		return Segment{}, &FitError{Reason: errTooFewPoints}
	}

	ts := ChordLength.TValues(points)
	seg, err := FitCubicLeastSquares(points, ts)
	if err != nil {
		return Segment{}, err
	}

	for iter := 0; iter < maxIterations; iter++ {
		if withinTolerance(points, seg, tolerance) {
			break
		}

		next := make([]float64, len(ts))
		switch method {
		case UpdateGaussNewton:
			delta, err := gaussNewtonDelta(points, ts, seg)
			if err != nil {
				return Segment{}, err
			}
			for i, t := range ts {
				next[i] = min(max(t+delta[i], 0.0), 1.0)
			}
			adjustT(next)
		default:
			for i, p := range points {
				_, next[i] = seg.Nearest(p)
			}
		}
		ts = next

		seg, err = FitCubicLeastSquares(points, ts)
		if err != nil {
			return Segment{}, err
		}
	}
	return seg, nil
}
