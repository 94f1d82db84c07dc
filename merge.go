package bezier

import (
	"math"
	"slices"
)

// Merge reconstructs a single Bézier curve from two halves that were
// produced by splitting it, undoing [Split]. left and right must have the
// same number of control points, left must end where right starts (within
// [MergeTolerance]), and the two halves must be geometrically consistent
// with a single curve of their shared degree. If any of those conditions
// fail, Merge reports false; failure is an expected outcome for curves that
// did not come from a split, not an error.
//
// The reconstruction is exact only up to floating point error and
// [MergeTolerance]; merging the halves of a split returns a curve whose
// control points are close to, but not bit-identical with, the original's.
func Merge(left, right []Point) ([]Point, bool) {
	if len(left) != len(right) || len(left) < 2 || len(left) > 4 {
		return nil, false
	}
	if left[len(left)-1].Distance(right[0]) > MergeTolerance {
		return nil, false
	}
	switch len(left) {
	case 2:
		return mergeLines(left, right)
	case 3:
		return mergeQuads(left, right)
	default:
		return mergeCubics(left, right)
	}
}

// mergeLines merges two line segments when their slopes agree. Vertical
// lines have no usable slope, so a pair of near-vertical lines is handled
// separately.
func mergeLines(a, b []Point) ([]Point, bool) {
	if math.Abs(a[1].X-a[0].X) < MergeTolerance && math.Abs(b[1].X-b[0].X) < MergeTolerance {
		return []Point{a[0], b[1]}, true
	}
	slopeA := (a[1].Y - a[0].Y) / (a[1].X - a[0].X)
	slopeB := (b[1].Y - b[0].Y) / (b[1].X - b[0].X)
	if math.Abs(slopeA-slopeB) > MergeTolerance {
		return nil, false
	}
	return []Point{a[0], b[1]}, true
}

func mergeQuads(a, b []Point) ([]Point, bool) {
	// The legs meeting at the join must be collinear, and their lengths
	// determine the original split parameter.
	da := a[2].Sub(a[1])
	db := b[1].Sub(b[0])
	if math.Abs(da.Angle()-db.Angle()) > MergeTolerance {
		return nil, false
	}
	t := da.Hypot() / (da.Hypot() + db.Hypot())
	p1 := a[0].Translate(a[1].Sub(a[0]).Mul(1 / t))
	return []Point{a[0], p1, b[2]}, true
}

func mergeCubics(a, b []Point) ([]Point, bool) {
	da := a[3].Sub(a[2])
	db := b[1].Sub(b[0])
	if math.Abs(da.Angle()-db.Angle()) > MergeTolerance {
		return nil, false
	}
	t := da.Hypot() / (da.Hypot() + db.Hypot())
	// The middle point of the de Casteljau triangle can be recovered from
	// either half; the two must agree for the halves to describe one cubic.
	fromLeft := a[1].Translate(a[2].Sub(a[1]).Mul(1 / t))
	fromRight := b[2].Translate(b[1].Sub(b[2]).Mul(1 / (1 - t)))
	if fromLeft.Distance(fromRight) > MergeTolerance {
		return nil, false
	}
	p1 := a[0].Translate(a[1].Sub(a[0]).Mul(1 / t))
	p2 := b[3].Translate(b[2].Sub(b[3]).Mul(1 / (1 - t)))
	return []Point{a[0], p1, p2, b[3]}, true
}

// MergeSequential repeatedly merges adjacent curves in the list until no
// more merges are possible, and returns the reduced list. Two neighbors are
// tried in both orders, depending on which of their endpoints touch; curves
// of different degrees, curves that do not touch, and curves that fail
// [Merge]'s consistency checks are left alone. The input slice is not
// modified.
func MergeSequential(curves [][]Point) [][]Point {
	if len(curves) < 2 {
		return curves
	}
	out := slices.Clone(curves)
	for {
		merged := false
		for i := 0; i < len(out)-1; i++ {
			c1, c2 := out[i], out[i+1]
			if len(c1) != len(c2) || len(c1) == 0 {
				continue
			}
			var m []Point
			var ok bool
			if c1[len(c1)-1].Distance(c2[0]) < MergeTolerance {
				m, ok = Merge(c1, c2)
			} else if c2[len(c2)-1].Distance(c1[0]) < MergeTolerance {
				m, ok = Merge(c2, c1)
			}
			if ok {
				out[i] = m
				out = slices.Delete(out, i+1, i+2)
				merged = true
				break
			}
		}
		if !merged {
			return out
		}
	}
}
