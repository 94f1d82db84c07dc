package bezier

// nearestLUTSize is the number of uniform parameter steps scanned before the
// nearest-point search switches to interval refinement.
const nearestLUTSize = 100

// Nearest returns the point on the Bézier curve with the given control
// points that is closest to pt, along with the parameter at which it occurs.
// Like [Eval], it accepts 2, 3, or 4 control points and panics for any other
// number.
//
// The search samples the curve at nearestLUTSize+1 uniform parameters and
// then shrinks the winning interval by thirds until it is narrower than
// [NearestTolerance]. On curves that bend back towards pt more than once the
// coarse scan can settle on a locally, rather than globally, nearest point.
func Nearest(pts []Point, pt Point) (Point, float64) {
	bestT := 0.0
	best := Eval(pts, 0.0)
	bestDist := best.Distance(pt)
	for i := 1; i <= nearestLUTSize; i++ {
		t := float64(i) / nearestLUTSize
		p := Eval(pts, t)
		if d := p.Distance(pt); d < bestDist {
			bestDist = d
			bestT = t
			best = p
		}
	}

	left := max(bestT-1.0/nearestLUTSize, 0.0)
	right := min(bestT+1.0/nearestLUTSize, 1.0)
	for right-left > NearestTolerance {
		mid1 := left + (right-left)/3.0
		mid2 := right - (right-left)/3.0
		p1 := Eval(pts, mid1)
		d1 := p1.Distance(pt)
		p2 := Eval(pts, mid2)
		d2 := p2.Distance(pt)
		if d1 < bestDist {
			bestDist = d1
			bestT = mid1
			best = p1
			right = mid2
		} else if d2 < bestDist {
			bestDist = d2
			bestT = mid2
			best = p2
			left = mid1
		} else {
			left = mid1
			right = mid2
		}
	}
	return best, bestT
}

// PerpendicularLine returns the endpoints of a line of the given length that
// crosses the curve at a right angle through the point on the curve closest
// to target. Where the tangent vanishes the perpendicular direction is
// undefined and both endpoints collapse onto the curve point.
func PerpendicularLine(pts []Point, target Point, length float64) (Point, Point) {
	t := closestT(pts, target)
	closest := Eval(pts, t)
	tangent := Tangent(pts, t)
	perp := Vec2{X: -tangent.Y, Y: tangent.X}.Normalize()
	half := perp.Mul(length / 2.0)
	return closest.Translate(half.Negate()), closest.Translate(half)
}

// closestT approximates the parameter of the curve point closest to target
// by bisecting on the distances at two interior probes. It is cheaper but
// less precise than [Nearest].
func closestT(pts []Point, target Point) float64 {
	tMin, tMax := 0.0, 1.0
	for i := 0; i < 50; i++ {
		width := tMax - tMin
		if width < 1e-6 {
			break
		}
		d1 := Eval(pts, tMin+width*0.333).Distance(target)
		d2 := Eval(pts, tMin+width*0.667).Distance(target)
		if d1 < d2 {
			tMax = tMin + width/2.0
		} else {
			tMin = tMin + width/2.0
		}
	}
	return (tMin + tMax) / 2.0
}
