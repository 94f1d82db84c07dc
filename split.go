package bezier

// Split subdivides the Bézier curve with the given control points at
// parameter t using de Casteljau's algorithm, returning the control points of
// the two halves. The last point of the left half and the first point of the
// right half are the identical split point, and the original endpoints are
// preserved exactly. Like [Eval], Split accepts 2, 3, or 4 control points and
// panics for any other number.
//
// Splitting at t outside [0, 1] yields control points that extrapolate the
// curve.
func Split(pts []Point, t float64) (left, right []Point) {
	switch len(pts) {
	case 2:
		mid := pts[0].Lerp(pts[1], t)
		return []Point{pts[0], mid}, []Point{mid, pts[1]}
	case 3:
		q0 := pts[0].Lerp(pts[1], t)
		q1 := pts[1].Lerp(pts[2], t)
		mid := q0.Lerp(q1, t)
		return []Point{pts[0], q0, mid}, []Point{mid, q1, pts[2]}
	case 4:
		q0 := pts[0].Lerp(pts[1], t)
		q1 := pts[1].Lerp(pts[2], t)
		q2 := pts[2].Lerp(pts[3], t)
		r0 := q0.Lerp(q1, t)
		r1 := q1.Lerp(q2, t)
		mid := r0.Lerp(r1, t)
		return []Point{pts[0], q0, r0, mid}, []Point{mid, r1, q2, pts[3]}
	default:
		panic(badPointCount(len(pts)))
	}
}
