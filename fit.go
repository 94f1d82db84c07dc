package bezier

import (
	"gonum.org/v1/gonum/mat"
)

// FitError describes why a fitting function could not produce a curve.
type FitError struct {
	Reason string
}

func (e *FitError) Error() string {
	return "bezier: " + e.Reason
}

const (
	errTooFewPoints   = "at least 4 points are required and the number of points must match the number of t values"
	errSingularNormal = "could not invert the normal equations matrix"
	errGaussNewton    = "could not solve for the Gauss-Newton parameter step"
)

// cubicBernstein maps power-basis coefficient rows [1, t, t², t³] to the
// cubic Bernstein basis.
var cubicBernstein = mat.NewDense(4, 4, []float64{
	1, 0, 0, 0,
	-3, 3, 0, 0,
	3, -6, 3, 0,
	-1, 3, -3, 1,
})

// designMatrix returns the n×4 matrix A = C(t)·M that maps cubic control
// point coordinates to the curve positions at the given parameters.
func designMatrix(ts []float64) *mat.Dense {
	ct := mat.NewDense(len(ts), 4, nil)
	for i, t := range ts {
		ct.SetRow(i, []float64{1, t, t * t, t * t * t})
	}
	var a mat.Dense
	a.Mul(ct, cubicBernstein)
	return &a
}

// derivDesignMatrix is the analogue of designMatrix for the curve's first
// derivative.
func derivDesignMatrix(ts []float64) *mat.Dense {
	ct := mat.NewDense(len(ts), 4, nil)
	for i, t := range ts {
		ct.SetRow(i, []float64{0, 1, 2 * t, 3 * t * t})
	}
	var a mat.Dense
	a.Mul(ct, cubicBernstein)
	return &a
}

// controlVectors splits a cubic's control points into the per-coordinate
// vectors the solver works on.
func controlVectors(seg Segment) (px, py *mat.VecDense) {
	pts := seg.Points()
	px = mat.NewVecDense(len(pts), nil)
	py = mat.NewVecDense(len(pts), nil)
	for i, p := range pts {
		px.SetVec(i, p.X)
		py.SetVec(i, p.Y)
	}
	return px, py
}

// FitCubic fits a single cubic Bézier segment to the points, estimating the
// parameter of each point with the given heuristic and solving the linear
// least squares problem in closed form. At least 4 points are required.
func FitCubic(points []Point, h Parameterization) (Segment, error) {
	return FitCubicLeastSquares(points, h.TValues(points))
}

// FitCubicLeastSquares fits a single cubic Bézier segment to the points,
// taking ts as the fixed parameter of each point. The control points are the
// exact minimizer of the squared distance between the curve at ts and the
// points, solved per coordinate via the normal equations. At least 4 points
// are required and ts must have one parameter per point.
//
// When the fitted curve comes out back to front, which the quadratic loss
// cannot distinguish, the control points are reversed so that the curve
// starts near the first point.
func FitCubicLeastSquares(points []Point, ts []float64) (Segment, error) {
	if len(points) < 4 || len(points) != len(ts) {
		return Segment{}, &FitError{Reason: errTooFewPoints}
	}

	a := designMatrix(ts)
	var ata mat.Dense
	ata.Mul(a.T(), a)
	var inv mat.Dense
	if err := inv.Inverse(&ata); err != nil {
		return Segment{}, &FitError{Reason: errSingularNormal}
	}

	bx := mat.NewVecDense(len(points), nil)
	by := mat.NewVecDense(len(points), nil)
	for i, p := range points {
		bx.SetVec(i, p.X)
		by.SetVec(i, p.Y)
	}

	var atbx, atby, cx, cy mat.VecDense
	atbx.MulVec(a.T(), bx)
	atby.MulVec(a.T(), by)
	cx.MulVec(&inv, &atbx)
	cy.MulVec(&inv, &atby)

	p0 := Pt(cx.AtVec(0), cy.AtVec(0))
	p1 := Pt(cx.AtVec(1), cy.AtVec(1))
	p2 := Pt(cx.AtVec(2), cy.AtVec(2))
	p3 := Pt(cx.AtVec(3), cy.AtVec(3))
	p0, p1, p2, p3 = reorderControlPoints(p0, p1, p2, p3, points[0])
	return CubicSeg(p0, p1, p2, p3), nil
}

func reorderControlPoints(p0, p1, p2, p3, start Point) (Point, Point, Point, Point) {
	if start.Distance(p3) < start.Distance(p0) {
		return p3, p2, p1, p0
	}
	return p0, p1, p2, p3
}

// residual returns the length-2n vector interleaving the x and y distances
// between the curve at ts and the points.
func residual(points []Point, ts []float64, seg Segment) *mat.VecDense {
	a := designMatrix(ts)
	px, py := controlVectors(seg)
	var sx, sy mat.VecDense
	sx.MulVec(a, px)
	sy.MulVec(a, py)
	r := mat.NewVecDense(2*len(points), nil)
	for i, p := range points {
		r.SetVec(2*i, sx.AtVec(i)-p.X)
		r.SetVec(2*i+1, sy.AtVec(i)-p.Y)
	}
	return r
}

// residualNorm is the Euclidean norm of the fit residual, the loss that the
// iterative fitting functions minimize.
func residualNorm(points []Point, ts []float64, seg Segment) float64 {
	return mat.Norm(residual(points, ts, seg), 2)
}

// gaussNewtonDelta returns the Gauss-Newton step for the parameters of a fit
// with fixed control points. Each tᵢ influences only its own residual pair,
// so JᵀJ is diagonal.
func gaussNewtonDelta(points []Point, ts []float64, seg Segment) ([]float64, error) {
	ad := derivDesignMatrix(ts)
	px, py := controlVectors(seg)
	var dx, dy mat.VecDense
	dx.MulVec(ad, px)
	dy.MulVec(ad, py)
	r := residual(points, ts, seg)

	n := len(ts)
	jtj := mat.NewDiagDense(n, nil)
	jtr := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		gx := dx.AtVec(i)
		gy := dy.AtVec(i)
		jtj.SetDiag(i, gx*gx+gy*gy)
		jtr.SetVec(i, gx*r.AtVec(2*i)+gy*r.AtVec(2*i+1))
	}

	var step mat.VecDense
	if err := step.SolveVec(jtj, jtr); err != nil {
		return nil, &FitError{Reason: errGaussNewton}
	}
	delta := make([]float64, n)
	for i := range delta {
		delta[i] = -step.AtVec(i)
	}
	return delta, nil
}

// adjustT pins the first and last parameters to 0 and 1 so that an updated
// parameter vector keeps spanning the whole curve.
func adjustT(ts []float64) {
	ts[0] = 0.0
	ts[len(ts)-1] = 1.0
}

// withinTolerance reports whether every point lies within dist of the curve.
func withinTolerance(points []Point, seg Segment, dist float64) bool {
	for _, p := range points {
		nearest, _ := seg.Nearest(p)
		if nearest.Distance(p) > dist {
			return false
		}
	}
	return true
}
