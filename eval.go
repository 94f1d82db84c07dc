package bezier

import (
	"fmt"
)

// Eval evaluates the Bézier curve with the given control points at parameter
// t, using the Bernstein form of the polynomial. Two control points describe
// a line, three a quadratic, and four a cubic; any other number panics.
//
// t is not clamped. Values outside [0, 1] extrapolate the polynomial beyond
// the curve's endpoints.
func Eval(pts []Point, t float64) Point {
	switch len(pts) {
	case 2:
		return pts[0].Lerp(pts[1], t)
	case 3:
		mt := 1.0 - t
		a := Vec2(pts[0]).Mul(mt * mt)
		b := Vec2(pts[1]).Mul(mt * 2.0)
		c := Vec2(pts[2]).Mul(t)
		return Point(a.Add(b.Add(c).Mul(t)))
	case 4:
		mt := 1.0 - t
		a := Vec2(pts[0]).Mul(mt * mt * mt)
		b := Vec2(pts[1]).Mul(mt * mt * 3.0)
		c := Vec2(pts[2]).Mul(mt * 3.0)
		d := Vec2(pts[3])
		return Point(a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t)))
	default:
		panic(badPointCount(len(pts)))
	}
}

// Tangent returns the derivative of the Bézier curve with the given control
// points at parameter t. Like [Eval], it accepts 2, 3, or 4 control points
// and does not clamp t.
//
// The result is the exact derivative, not normalized. It is the zero vector
// where the curve is degenerate, for example at a cusp.
func Tangent(pts []Point, t float64) Vec2 {
	switch len(pts) {
	case 2:
		return pts[1].Sub(pts[0])
	case 3:
		d0 := pts[1].Sub(pts[0])
		d1 := pts[2].Sub(pts[1])
		return d0.Lerp(d1, t).Mul(2.0)
	case 4:
		mt := 1.0 - t
		d0 := pts[1].Sub(pts[0]).Mul(3.0 * mt * mt)
		d1 := pts[2].Sub(pts[1]).Mul(6.0 * mt * t)
		d2 := pts[3].Sub(pts[2]).Mul(3.0 * t * t)
		return d0.Add(d1).Add(d2)
	default:
		panic(badPointCount(len(pts)))
	}
}

func badPointCount(n int) string {
	return fmt.Sprintf("unsupported number of control points %d, want 2, 3, or 4", n)
}
