package bezier

import (
	"fmt"
	"math"
)

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
	// An elliptical arc segment.
	ArcKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	case ArcKind:
		return "Arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is a single piece of a curve. This type acts as a sort of tagged
// union representing all supported segment kinds: lines, quadratic and cubic
// Béziers, and elliptical arcs.
//
// Arcs are carried along for representation only. They support [Segment.Points],
// [Segment.Start], [Segment.End], and [Segment.String], but every geometric
// operation on an arc panics.
type Segment struct {
	Kind SegmentKind

	// P0 through P3 hold the control points. Lines use P0 and P1, quadratics
	// P0 through P2, and cubics all four. Arcs store their start point in P0
	// and their end point in P1.
	P0 Point
	P1 Point
	P2 Point
	P3 Point

	// The remaining fields describe arcs, in SVG elliptical-arc terms, and
	// are only meaningful when Kind is ArcKind.
	Rx        float64
	Ry        float64
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// LineSeg returns the line segment from p0 to p1.
func LineSeg(p0, p1 Point) Segment {
	return Segment{Kind: LineKind, P0: p0, P1: p1}
}

// QuadSeg returns the quadratic Bézier segment with the given control points.
func QuadSeg(p0, p1, p2 Point) Segment {
	return Segment{Kind: QuadKind, P0: p0, P1: p1, P2: p2}
}

// CubicSeg returns the cubic Bézier segment with the given control points.
func CubicSeg(p0, p1, p2, p3 Point) Segment {
	return Segment{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3}
}

// ArcSeg returns the elliptical arc segment from start to end with the given
// radii, x-axis rotation in degrees, and flags.
func ArcSeg(start, end Point, rx, ry, xRotation float64, largeArc, sweep bool) Segment {
	return Segment{
		Kind:      ArcKind,
		P0:        start,
		P1:        end,
		Rx:        rx,
		Ry:        ry,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

// SegFromPoints returns the line, quadratic, or cubic segment that has the
// given control points. It panics unless it is given 2, 3, or 4 points.
func SegFromPoints(pts ...Point) Segment {
	switch len(pts) {
	case 2:
		return LineSeg(pts[0], pts[1])
	case 3:
		return QuadSeg(pts[0], pts[1], pts[2])
	case 4:
		return CubicSeg(pts[0], pts[1], pts[2], pts[3])
	default:
		panic(fmt.Sprintf("cannot construct a segment from %d control points", len(pts)))
	}
}

// Points returns the segment's control points. For arcs, these are the start
// and end points.
func (seg Segment) Points() []Point {
	switch seg.Kind {
	case LineKind, ArcKind:
		return []Point{seg.P0, seg.P1}
	case QuadKind:
		return []Point{seg.P0, seg.P1, seg.P2}
	case CubicKind:
		return []Point{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", int(seg.Kind)))
	}
}

// bezierPoints returns the control points of the polynomial kinds and panics
// for arcs, which have no polynomial form.
func (seg Segment) bezierPoints() []Point {
	if seg.Kind == ArcKind {
		panic("not implemented for arc segments")
	}
	return seg.Points()
}

// Start returns the first point of the segment.
func (seg Segment) Start() Point {
	return seg.P0
}

// End returns the last point of the segment.
func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind, ArcKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", int(seg.Kind)))
	}
}

// Eval evaluates the segment at parameter t. Values of t outside [0, 1]
// extrapolate the curve beyond its endpoints. Eval panics on arc segments.
func (seg Segment) Eval(t float64) Point {
	return Eval(seg.bezierPoints(), t)
}

// Tangent returns the derivative of the segment at parameter t. As with
// [Segment.Eval], t is not clamped to [0, 1]. Tangent panics on arc segments.
func (seg Segment) Tangent(t float64) Vec2 {
	return Tangent(seg.bezierPoints(), t)
}

// SplitAt subdivides the segment at parameter t using de Casteljau's
// algorithm. The end of the first half and the start of the second are the
// identical point. SplitAt panics on arc segments.
func (seg Segment) SplitAt(t float64) (Segment, Segment) {
	left, right := Split(seg.bezierPoints(), t)
	return SegFromPoints(left...), SegFromPoints(right...)
}

// Nearest returns the point on the segment closest to pt, along with the
// parameter at which it occurs. Nearest panics on arc segments.
func (seg Segment) Nearest(pt Point) (Point, float64) {
	return Nearest(seg.bezierPoints(), pt)
}

// SamplePoints returns n points on the segment, evenly spaced in parameter
// from t = 0 through t = 1. It panics if n < 2 or on arc segments.
func (seg Segment) SamplePoints(n int) []Point {
	if n < 2 {
		panic("need at least 2 samples")
	}
	pts := seg.bezierPoints()
	out := make([]Point, n)
	for i := range out {
		out[i] = Eval(pts, float64(i)/float64(n-1))
	}
	return out
}

// SampleAt evaluates the segment at each of the given parameters. It panics
// on arc segments.
func (seg Segment) SampleAt(ts []float64) []Point {
	pts := seg.bezierPoints()
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = Eval(pts, t)
	}
	return out
}

// Transform returns the segment with its control points mapped by aff. It
// panics on arc segments, whose radii and rotation cannot be mapped
// point-wise.
func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return LineSeg(seg.P0.Transform(aff), seg.P1.Transform(aff))
	case QuadKind:
		return QuadSeg(seg.P0.Transform(aff), seg.P1.Transform(aff), seg.P2.Transform(aff))
	case CubicKind:
		return CubicSeg(seg.P0.Transform(aff), seg.P1.Transform(aff), seg.P2.Transform(aff), seg.P3.Transform(aff))
	case ArcKind:
		panic("not implemented for arc segments")
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", int(seg.Kind)))
	}
}

func (seg Segment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf() ||
		math.IsInf(seg.Rx, 0) || math.IsInf(seg.Ry, 0) || math.IsInf(seg.XRotation, 0)
}

func (seg Segment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN() ||
		math.IsNaN(seg.Rx) || math.IsNaN(seg.Ry) || math.IsNaN(seg.XRotation)
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line[%s -> %s]", seg.P0, seg.P1)
	case QuadKind:
		return fmt.Sprintf("Quadratic[%s -> %s -> %s]", seg.P0, seg.P1, seg.P2)
	case CubicKind:
		return fmt.Sprintf("Cubic[%s -> %s -> %s -> %s]", seg.P0, seg.P1, seg.P2, seg.P3)
	case ArcKind:
		return fmt.Sprintf("Arc[%s -> %s, rx: %g, ry: %g, angle: %g, large-arc: %v, sweep: %v]",
			seg.P0, seg.P1, seg.Rx, seg.Ry, seg.XRotation, seg.LargeArc, seg.Sweep)
	default:
		return "InvalidSegment"
	}
}
