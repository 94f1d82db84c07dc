package bezier

import (
	"math"
	"testing"
)

func TestSegmentConstructors(t *testing.T) {
	ln := LineSeg(Pt(0, 0), Pt(1, 1))
	diff(t, LineKind, ln.Kind)
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, ln.Points())

	q := QuadSeg(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	diff(t, QuadKind, q.Kind)
	diff(t, []Point{Pt(0, 0), Pt(1, 2), Pt(2, 0)}, q.Points())

	c := CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	diff(t, CubicKind, c.Kind)
	diff(t, []Point{Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)}, c.Points())

	a := ArcSeg(Pt(10, 10), Pt(20, 20), 5, 6, 45, true, false)
	diff(t, ArcKind, a.Kind)
	diff(t, []Point{Pt(10, 10), Pt(20, 20)}, a.Points())
	diff(t, 5.0, a.Rx)
	diff(t, 6.0, a.Ry)
	diff(t, 45.0, a.XRotation)
	diff(t, true, a.LargeArc)
	diff(t, false, a.Sweep)
}

func TestSegFromPoints(t *testing.T) {
	diff(t, LineSeg(Pt(0, 0), Pt(1, 1)), SegFromPoints(Pt(0, 0), Pt(1, 1)))
	diff(t, QuadSeg(Pt(0, 0), Pt(1, 2), Pt(2, 0)), SegFromPoints(Pt(0, 0), Pt(1, 2), Pt(2, 0)))
	diff(t, CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)), SegFromPoints(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)))

	mustPanic(t, func() { SegFromPoints(Pt(0, 0)) })
	mustPanic(t, func() { SegFromPoints(make([]Point, 5)...) })
}

func TestSegmentEnds(t *testing.T) {
	tests := []struct {
		seg        Segment
		start, end Point
	}{
		{LineSeg(Pt(1, 2), Pt(3, 4)), Pt(1, 2), Pt(3, 4)},
		{QuadSeg(Pt(1, 2), Pt(3, 4), Pt(5, 6)), Pt(1, 2), Pt(5, 6)},
		{CubicSeg(Pt(1, 2), Pt(3, 4), Pt(5, 6), Pt(7, 8)), Pt(1, 2), Pt(7, 8)},
		{ArcSeg(Pt(1, 2), Pt(3, 4), 5, 5, 0, false, true), Pt(1, 2), Pt(3, 4)},
	}
	for _, tc := range tests {
		diff(t, tc.start, tc.seg.Start())
		diff(t, tc.end, tc.seg.End())
	}
}

func TestSegmentEvalSplit(t *testing.T) {
	seg := CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	diff(t, Pt(1.5, 1.5), seg.Eval(0.5))
	diff(t, Vec(3, 0), seg.Tangent(0.5))

	left, right := seg.SplitAt(0.5)
	diff(t, CubicSeg(Pt(0, 0), Pt(0.5, 1), Pt(1, 1.5), Pt(1.5, 1.5)), left)
	diff(t, CubicSeg(Pt(1.5, 1.5), Pt(2, 1.5), Pt(2.5, 1), Pt(3, 0)), right)

	// Splitting preserves the kind.
	lleft, lright := LineSeg(Pt(0, 0), Pt(4, 8)).SplitAt(0.25)
	diff(t, LineSeg(Pt(0, 0), Pt(1, 2)), lleft)
	diff(t, LineSeg(Pt(1, 2), Pt(4, 8)), lright)
}

func TestSegmentSampling(t *testing.T) {
	seg := LineSeg(Pt(0, 0), Pt(3, 0))
	diff(t, []Point{Pt(0, 0), Pt(0.75, 0), Pt(1.5, 0), Pt(2.25, 0), Pt(3, 0)}, seg.SamplePoints(5))
	diff(t, []Point{Pt(0, 0), Pt(3, 0)}, seg.SamplePoints(2))

	q := QuadSeg(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	diff(t, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, q.SampleAt([]float64{0, 0.5, 1}))
	diff(t, []Point{}, q.SampleAt(nil))

	mustPanic(t, func() { seg.SamplePoints(1) })
}

func TestSegmentTransform(t *testing.T) {
	seg := CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	diff(t, CubicSeg(Pt(10, 20), Pt(11, 22), Pt(12, 22), Pt(13, 20)), seg.Transform(Translate(Vec(10, 20))))
	diff(t, LineSeg(Pt(2, 3), Pt(4, 9)), LineSeg(Pt(1, 1), Pt(2, 3)).Transform(Scale(2, 3)))
}

func TestArcOpsPanic(t *testing.T) {
	arc := ArcSeg(Pt(0, 0), Pt(10, 0), 5, 5, 0, false, true)
	mustPanic(t, func() { arc.Eval(0.5) })
	mustPanic(t, func() { arc.Tangent(0.5) })
	mustPanic(t, func() { arc.SplitAt(0.5) })
	mustPanic(t, func() { arc.Nearest(Pt(0, 0)) })
	mustPanic(t, func() { arc.SamplePoints(4) })
	mustPanic(t, func() { arc.SampleAt([]float64{0, 1}) })
	mustPanic(t, func() { arc.Transform(Identity) })
}

func TestSegmentString(t *testing.T) {
	diff(t, "Line[(0, 0) -> (1, 2)]", LineSeg(Pt(0, 0), Pt(1, 2)).String())
	diff(t, "Quadratic[(0, 0) -> (1, 2) -> (2, 0)]", QuadSeg(Pt(0, 0), Pt(1, 2), Pt(2, 0)).String())
	diff(t, "Cubic[(0, 0) -> (1, 2) -> (2, 2) -> (3, 0)]", CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)).String())
	diff(t, "Arc[(0, 0) -> (10, 0), rx: 5, ry: 5, angle: 0, large-arc: false, sweep: true]",
		ArcSeg(Pt(0, 0), Pt(10, 0), 5, 5, 0, false, true).String())

	var zero Segment
	diff(t, "InvalidSegment", zero.String())

	diff(t, "Line", LineKind.String())
	diff(t, "Quad", QuadKind.String())
	diff(t, "Cubic", CubicKind.String())
	diff(t, "Arc", ArcKind.String())
	diff(t, "SegmentKind(9)", SegmentKind(9).String())
}

func TestSegmentSpecials(t *testing.T) {
	if LineSeg(Pt(0, 0), Pt(1, 1)).IsInf() {
		t.Error("finite segment reported as infinite")
	}
	if !LineSeg(Pt(0, 0), Pt(math.Inf(1), 0)).IsInf() {
		t.Error("infinite segment not reported as infinite")
	}
	if !QuadSeg(Pt(0, 0), Pt(math.NaN(), 0), Pt(1, 1)).IsNaN() {
		t.Error("NaN segment not reported as NaN")
	}
	if CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)).IsNaN() {
		t.Error("finite segment reported as NaN")
	}
}
