package bezier

import (
	"fmt"
	"slices"
	"strings"
)

// Curve is an ordered sequence of segments. Consecutive segments usually
// join end to end, though Curve does not enforce that.
//
// A curve is closed when the first point of its first segment and the last
// point of its last segment coincide (within [FloatTolerance]). The flag is
// derived on construction, so build curves with [NewCurve] or
// [NewClosedCurve] rather than struct literals.
type Curve struct {
	Segments []Segment
	closed   bool
}

// NewCurve returns a curve over the given segments, detecting whether the
// segment sequence closes on itself.
func NewCurve(segments ...Segment) Curve {
	c := Curve{Segments: segments}
	if len(segments) > 0 {
		c.closed = c.Start().Equals(c.End())
	}
	return c
}

// NewClosedCurve returns a closed curve over the given segments, appending a
// straight closing segment when the sequence does not already end where it
// began. It panics when called without segments, as an empty curve cannot be
// closed.
func NewClosedCurve(segments ...Segment) Curve {
	if len(segments) == 0 {
		panic("cannot close an empty curve")
	}
	c := Curve{Segments: segments, closed: true}
	if !c.Start().Equals(c.End()) {
		c.Segments = append(slices.Clip(c.Segments), LineSeg(c.End(), c.Start()))
	}
	return c
}

// IsClosed reports whether the curve's endpoints coincide.
func (c Curve) IsClosed() bool {
	return c.closed
}

// Start returns the first point of the curve. It panics on a curve with no
// segments.
func (c Curve) Start() Point {
	return c.Segments[0].Start()
}

// End returns the last point of the curve. It panics on a curve with no
// segments.
func (c Curve) End() Point {
	return c.Segments[len(c.Segments)-1].End()
}

// Transform returns the curve with every segment mapped by aff. Like
// [Segment.Transform], it panics when the curve contains arc segments.
func (c Curve) Transform(aff Affine) Curve {
	out := Curve{
		Segments: make([]Segment, len(c.Segments)),
		closed:   c.closed,
	}
	for i, seg := range c.Segments {
		out.Segments[i] = seg.Transform(aff)
	}
	return out
}

func (c Curve) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Curve[closed: %v]", c.closed)
	for i, seg := range c.Segments {
		fmt.Fprintf(&sb, "\n  %d: %s", i, seg)
	}
	return sb.String()
}
