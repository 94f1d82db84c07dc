package svgpath

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/houjing/bezier"
)

// Encode converts a curve to SVG path data.
//
// See [Write] for a version that writes to an [io.Writer] instead of
// returning a string.
func Encode(c bezier.Curve) string {
	sb := &strings.Builder{}
	Write(sb, c)
	return sb.String()
}

// Write converts a curve to SVG path data and writes it to w.
//
// The output opens with an absolute move to the first segment's start
// point. Lines parallel to an axis use the H and V shorthands. Closed
// curves end with a Z command. Coordinates are formatted with the
// smallest number of digits that reproduces them exactly.
func Write(w io.Writer, c bezier.Curve) error {
	if len(c.Segments) == 0 {
		return nil
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	for i, seg := range c.Segments {
		if err != nil {
			return err
		}
		if i == 0 {
			writef("M %s,%s ", format(seg.P0.X), format(seg.P0.Y))
		} else {
			writef(" ")
		}
		switch seg.Kind {
		case bezier.LineKind:
			switch {
			case seg.P1.X == seg.P0.X:
				writef("V %s", format(seg.P1.Y))
			case seg.P1.Y == seg.P0.Y:
				writef("H %s", format(seg.P1.X))
			default:
				writef("L %s,%s", format(seg.P1.X), format(seg.P1.Y))
			}
		case bezier.QuadKind:
			writef("Q %s,%s %s,%s",
				format(seg.P1.X), format(seg.P1.Y),
				format(seg.P2.X), format(seg.P2.Y))
		case bezier.CubicKind:
			writef("C %s,%s %s,%s %s,%s",
				format(seg.P1.X), format(seg.P1.Y),
				format(seg.P2.X), format(seg.P2.Y),
				format(seg.P3.X), format(seg.P3.Y))
		case bezier.ArcKind:
			writef("A %s,%s %s,%s,%s %s,%s",
				format(seg.Rx), format(seg.Ry),
				format(seg.XRotation), flag(seg.LargeArc), flag(seg.Sweep),
				format(seg.P1.X), format(seg.P1.Y))
		default:
			panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
		}
	}
	if c.IsClosed() {
		writef(" Z")
	}
	return err
}
