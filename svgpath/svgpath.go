// Package svgpath reads and writes curves as SVG path data.
//
// The parser accepts the full SVG 1.1 path grammar: absolute and relative
// forms of the M, L, H, V, C, S, Q, T, A and Z commands, implicit command
// repetition, and the compact number syntax found in real path data, where
// separators are omitted and signs, exponents and leading dots run numbers
// together ("l241.4.534-10.67", "1e-4-2e+4").
//
// [Parse] decodes a single path. [ParseAll] decodes data holding several
// paths separated by Z commands. [Encode] and [Write] go the other way.
package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/houjing/bezier"
)

// MultiplePathsError reports input that continues past the end of a
// complete path. Consumed is the length in bytes of the leading
// well-formed path.
type MultiplePathsError struct {
	Consumed int
}

func (e *MultiplePathsError) Error() string {
	return fmt.Sprintf("svgpath: input continues after a complete path (%d bytes consumed)", e.Consumed)
}

// Parse parses SVG path data describing a single path.
//
// A path ends at its first Z command, or at the end of the input. Input
// that continues past a Z fails with a [MultiplePathsError]; use
// [ParseAll] to decode such data.
func Parse(data string) (bezier.Curve, error) {
	c, _, err := parseOne(data)
	return c, err
}

// ParseAll parses path data that may hold several paths separated by Z
// commands, returning one curve per path.
func ParseAll(data string) ([]bezier.Curve, error) {
	var curves []bezier.Curve
	rest := data
	for rest != "" {
		c, n, err := parseOne(rest)
		if err != nil {
			var multi *MultiplePathsError
			if !errors.As(err, &multi) {
				return nil, err
			}
			n = multi.Consumed
			c, _, err = parseOne(rest[:n])
			if err != nil {
				return nil, err
			}
		}
		curves = append(curves, c)
		rest = strings.TrimLeftFunc(rest[n:], unicode.IsSpace)
	}
	return curves, nil
}

// parser accumulates segments as path commands are applied.
type parser struct {
	segments []bezier.Segment
	current  bezier.Point
	start    bezier.Point // start of the path, the target of Z
	moved    bool         // a move command has been seen
}

// parseOne decodes the leading path in data, returning the curve and the
// number of bytes consumed.
func parseOne(data string) (bezier.Curve, int, error) {
	var (
		p        parser
		command  byte
		consumed int
		numbers  []float64

		// The pending numeric token, as a span of data.
		numStart, numLen int
	)
	pending := func() string { return data[numStart : numStart+numLen] }
	flush := func() {
		if numLen == 0 {
			return
		}
		if f, err := strconv.ParseFloat(pending(), 64); err == nil {
			numbers = append(numbers, f)
		}
		numLen = 0
	}
	extend := func(i int) {
		if numLen == 0 {
			numStart = i
		}
		numLen++
	}

	for i, r := range data {
		consumed = i + utf8.RuneLen(r)
		switch r {
		case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
			flush()
			if len(numbers) > 0 {
				if err := p.apply(command, numbers); err != nil {
					return bezier.Curve{}, 0, err
				}
				numbers = numbers[:0]
			}
			if r == 'Z' || r == 'z' {
				if !p.current.Equals(p.start) {
					p.segments = append(p.segments, bezier.LineSeg(p.current, p.start))
				}
				if consumed != len(data) {
					return bezier.Curve{}, 0, &MultiplePathsError{Consumed: consumed}
				}
				if len(p.segments) == 0 {
					return bezier.Curve{}, consumed, nil
				}
				return bezier.NewClosedCurve(p.segments...), consumed, nil
			}
			command = byte(r)
		case '-':
			// A minus ends the pending number and starts the next one,
			// unless it continues an exponent.
			if numLen > 0 && !exponentOpen(pending()) {
				flush()
				numStart, numLen = i, 1
			} else {
				extend(i)
			}
		case '+':
			// A plus is a separator unless it continues an exponent or
			// starts a number.
			if numLen > 0 && !exponentOpen(pending()) {
				flush()
			} else {
				extend(i)
			}
		case '.':
			// A second dot starts a new number: ".4.534" is 0.4, 0.534.
			if numLen > 0 && strings.Contains(pending(), ".") {
				flush()
				numStart, numLen = i, 1
			} else {
				extend(i)
			}
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'e', 'E':
			extend(i)
		case ',', ' ', '\t', '\n', '\r':
			flush()
		}
	}

	flush()
	if len(numbers) > 0 {
		if err := p.apply(command, numbers); err != nil {
			return bezier.Curve{}, 0, err
		}
	}
	if len(p.segments) == 0 {
		return bezier.Curve{}, consumed, nil
	}
	return bezier.NewCurve(p.segments...), consumed, nil
}

// exponentOpen reports whether a numeric token ends in an exponent marker,
// in which case a following sign continues the same number.
func exponentOpen(s string) bool {
	return s[len(s)-1] == 'e' || s[len(s)-1] == 'E'
}

// apply runs one command over its argument list. Commands repeat
// implicitly as long as full argument groups remain.
func (p *parser) apply(command byte, nums []float64) error {
	rel := command >= 'a' // lowercase commands use relative coordinates
	at := func(i int) bezier.Point {
		if rel {
			return p.current.Translate(bezier.Vec(nums[i], nums[i+1]))
		}
		return bezier.Pt(nums[i], nums[i+1])
	}
	lineTo := func(to bezier.Point) {
		p.segments = append(p.segments, bezier.LineSeg(p.current, to))
		p.current = to
	}

	switch command {
	case 'M', 'm':
		if len(nums)%2 != 0 {
			return stray(command, len(nums)%2)
		}
		to := at(0)
		if p.moved {
			// A move after the first continues the path with a line.
			p.segments = append(p.segments, bezier.LineSeg(p.current, to))
		}
		p.current = to
		p.start = to
		p.moved = true
		for i := 2; i < len(nums); i += 2 {
			lineTo(at(i))
		}
	case 'L', 'l':
		if len(nums)%2 != 0 {
			return stray(command, len(nums)%2)
		}
		for i := 0; i < len(nums); i += 2 {
			lineTo(at(i))
		}
	case 'H', 'h':
		for _, x := range nums {
			if rel {
				x += p.current.X
			}
			lineTo(bezier.Pt(x, p.current.Y))
		}
	case 'V', 'v':
		for _, y := range nums {
			if rel {
				y += p.current.Y
			}
			lineTo(bezier.Pt(p.current.X, y))
		}
	case 'C', 'c':
		if len(nums)%6 != 0 {
			return stray(command, len(nums)%6)
		}
		for i := 0; i < len(nums); i += 6 {
			p1, p2, to := at(i), at(i+2), at(i+4)
			p.segments = append(p.segments, bezier.CubicSeg(p.current, p1, p2, to))
			p.current = to
		}
	case 'S', 's':
		if len(nums)%4 != 0 {
			return stray(command, len(nums)%4)
		}
		for i := 0; i < len(nums); i += 4 {
			p2, to := at(i), at(i+2)
			p.segments = append(p.segments, bezier.CubicSeg(p.current, p.reflected(bezier.CubicKind), p2, to))
			p.current = to
		}
	case 'Q', 'q':
		if len(nums)%4 != 0 {
			return stray(command, len(nums)%4)
		}
		for i := 0; i < len(nums); i += 4 {
			p1, to := at(i), at(i+2)
			p.segments = append(p.segments, bezier.QuadSeg(p.current, p1, to))
			p.current = to
		}
	case 'T', 't':
		if len(nums)%2 != 0 {
			return stray(command, len(nums)%2)
		}
		for i := 0; i < len(nums); i += 2 {
			to := at(i)
			p.segments = append(p.segments, bezier.QuadSeg(p.current, p.reflected(bezier.QuadKind), to))
			p.current = to
		}
	case 'A', 'a':
		if len(nums)%7 != 0 {
			return stray(command, len(nums)%7)
		}
		for i := 0; i < len(nums); i += 7 {
			to := at(i + 5)
			p.segments = append(p.segments, bezier.ArcSeg(p.current, to,
				nums[i], nums[i+1], nums[i+2], nums[i+3] != 0, nums[i+4] != 0))
			p.current = to
		}
	default:
		if command == 0 {
			return errors.New("svgpath: number before any command")
		}
		return fmt.Errorf("svgpath: unknown command %q", command)
	}
	return nil
}

// reflected returns the leading control point for a smooth command: the
// previous segment's last control point mirrored across the current
// point, or the current point itself when the previous segment is of
// another kind.
func (p *parser) reflected(kind bezier.SegmentKind) bezier.Point {
	n := len(p.segments)
	if n == 0 || p.segments[n-1].Kind != kind {
		return p.current
	}
	ctrl := p.segments[n-1].P1
	if kind == bezier.CubicKind {
		ctrl = p.segments[n-1].P2
	}
	return bezier.Pt(2*p.current.X-ctrl.X, 2*p.current.Y-ctrl.Y)
}

func stray(command byte, n int) error {
	return fmt.Errorf("svgpath: %d stray numbers after %q command", n, command)
}
