// Package pointjson reads and writes curves as JSON arrays of points.
//
// The format is an array of point objects carrying coordinates and an
// on-curve marker:
//
//	[
//	  {"x": 0, "y": 0, "on": true},
//	  {"x": 1, "y": 1, "on": false},
//	  {"x": 2, "y": 1, "on": false},
//	  {"x": 3, "y": 0, "on": true}
//	]
//
// The "on" field defaults to true when omitted. An on-off-on run forms a
// quadratic segment, on-off-off-on forms a cubic, and two on-curve points
// in a row form a straight run, kept as a quadratic with its control
// point at the midpoint. Consecutive segments share their boundary point,
// so it appears only once in the array.
package pointjson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/houjing/bezier"
)

type pointInfo struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	On bool    `json:"on"`
}

func (p *pointInfo) UnmarshalJSON(data []byte) error {
	type raw pointInfo
	v := raw{On: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = pointInfo(v)
	return nil
}

func (p pointInfo) point() bezier.Point {
	return bezier.Pt(p.X, p.Y)
}

// Parse parses a JSON point array into a curve.
func Parse(data []byte) (bezier.Curve, error) {
	var points []pointInfo
	if err := json.Unmarshal(data, &points); err != nil {
		return bezier.Curve{}, fmt.Errorf("pointjson: %w", err)
	}
	if len(points) == 0 {
		return bezier.Curve{}, errors.New("pointjson: empty point array")
	}
	segments, err := assemble(points)
	if err != nil {
		return bezier.Curve{}, err
	}
	return bezier.NewCurve(segments...), nil
}

// assemble groups a point run into segments. Each segment starts at an
// on-curve point, and the closing on-curve point of one segment is the
// opening point of the next.
func assemble(points []pointInfo) ([]bezier.Segment, error) {
	var segments []bezier.Segment
	i := 0
	for i < len(points) {
		if !points[i].On {
			return nil, fmt.Errorf("pointjson: expected an on-curve point at index %d", i)
		}
		start := points[i].point()
		i++
		if i >= len(points) {
			break
		}
		if points[i].On {
			end := points[i].point()
			segments = append(segments, bezier.QuadSeg(start, start.Midpoint(end), end))
			continue
		}
		c1 := points[i].point()
		i++
		if i >= len(points) {
			return nil, errors.New("pointjson: curve cannot end with an off-curve point")
		}
		if points[i].On {
			segments = append(segments, bezier.QuadSeg(start, c1, points[i].point()))
			continue
		}
		c2 := points[i].point()
		i++
		if i >= len(points) || !points[i].On {
			return nil, errors.New("pointjson: want an on-curve point after two off-curve points")
		}
		segments = append(segments, bezier.CubicSeg(start, c1, c2, points[i].point()))
	}
	return segments, nil
}

// Encode converts a curve to a JSON point array.
//
// Every control point is written with "on" set to true, so the exact
// segment boundaries are not preserved; parsing the result yields a
// curve through the same points rather than the original segments.
func Encode(c bezier.Curve) ([]byte, error) {
	points := make([]pointInfo, 0, 4*len(c.Segments))
	for _, seg := range c.Segments {
		for _, pt := range seg.Points() {
			points = append(points, pointInfo{X: pt.X, Y: pt.Y, On: true})
		}
	}
	return json.Marshal(points)
}
