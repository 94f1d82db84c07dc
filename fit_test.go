package bezier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFitCubicLeastSquaresRecovers(t *testing.T) {
	// Sampling a cubic at known parameters and solving with those same
	// parameters returns the original control points.
	seg := CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	ts := Uniform.TValues(make([]Point, 20))
	points := seg.SampleAt(ts)

	got, err := FitCubicLeastSquares(points, ts)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, seg, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestFitCubicDemo(t *testing.T) {
	seg := CubicSeg(Pt(50, 200), Pt(100, 50), Pt(200, 50), Pt(250, 200))
	points := seg.SamplePoints(4)

	// Chord length parameters assign the samples slightly different t
	// values than they were generated with, so the interior control points
	// move while the fit still passes through every sample.
	got, err := FitCubic(points, ChordLength)
	if err != nil {
		t.Fatal(err)
	}
	want := CubicSeg(Pt(50, 200), Pt(38.61, 58.62), Pt(261.39, 58.62), Pt(250, 200))
	diff(t, want, got, cmpopts.EquateApprox(0, 0.01))

	// FitCubic is exactly the least squares solve with heuristic
	// parameters.
	explicit, err := FitCubicLeastSquares(points, ChordLength.TValues(points))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, explicit)

	// With uniform parameters the four samples pin down the original.
	uniform, err := FitCubic(points, Uniform)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, seg, uniform, cmpopts.EquateApprox(0, 1e-9))
}

func TestFitCubicEndpoints(t *testing.T) {
	seg := CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	tests := []struct {
		samples int
		limit   float64
	}{
		{10, 0.1},
		{20, 0.5},
	}
	for _, tc := range tests {
		points := seg.SamplePoints(tc.samples)
		got, err := FitCubic(points, ChordLength)
		if err != nil {
			t.Fatal(err)
		}
		if d := got.P0.Distance(seg.P0); d > tc.limit {
			t.Errorf("%d samples: start drifted %v", tc.samples, d)
		}
		if d := got.P3.Distance(seg.P3); d > tc.limit {
			t.Errorf("%d samples: end drifted %v", tc.samples, d)
		}
	}
}

func TestFitCubicInterpolatesFourPoints(t *testing.T) {
	// With exactly four samples the system is square and the fit
	// interpolates.
	points := []Point{Pt(0, 0), Pt(1, 1.5), Pt(2, 1.8), Pt(3, 0)}
	ts := ChordLength.TValues(points)
	seg, err := FitCubicLeastSquares(points, ts)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range points {
		assertNear(t, seg.Eval(ts[i]), p, 1e-9)
	}
}

func TestFitCubicReordersBackwardFit(t *testing.T) {
	// Parameters running from 1 down to 0 solve to the reversed curve; the
	// fit flips it back so that it starts near the first sample.
	seg := CubicSeg(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	points := seg.SamplePoints(20)
	ts := make([]float64, len(points))
	for i := range ts {
		ts[i] = 1 - float64(i)/float64(len(ts)-1)
	}

	got, err := FitCubicLeastSquares(points, ts)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, seg, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestFitErrors(t *testing.T) {
	var fitErr *FitError

	_, err := FitCubic([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, ChordLength)
	if !errors.As(err, &fitErr) {
		t.Fatalf("got %v, want a FitError", err)
	}
	diff(t, "bezier: at least 4 points are required and the number of points must match the number of t values", err.Error())

	four := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	if _, err := FitCubicLeastSquares(four, []float64{0, 0.5, 1}); err == nil {
		t.Error("mismatched parameter count did not fail")
	}

	// Coincident points give every sample the same parameter, which makes
	// the normal equations singular.
	same := []Point{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	_, err = FitCubic(same, ChordLength)
	if !errors.As(err, &fitErr) {
		t.Fatalf("got %v, want a FitError", err)
	}
}

func BenchmarkFitCubic(b *testing.B) {
	shape := CubicSeg(Pt(50, 200), Pt(25, 100), Pt(275, 100), Pt(250, 200))
	for _, n := range []int{10, 100, 1000} {
		points := shape.SamplePoints(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				FitCubic(points, ChordLength)
			}
		})
	}
}
