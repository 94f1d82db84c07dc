package bezier

import (
	"math"
	"math/rand"
	"slices"
)

// goldenRatio is the interval reduction factor of the golden-section line
// search.
const goldenRatio = 0.618033988749895

// varproLineSearchSteps is the number of golden-section refinements per
// iteration of [FitCubicWeakVarPro].
const varproLineSearchSteps = 10

// GradientParams tunes the stochastic parameter search of
// [FitCubicWeakVarPro].
type GradientParams struct {
	// MinStepSize and MaxStepSize bracket the step sizes explored along the
	// Gauss-Newton direction.
	MinStepSize float64
	MaxStepSize float64
	// NumRandomSamples is the number of randomly perturbed parameter
	// vectors tried around the line search result each iteration.
	NumRandomSamples int
	// RandomScale is the standard deviation of the Gaussian noise applied
	// to each parameter, relative to that parameter's step.
	RandomScale float64
	// Rand is the source of the perturbations. When nil, a fixed-seed
	// source is used, making the fit deterministic.
	Rand *rand.Rand
}

// DefaultGradientParams returns the parameters that [FitCubicWeakVarPro]
// uses when it is passed nil.
func DefaultGradientParams() GradientParams {
	return GradientParams{
		MinStepSize:      1e-6,
		MaxStepSize:      10.0,
		NumRandomSamples: 10,
		RandomScale:      0.01,
		Rand:             defaultRand(),
	}
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// FitCubicWeakVarPro fits a single cubic Bézier segment to the points with a
// weak form of variable projection: the control points are always the exact
// least squares solution for the current parameters, while the parameters
// follow a golden-section line search along the Gauss-Newton direction,
// hedged with a handful of random perturbations. A step is taken only when
// it strictly decreases the residual; the first non-improving step ends the
// iteration, as does every point coming within tolerance of the curve, or
// maxIterations rounds.
//
// params configures the search; nil selects [DefaultGradientParams]. All
// randomness comes from params.Rand, so runs with the same source seed are
// reproducible.
func FitCubicWeakVarPro(points []Point, maxIterations int, tolerance float64, params *GradientParams) (Segment, error) {
	var p GradientParams
	if params != nil {
		p = *params
	} else {
		p = DefaultGradientParams()
	}
	if p.Rand == nil {
		p.Rand = defaultRand()
	}

	if len(points) < 4 {
		return Segment{}, &FitError{Reason: errTooFewPoints}
	}

	ts := ChordLength.TValues(points)
	seg, err := FitCubicLeastSquares(points, ts)
	if err != nil {
		return Segment{}, err
	}
	prevLoss := residualNorm(points, ts, seg)

	for iter := 0; iter < maxIterations; iter++ {
		if withinTolerance(points, seg, tolerance) {
			break
		}

		next, loss, err := varproUpdateT(points, ts, seg, &p)
		if err != nil {
			return Segment{}, err
		}
		if prevLoss < loss {
			break
		}
		ts = next
		prevLoss = loss

		seg, err = FitCubicLeastSquares(points, ts)
		if err != nil {
			return Segment{}, err
		}
	}
	return seg, nil
}

// varproUpdateT computes the next parameter vector and its loss. It keeps
// the current parameters when no candidate improves on them.
func varproUpdateT(points []Point, ts []float64, seg Segment, params *GradientParams) ([]float64, float64, error) {
	delta, err := gaussNewtonDelta(points, ts, seg)
	if err != nil {
		return nil, 0, err
	}

	step := bestStepSize(points, ts, delta, params.MinStepSize, params.MaxStepSize)
	base := make([]float64, len(ts))
	for i, t := range ts {
		base[i] = min(max(t+step*delta[i], 0.0), 1.0)
	}
	adjustT(base)

	candidates := tVariations(base, delta, params)
	candidates = append(candidates, base)

	best := ts
	bestLoss := math.Inf(1)
	for _, cand := range candidates {
		candSeg, err := FitCubicLeastSquares(points, cand)
		if err != nil {
			continue
		}
		if loss := residualNorm(points, cand, candSeg); loss < bestLoss {
			bestLoss = loss
			best = cand
		}
	}

	originalLoss := residualNorm(points, ts, seg)
	if bestLoss < originalLoss {
		return best, bestLoss, nil
	}
	return ts, originalLoss, nil
}

// bestStepSize narrows [lo, hi] by golden-section search on the loss of
// stepping the parameters by s·delta, and returns the midpoint of the final
// bracket.
func bestStepSize(points []Point, ts, delta []float64, lo, hi float64) float64 {
	a, b := lo, hi
	c := b - goldenRatio*(b-a)
	d := a + goldenRatio*(b-a)
	fc := stepLoss(points, ts, delta, c)
	fd := stepLoss(points, ts, delta, d)
	for i := 0; i < varproLineSearchSteps; i++ {
		if fc < fd {
			b = d
			d = c
			fd = fc
			c = b - goldenRatio*(b-a)
			fc = stepLoss(points, ts, delta, c)
		} else {
			a = c
			c = d
			fc = fd
			d = a + goldenRatio*(b-a)
			fd = stepLoss(points, ts, delta, d)
		}
	}
	return (a + b) / 2.0
}

// stepLoss is the residual norm after stepping the parameters by s·delta and
// re-solving for control points. A step whose solve fails scores +Inf, so
// the search steers around it.
func stepLoss(points []Point, ts, delta []float64, s float64) float64 {
	stepped := make([]float64, len(ts))
	for i, t := range ts {
		stepped[i] = min(max(t+s*delta[i], 0.0), 1.0)
	}
	seg, err := FitCubicLeastSquares(points, stepped)
	if err != nil {
		return math.Inf(1)
	}
	return residualNorm(points, stepped, seg)
}

// tVariations returns the candidate parameter vectors for one iteration: a
// copy of base followed by NumRandomSamples Gaussian perturbations of it.
func tVariations(base, delta []float64, params *GradientParams) [][]float64 {
	out := make([][]float64, 0, params.NumRandomSamples+1)
	out = append(out, slices.Clone(base))
	for i := 0; i < params.NumRandomSamples; i++ {
		cand := make([]float64, len(base))
		for j, t := range base {
			cand[j] = min(max(t+params.Rand.NormFloat64()*params.RandomScale*delta[j], 0.0), 1.0)
		}
		adjustT(cand)
		out = append(out, cand)
	}
	return out
}
