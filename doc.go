// Package bezier provides 2D Bézier curve geometry and routines for fitting
// cubic Bézier curves to sample points.
//
// # Points and vectors
//
// The two basic value types are [Point], a position, and [Vec2], a
// displacement. Subtracting two points yields a vector; translating a point
// by a vector yields a point. Dot and cross products, lengths, angles, and
// normalization live on [Vec2], while distances, interpolation, and the
// tolerance-based [Point.Equals] live on [Point].
//
// # Segments and curves
//
// [Segment] is a tagged union over the supported curve kinds: lines,
// quadratic and cubic Béziers, and elliptical arcs. The polynomial kinds
// support evaluation, differentiation, subdivision, nearest-point queries,
// sampling, and affine transforms. Arcs are representation only: they can be
// stored, printed, and round-tripped through the codec packages, but every
// geometric operation on an arc panics.
//
// [Curve] is an ordered sequence of segments with a derived closed flag.
//
// # Geometry on raw control points
//
// The geometric core operates on bare control point slices, with the number
// of points (2, 3, or 4) selecting the curve degree: [Eval], [Tangent],
// [Split], [Merge], [MergeSequential], [Nearest], and [PerpendicularLine].
// The Segment methods wrap these. [Merge] deserves a note: it is the inverse
// of [Split], reconstructing a single curve from two halves, and reports
// failure for halves that could not have come from one curve.
//
// # Curve fitting
//
// Three functions fit a single cubic Bézier segment to at least four sample
// points. [FitCubic] solves the linear least squares problem in closed form,
// with the parameter of each sample estimated by a [Parameterization]
// heuristic. [FitCubicAlternating] improves on it by re-estimating the
// parameters between solves, either by nearest point projection or by a
// Gauss-Newton step. [FitCubicWeakVarPro] instead searches the step size
// along the Gauss-Newton direction and hedges with random perturbations,
// accepting only strictly improving steps; its randomness comes from an
// injected source, so fits are reproducible by default.
//
// Parsing and serializing curves is out of scope for this package; the
// svgpath and pointjson subpackages convert between [Curve] and the two
// text formats.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Fitting cubic Bézier curves] by Raph Levien
//   - [Least-Squares Fitting of Data with B-Spline Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Fitting cubic Bézier curves]: https://raphlinus.github.io/curves/2021/03/11/bezier-fitting.html
// [Least-Squares Fitting of Data with B-Spline Curves]: https://www.geometrictools.com/Documentation/BSplineCurveLeastSquaresFit.pdf
package bezier
