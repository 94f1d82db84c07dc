package bezier

// The numeric tolerances used throughout the package. They are variables so
// that callers working at unusual coordinate scales can adjust them.
var (
	// FloatTolerance bounds the per-coordinate difference below which two
	// points compare equal. See [Point.Equals].
	FloatTolerance = 1e-10

	// MergeTolerance bounds the endpoint gap and the geometric mismatch
	// allowed when reconstructing a single curve from two split halves. See
	// [Merge].
	MergeTolerance = 1e-3

	// NearestTolerance is the width of the parameter interval at which the
	// nearest-point refinement stops. See [Nearest].
	NearestTolerance = 1e-3
)
