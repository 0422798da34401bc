package montecarlo

const (
	// DefaultGridResolution is the number of evenly spaced points used to find max_y.
	DefaultGridResolution = 1000

	// DefaultBatchSize is how many points are drawn between two cancellation checks.
	DefaultBatchSize = 1 << 16

	DefaultConfidenceLevel = 0.95
)
