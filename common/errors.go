package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidDomain is returned when the integration interval is malformed (a >= b).
	ErrorInvalidDomain = errors.New("invalid domain, lower bound must be less than upper bound")

	// ErrorInvalidSampleCount is returned for a non-positive sample count.
	ErrorInvalidSampleCount = errors.New("invalid sample count, must be positive")

	ErrorInvalidGridResolution = errors.New("invalid grid resolution, must be positive")

	// ErrorDegenerateFunction means the bounding rectangle has no positive, finite height.
	ErrorDegenerateFunction = errors.New("degenerate function, bounding height is not positive")

	// ErrorNegativeFunction means the integrand dips below zero on the interval,
	// rejection sampling over [0, max_y] is undefined for it.
	ErrorNegativeFunction = errors.New("function is negative on the interval")

	ErrorEmptySampleCounts = errors.New("empty sample counts")

	// ErrorOracleFailure is returned when a reference quadrature does not converge.
	ErrorOracleFailure = errors.New("oracle failed to converge")
)
