package bigram

import "errors"

// Sentinel errors returned by training, scoring, generation, and snapshot
// import. All are recoverable caller-facing conditions; match them with
// errors.Is.
var (
	ErrEmptyCorpus           = errors.New("corpus yields fewer than two characters")
	ErrInvalidAlpha          = errors.New("smoothing alpha must be positive")
	ErrInvalidTemperature    = errors.New("temperature must be positive")
	ErrInvalidLength         = errors.New("length must be non-negative")
	ErrEmptyModel            = errors.New("model has no vocabulary")
	ErrNoScorableTransitions = errors.New("no transitions could be scored")
	ErrMalformedSnapshot     = errors.New("malformed snapshot")
)
