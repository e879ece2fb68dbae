package strength

import "errors"

// Sentinel errors returned while building an [Analyzer] or a [Denylist].
//
// Analysis itself never fails; errors only arise from configuration.
var (
	// ErrInvalidOption is returned when a constructor is called with a
	// value outside its allowed range (e.g., a motif that is not exactly
	// three characters, or a bloom false-positive rate outside (0, 1)).
	ErrInvalidOption = errors.New("strength: invalid option value")

	// ErrNilDenylist is returned by [NewAnalyzer] when [Options].Denylist
	// is nil.
	ErrNilDenylist = errors.New("strength: denylist must not be nil")

	// ErrEmptyDenylist is returned by the denylist loaders when the source
	// contains no usable entries.
	ErrEmptyDenylist = errors.New("strength: denylist source has no entries")
)
