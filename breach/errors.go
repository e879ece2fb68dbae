package breach

import "errors"

// Sentinel errors returned by breach operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := key.Lookup(body)
//	if errors.Is(err, breach.ErrInvalidResponse) {
//	    // the range body is malformed
//	}
var (
	// ErrInvalidOption is returned when a constructor is called with a
	// parameter outside its allowed range (e.g., a prefix length that
	// would expose the whole digest).
	ErrInvalidOption = errors.New("breach: invalid option value")

	// ErrDriverNotFound is returned by [Manager.Driver], [NewDigestDeriver]
	// and [ParseDriverName] when the driver is unknown or unregistered.
	ErrDriverNotFound = errors.New("breach: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("breach: driver name must not be empty")

	// ErrNilDeriver is returned by [Manager.RegisterDriver] when a nil
	// [Deriver] is supplied.
	ErrNilDeriver = errors.New("breach: deriver must not be nil")

	// ErrEmptyKey is returned by [Key.Lookup] on the zero Key.
	ErrEmptyKey = errors.New("breach: key was not produced by a deriver")

	// ErrInvalidResponse is returned by [Key.Lookup] when a line of the
	// range body is not of the form SUFFIX:COUNT.
	ErrInvalidResponse = errors.New("breach: malformed range response")
)
