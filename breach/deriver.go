package breach

import (
	"fmt"
	"sort"
	"strings"
)

// DriverName identifies a digest driver.
type DriverName string

const (
	// DriverSHA1 selects SHA-1, as required by the Pwned Passwords range API.
	DriverSHA1 DriverName = "sha1"
	// DriverSHA256 selects SHA-256.
	DriverSHA256 DriverName = "sha256"
	// DriverBlake2b selects BLAKE2b-256.
	DriverBlake2b DriverName = "blake2b"
	// DriverSHA3 selects SHA3-256.
	DriverSHA3 DriverName = "sha3"
)

// ParseDriverName validates s (case-insensitive) against the built-in
// drivers.
func ParseDriverName(s string) (DriverName, error) {
	name := DriverName(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := digests[name]; !ok {
		return "", fmt.Errorf("%w: %q (known: %s)", ErrDriverNotFound, s, knownDrivers())
	}
	return name, nil
}

func knownDrivers() string {
	names := make([]string, 0, len(digests))
	for n := range digests {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Deriver turns a password into a lookup [Key].
//
// All implementations must be safe for concurrent use by multiple
// goroutines and must be deterministic: the same password always yields
// the same Key.
type Deriver interface {
	// Derive hashes password and splits the digest into prefix and suffix.
	Derive(password string) Key

	// Driver returns the DriverName implemented by this deriver.
	Driver() DriverName
}

// Key is a derived lookup key.  Only the prefix is accessible; the suffix
// is used locally by [Key.Lookup].
type Key struct {
	driver DriverName
	prefix string
	suffix string
}

// Driver returns the digest driver that produced the key.
func (k Key) Driver() DriverName { return k.driver }

// Prefix returns the uppercase hex prefix to send to a range endpoint.
func (k Key) Prefix() string { return k.prefix }

// String returns the prefix.  The suffix is never formatted.
func (k Key) String() string { return k.prefix }

// GoString keeps %#v from printing the suffix.
func (k Key) GoString() string {
	return fmt.Sprintf("breach.Key{Driver:%q, Prefix:%q}", k.driver, k.prefix)
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.suffix == "" }
