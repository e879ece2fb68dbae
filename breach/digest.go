package breach

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DefaultPrefixLen is the number of hex characters exposed by default.
// Five matches the Pwned Passwords range API (16^5 buckets).
const DefaultPrefixLen = 5

// Options configures a [DigestDeriver].
type Options struct {
	// PrefixLen is the number of leading hex characters placed in the
	// public prefix.  Valid range: [1, digest hex length - 1].
	// Default: [DefaultPrefixLen] (5).
	PrefixLen int
}

// DefaultOptions returns Options with [DefaultPrefixLen].
func DefaultOptions() Options {
	return Options{PrefixLen: DefaultPrefixLen}
}

type digest struct {
	sum    func([]byte) []byte
	hexLen int
}

var digests = map[DriverName]digest{
	DriverSHA1: {
		sum:    func(b []byte) []byte { s := sha1.Sum(b); return s[:] },
		hexLen: 2 * sha1.Size,
	},
	DriverSHA256: {
		sum:    func(b []byte) []byte { s := sha256.Sum256(b); return s[:] },
		hexLen: 2 * sha256.Size,
	},
	DriverBlake2b: {
		sum:    func(b []byte) []byte { s := blake2b.Sum256(b); return s[:] },
		hexLen: 2 * blake2b.Size256,
	},
	DriverSHA3: {
		sum:    func(b []byte) []byte { s := sha3.Sum256(b); return s[:] },
		hexLen: 64,
	},
}

// DigestDeriver derives keys from a fixed digest function.
//
// # Thread safety
//
// DigestDeriver is immutable after construction and safe for concurrent use.
type DigestDeriver struct {
	driver    DriverName
	d         digest
	prefixLen int
}

// NewDigestDeriver constructs a DigestDeriver for one of the built-in
// drivers.  Returns [ErrDriverNotFound] for an unknown driver and
// [ErrInvalidOption] if PrefixLen is outside [1, hexLen-1].
func NewDigestDeriver(driver DriverName, opts Options) (*DigestDeriver, error) {
	d, ok := digests[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, driver)
	}
	if opts.PrefixLen < 1 || opts.PrefixLen >= d.hexLen {
		return nil, fmt.Errorf("%w: prefix length %d must be in [1, %d] for %s",
			ErrInvalidOption, opts.PrefixLen, d.hexLen-1, driver)
	}
	return &DigestDeriver{driver: driver, d: d, prefixLen: opts.PrefixLen}, nil
}

// Driver returns the configured driver name.
func (dd *DigestDeriver) Driver() DriverName { return dd.driver }

// PrefixLen returns the configured prefix length in hex characters.
func (dd *DigestDeriver) PrefixLen() int { return dd.prefixLen }

// Derive hashes the UTF-8 bytes of password and splits the uppercase hex
// digest after PrefixLen characters.
func (dd *DigestDeriver) Derive(password string) Key {
	h := strings.ToUpper(hex.EncodeToString(dd.d.sum([]byte(password))))
	return Key{
		driver: dd.driver,
		prefix: h[:dd.prefixLen],
		suffix: h[dd.prefixLen:],
	}
}
