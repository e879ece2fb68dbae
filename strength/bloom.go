package strength

import (
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate is the false-positive rate used by
// [LoadBloomDenylist] callers that have no stronger preference.
const DefaultFalsePositiveRate = 0.001

// BloomDenylist is a probabilistic [Denylist] for very large external
// lists (millions of entries) where an exact set would not fit in memory.
//
// Contains never returns false for a listed password.  It may return true
// for an unlisted one with probability close to the configured
// false-positive rate, which would flag that password as common.
type BloomDenylist struct {
	filter *bloom.BloomFilter
	n      int
	fpRate float64
}

// LoadBloomDenylist reads entries from r (same line format as
// [LoadSetDenylist]) into a bloom filter sized for the entry count and
// fpRate.  Returns [ErrInvalidOption] if fpRate is not in (0, 1) and
// [ErrEmptyDenylist] if r yields no entries.
func LoadBloomDenylist(r io.Reader, fpRate float64) (*BloomDenylist, error) {
	if fpRate <= 0 || fpRate >= 1 {
		return nil, fmt.Errorf("%w: false-positive rate %g must be in (0, 1)",
			ErrInvalidOption, fpRate)
	}

	var entries []string
	if err := scanEntries(r, func(w string) { entries = append(entries, w) }); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyDenylist
	}

	f := bloom.NewWithEstimates(uint(len(entries)), fpRate)
	for _, w := range entries {
		f.AddString(w)
	}
	return &BloomDenylist{filter: f, n: len(entries), fpRate: fpRate}, nil
}

// Contains tests the lowercased password against the filter.
func (d *BloomDenylist) Contains(password string) bool {
	if password == "" {
		return false
	}
	return d.filter.TestString(strings.ToLower(password))
}

// Len returns the number of entries the filter was built from, including
// duplicates.
func (d *BloomDenylist) Len() int { return d.n }

// FalsePositiveRate returns the rate the filter was sized for.
func (d *BloomDenylist) FalsePositiveRate() float64 { return d.fpRate }
