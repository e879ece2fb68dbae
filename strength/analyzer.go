package strength

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Options configures an [Analyzer].
type Options struct {
	// Denylist is consulted for the IsCommon flag.  Required.
	Denylist Denylist

	// Motifs are the three-character sequences flagged by the
	// HasSequentialPattern detector, forward or reversed.  Matching is
	// case-insensitive.  Default: [DefaultMotifs].
	Motifs []string
}

// DefaultOptions returns Options with [DefaultDenylist] and [DefaultMotifs].
func DefaultOptions() Options {
	return Options{
		Denylist: DefaultDenylist(),
		Motifs:   append([]string(nil), DefaultMotifs...),
	}
}

// Analyzer evaluates passwords against a fixed policy.
//
// # Thread safety
//
// Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	denylist Denylist
	// patterns holds every motif followed by its reversal, lowercased.
	patterns []string
}

// NewAnalyzer constructs an Analyzer from opts.
//
// Returns [ErrNilDenylist] if opts.Denylist is nil and [ErrInvalidOption]
// if any motif is not exactly three characters long.
func NewAnalyzer(opts Options) (*Analyzer, error) {
	if opts.Denylist == nil {
		return nil, ErrNilDenylist
	}
	patterns := make([]string, 0, 2*len(opts.Motifs))
	for _, m := range opts.Motifs {
		if utf8.RuneCountInString(m) != 3 {
			return nil, fmt.Errorf("%w: motif %q must be exactly 3 characters",
				ErrInvalidOption, m)
		}
		m = strings.ToLower(m)
		patterns = append(patterns, m, reverse(m))
	}
	return &Analyzer{denylist: opts.Denylist, patterns: patterns}, nil
}

// NewDefaultAnalyzer returns an Analyzer built from [DefaultOptions].
func NewDefaultAnalyzer() *Analyzer {
	a, err := NewAnalyzer(DefaultOptions())
	if err != nil {
		panic(fmt.Sprintf("strength: default options rejected: %v", err))
	}
	return a
}

// Denylist returns the denylist the Analyzer was built with.
func (a *Analyzer) Denylist() Denylist { return a.denylist }

// Analyze runs every detector on password and returns the assembled
// report.  It accepts any string, including the empty string and invalid
// UTF-8.  Each invalid byte counts as one character of its own for length,
// repeated runs and entropy.
func (a *Analyzer) Analyze(password string) Report {
	runes := symbols(password)
	classes := detectClasses(password)

	r := Report{
		Length:               len(runes),
		HasUppercase:         classes.upper,
		HasLowercase:         classes.lower,
		HasDigits:            classes.digit,
		HasSpecial:           classes.special,
		IsCommon:             a.denylist.Contains(password),
		HasRepeatedRun:       hasRepeatedRun(runes),
		HasSequentialPattern: hasSequentialPattern(strings.ToLower(password), a.patterns),
		EntropyEstimate:      entropyOf(runes),
	}
	r.Score = Score(r)
	r.Label = LabelFor(r.Score)
	r.Recommendations = Recommend(r)
	return r
}
