// Package strength provides a deterministic, explainable password-strength
// analyzer.
//
// # Architecture
//
// The central type is [Analyzer].  It is built once from [Options] (a
// [Denylist] of known-weak passwords and a table of sequential motifs) and is
// immutable afterwards, so a single instance can be shared by any number of
// goroutines without locking.
//
// [Analyzer.Analyze] runs a fixed set of independent detectors over the
// password and folds their results into a [Report]:
//
//   - character classes: ASCII uppercase, ASCII lowercase, Unicode decimal
//     digits, and the fixed special set !@#$%^&*(),.?":{}|<>
//   - denylist membership (case-insensitive exact match)
//   - repeated runs (the same character three times in a row)
//   - sequential motifs (abc, 123, xyz, qwe, asd and their reversals)
//   - an entropy estimate (see [Entropy])
//
// Scoring, labelling, and advice are pure functions of those detector
// results: [Score], [LabelFor], and [Recommend].  Both the score deltas and
// the advice strings are kept in rule tables so the policy can be read (and
// extended) without touching detector code.
//
// # Quick start
//
//	a := strength.NewDefaultAnalyzer()
//	r := a.Analyze("correct horse battery staple")
//	fmt.Println(r.Score, r.Label, r.Recommendations)
//
// # Denylists
//
// [DefaultDenylist] holds a small embedded list of frequently breached
// passwords.  Larger external lists can be loaded with [LoadSetDenylist]
// (exact) or [LoadBloomDenylist] (probabilistic, bounded memory, false
// positives possible at the configured rate).
//
// # Entropy
//
// The entropy estimate is derived from the password's own symbol
// frequencies, not from an assumed alphabet.  It is biased toward the
// specific password and is not a cryptographic strength bound.
//
// # Privacy
//
// The package never stores, logs, or transmits the password.  Nothing in a
// [Report] can be used to reconstruct it.
package strength
