package strength

import "fmt"

// Label is the human-readable strength band derived from a score.
type Label int

const (
	// Weak covers scores in [0, 40).
	Weak Label = iota
	// Moderate covers scores in [40, 70).
	Moderate
	// Strong covers scores in [70, 90).
	Strong
	// VeryStrong covers scores in [90, 100].
	VeryStrong
)

var labelNames = [...]string{
	Weak:       "Weak",
	Moderate:   "Moderate",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

// String returns the display name of the label.
func (l Label) String() string {
	if l < Weak || l > VeryStrong {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// MarshalText implements [encoding.TextMarshaler] so that JSON and YAML
// encoders emit the display name rather than the integer.
func (l Label) MarshalText() ([]byte, error) {
	if l < Weak || l > VeryStrong {
		return nil, fmt.Errorf("%w: label %d", ErrInvalidOption, int(l))
	}
	return []byte(labelNames[l]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Label) UnmarshalText(text []byte) error {
	for i, name := range labelNames {
		if string(text) == name {
			*l = Label(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown label %q", ErrInvalidOption, text)
}

// Report is the result of analysing one password.
//
// Score is a pure function of the detector fields (Length through
// HasSequentialPattern), Label is a pure function of Score, and
// Recommendations is a pure function of the boolean detector fields.
// [Analyzer.Analyze] returns a fresh Report per call; the Recommendations
// slice is never shared between reports.
type Report struct {
	// Length is the number of Unicode code points in the password.
	Length int `json:"length" yaml:"length"`

	HasUppercase bool `json:"has_uppercase" yaml:"has_uppercase"`
	HasLowercase bool `json:"has_lowercase" yaml:"has_lowercase"`
	HasDigits    bool `json:"has_digits" yaml:"has_digits"`
	HasSpecial   bool `json:"has_special" yaml:"has_special"`

	// IsCommon reports a case-insensitive exact match in the denylist.
	IsCommon bool `json:"is_common" yaml:"is_common"`

	// HasRepeatedRun reports three identical consecutive characters.
	HasRepeatedRun bool `json:"has_repeated_run" yaml:"has_repeated_run"`

	// HasSequentialPattern reports a sequential motif (or its reversal).
	HasSequentialPattern bool `json:"has_sequential_pattern" yaml:"has_sequential_pattern"`

	// EntropyEstimate is the frequency-based estimate in bits, rounded to
	// two decimal places.  See [Entropy].
	EntropyEstimate float64 `json:"entropy_estimate" yaml:"entropy_estimate"`

	// Score is in [0, 100].
	Score int `json:"score" yaml:"score"`

	Label Label `json:"label" yaml:"label"`

	// Recommendations is never empty and follows the fixed advice order.
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// Issues reports whether any of the weakness detectors fired.
func (r Report) Issues() bool {
	return r.IsCommon || r.HasRepeatedRun || r.HasSequentialPattern
}
