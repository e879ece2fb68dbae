package strength

// Score bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// Label thresholds.  Each band includes its lower bound.
const (
	ModerateThreshold   = 40
	StrongThreshold     = 70
	VeryStrongThreshold = 90
)

// RecommendedLength is the length below which the length advice is emitted.
const RecommendedLength = 12

// Advice strings, in the order [Recommend] emits them.
const (
	AdviceLength     = "increase length to at least 12 characters"
	AdviceUppercase  = "add uppercase letters"
	AdviceLowercase  = "add lowercase letters"
	AdviceDigits     = "include numbers"
	AdviceSpecial    = "add special characters"
	AdviceCommon     = "avoid common passwords"
	AdviceRepeated   = "remove repeated character sequences"
	AdviceSequential = "avoid sequential patterns"

	// AdviceNone is the single recommendation emitted when nothing else
	// applies.
	AdviceNone = "no issues found; consider a password manager for uniqueness"
)

// scoreRule adds Delta to the score when When holds.
type scoreRule struct {
	When  func(r Report) bool
	Delta int
}

// scoreRules is the complete additive scoring policy.  Length bonuses are
// cumulative.
var scoreRules = []scoreRule{
	{func(r Report) bool { return r.Length >= 8 }, 20},
	{func(r Report) bool { return r.Length >= 12 }, 10},
	{func(r Report) bool { return r.Length >= 16 }, 10},
	{func(r Report) bool { return r.HasUppercase }, 15},
	{func(r Report) bool { return r.HasLowercase }, 15},
	{func(r Report) bool { return r.HasDigits }, 15},
	{func(r Report) bool { return r.HasSpecial }, 15},
	{func(r Report) bool { return r.IsCommon }, -50},
	{func(r Report) bool { return r.HasRepeatedRun }, -10},
	{func(r Report) bool { return r.HasSequentialPattern }, -10},
}

// adviceRule appends Advice when When holds.
type adviceRule struct {
	When   func(r Report) bool
	Advice string
}

// adviceRules is evaluated in order; the order is part of the contract.
var adviceRules = []adviceRule{
	{func(r Report) bool { return r.Length < RecommendedLength }, AdviceLength},
	{func(r Report) bool { return !r.HasUppercase }, AdviceUppercase},
	{func(r Report) bool { return !r.HasLowercase }, AdviceLowercase},
	{func(r Report) bool { return !r.HasDigits }, AdviceDigits},
	{func(r Report) bool { return !r.HasSpecial }, AdviceSpecial},
	{func(r Report) bool { return r.IsCommon }, AdviceCommon},
	{func(r Report) bool { return r.HasRepeatedRun }, AdviceRepeated},
	{func(r Report) bool { return r.HasSequentialPattern }, AdviceSequential},
}

// Score sums the policy deltas for the detector fields of r and clamps the
// result to [MinScore, MaxScore].  The Score, Label, Recommendations and
// EntropyEstimate fields of r are ignored.
func Score(r Report) int {
	score := 0
	for _, rule := range scoreRules {
		if rule.When(r) {
			score += rule.Delta
		}
	}
	return max(MinScore, min(MaxScore, score))
}

// LabelFor maps a score to its strength band.
func LabelFor(score int) Label {
	switch {
	case score < ModerateThreshold:
		return Weak
	case score < StrongThreshold:
		return Moderate
	case score < VeryStrongThreshold:
		return Strong
	default:
		return VeryStrong
	}
}

// Recommend returns the advice for the detector fields of r in fixed
// priority order.  The result is never empty: when no rule fires it holds
// exactly [AdviceNone].
func Recommend(r Report) []string {
	var out []string
	for _, rule := range adviceRules {
		if rule.When(r) {
			out = append(out, rule.Advice)
		}
	}
	if len(out) == 0 {
		out = []string{AdviceNone}
	}
	return out
}
