package strength_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/hasbyte1/go-password-strength/strength"
)

// ──────────────────────────────────────────────────────────────────────────────
// Score
// ──────────────────────────────────────────────────────────────────────────────

func TestScore_Table(t *testing.T) {
	cases := []struct {
		name string
		r    strength.Report
		want int
	}{
		{"nothing", strength.Report{}, 0},
		{"len 8", strength.Report{Length: 8}, 20},
		{"len 11", strength.Report{Length: 11}, 20},
		{"len 12", strength.Report{Length: 12}, 30},
		{"len 15", strength.Report{Length: 15}, 30},
		{"len 16", strength.Report{Length: 16}, 40},
		{"len 100", strength.Report{Length: 100}, 40},
		{"upper", strength.Report{HasUppercase: true}, 15},
		{"lower", strength.Report{HasLowercase: true}, 15},
		{"digits", strength.Report{HasDigits: true}, 15},
		{"special", strength.Report{HasSpecial: true}, 15},
		{"all classes, len 16", strength.Report{
			Length: 16, HasUppercase: true, HasLowercase: true, HasDigits: true, HasSpecial: true,
		}, 100},
		{"common clamps at zero", strength.Report{Length: 8, HasLowercase: true, IsCommon: true}, 0},
		{"repeat", strength.Report{Length: 8, HasLowercase: true, HasRepeatedRun: true}, 25},
		{"sequential", strength.Report{Length: 8, HasLowercase: true, HasSequentialPattern: true}, 25},
		{"every penalty", strength.Report{
			Length: 16, HasUppercase: true, HasLowercase: true, HasDigits: true, HasSpecial: true,
			IsCommon: true, HasRepeatedRun: true, HasSequentialPattern: true,
		}, 30},
	}
	for _, tc := range cases {
		if got := strength.Score(tc.r); got != tc.want {
			t.Errorf("%s: Score = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScore_IgnoresDerivedFields(t *testing.T) {
	base := strength.Report{Length: 12, HasLowercase: true}
	derived := base
	derived.Score = 99
	derived.Label = strength.VeryStrong
	derived.EntropyEstimate = 123.45
	derived.Recommendations = []string{"x"}
	if strength.Score(base) != strength.Score(derived) {
		t.Fatal("Score must depend only on detector fields")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// LabelFor
// ──────────────────────────────────────────────────────────────────────────────

func TestLabelFor_Bands(t *testing.T) {
	cases := map[int]strength.Label{
		0:   strength.Weak,
		39:  strength.Weak,
		40:  strength.Moderate,
		69:  strength.Moderate,
		70:  strength.Strong,
		89:  strength.Strong,
		90:  strength.VeryStrong,
		100: strength.VeryStrong,
	}
	for score, want := range cases {
		if got := strength.LabelFor(score); got != want {
			t.Errorf("LabelFor(%d) = %v, want %v", score, got, want)
		}
	}
}

func TestLabel_String(t *testing.T) {
	cases := map[strength.Label]string{
		strength.Weak:       "Weak",
		strength.Moderate:   "Moderate",
		strength.Strong:     "Strong",
		strength.VeryStrong: "Very Strong",
		strength.Label(42):  "Label(42)",
	}
	for l, want := range cases {
		if got := l.String(); got != want {
			t.Errorf("Label(%d).String() = %q, want %q", int(l), got, want)
		}
	}
}

func TestLabel_TextRoundTrip(t *testing.T) {
	for _, l := range []strength.Label{strength.Weak, strength.Moderate, strength.Strong, strength.VeryStrong} {
		b, err := json.Marshal(l)
		if err != nil {
			t.Fatalf("marshal %v: %v", l, err)
		}
		var got strength.Label
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if got != l {
			t.Errorf("round trip %v -> %s -> %v", l, b, got)
		}
	}
}

func TestLabel_InvalidText(t *testing.T) {
	var l strength.Label
	if err := l.UnmarshalText([]byte("Mediocre")); !errors.Is(err, strength.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if _, err := strength.Label(-1).MarshalText(); !errors.Is(err, strength.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recommend
// ──────────────────────────────────────────────────────────────────────────────

func TestRecommend_FixedOrder(t *testing.T) {
	r := strength.Report{IsCommon: true, HasRepeatedRun: true, HasSequentialPattern: true}
	want := []string{
		strength.AdviceLength,
		strength.AdviceUppercase,
		strength.AdviceLowercase,
		strength.AdviceDigits,
		strength.AdviceSpecial,
		strength.AdviceCommon,
		strength.AdviceRepeated,
		strength.AdviceSequential,
	}
	if got := strength.Recommend(r); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestRecommend_Fallback(t *testing.T) {
	r := strength.Report{Length: 12, HasUppercase: true, HasLowercase: true, HasDigits: true, HasSpecial: true}
	got := strength.Recommend(r)
	if len(got) != 1 || got[0] != strength.AdviceNone {
		t.Fatalf("got %v, want only %q", got, strength.AdviceNone)
	}
}

func TestRecommend_LengthThreshold(t *testing.T) {
	full := strength.Report{HasUppercase: true, HasLowercase: true, HasDigits: true, HasSpecial: true}
	full.Length = strength.RecommendedLength - 1
	if got := strength.Recommend(full); got[0] != strength.AdviceLength {
		t.Fatalf("length %d: got %v", full.Length, got)
	}
	full.Length = strength.RecommendedLength
	if got := strength.Recommend(full); got[0] == strength.AdviceLength {
		t.Fatalf("length %d: unexpected length advice", full.Length)
	}
}

func TestReport_Issues(t *testing.T) {
	if (strength.Report{}).Issues() {
		t.Error("zero report has no issues")
	}
	for _, r := range []strength.Report{
		{IsCommon: true}, {HasRepeatedRun: true}, {HasSequentialPattern: true},
	} {
		if !r.Issues() {
			t.Errorf("%+v should report issues", r)
		}
	}
}
