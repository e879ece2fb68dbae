package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-password-strength/breach"
	"github.com/hasbyte1/go-password-strength/strength"
)

func sampleReport() strength.Report {
	return strength.NewDefaultAnalyzer().Analyze("abcDEF123!@#")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"text": Text, "JSON": JSON, "yaml": YAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Text, false).Report(&buf, sampleReport()))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "PASSWORD ANALYSIS RESULTS")
	assert.Contains(t, out, "Strength: Strong (80/100)")
	assert.Contains(t, out, "Length: 12 characters")
	assert.Contains(t, out, "Entropy: 43.02 bits")
	assert.Contains(t, out, "✓ Uppercase letters")
	assert.Contains(t, out, "✓ Special characters")
	assert.Contains(t, out, "⚠ Contains sequential patterns")
	assert.NotContains(t, out, "No common issues detected")
	assert.Contains(t, out, "1. "+strength.AdviceSequential)
}

func TestReport_TextNoIssues(t *testing.T) {
	var buf bytes.Buffer
	r := strength.NewDefaultAnalyzer().Analyze("Kp7!mQ2@vL9#")
	require.NoError(t, New(Text, false).Report(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Strength: Very Strong (90/100)")
	assert.Contains(t, out, "✓ No common issues detected")
	assert.NotContains(t, out, "⚠")
}

func TestReport_TextMissingClasses(t *testing.T) {
	var buf bytes.Buffer
	r := strength.NewDefaultAnalyzer().Analyze("aaa111")
	require.NoError(t, New(Text, false).Report(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "✗ Uppercase letters")
	assert.Contains(t, out, "✗ Special characters")
	assert.Contains(t, out, "⚠ Contains repeated characters")
	assert.Equal(t, len(r.Recommendations), strings.Count(out, ". "))
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	want := sampleReport()
	require.NoError(t, New(JSON, false).Report(&buf, want))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "Strong", raw["label"])
	assert.EqualValues(t, 80, raw["score"])

	var got strength.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(YAML, false).Report(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "label: Strong")
	assert.Contains(t, out, "score: 80")
	assert.Contains(t, out, "has_sequential_pattern: true")

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "Strong", raw["label"])
}

func testKey(t *testing.T) breach.Key {
	t.Helper()
	d, err := breach.NewDigestDeriver(breach.DriverSHA1, breach.DefaultOptions())
	require.NoError(t, err)
	return d.Derive("password")
}

func TestBreachKey(t *testing.T) {
	k := testKey(t)

	var text bytes.Buffer
	require.NoError(t, New(Text, false).BreachKey(&text, k))
	assert.Equal(t, "sha1 5BAA6\n", text.String())

	var js bytes.Buffer
	require.NoError(t, New(JSON, false).BreachKey(&js, k))
	var got BreachKeyResult
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	assert.Equal(t, BreachKeyResult{Driver: "sha1", Prefix: "5BAA6"}, got)
	assert.NotContains(t, js.String(), "1E4C9B93F3F0682250B6CF8331B7EE68FD8")
}

func TestBreachMatch(t *testing.T) {
	k := testKey(t)

	var hit bytes.Buffer
	require.NoError(t, New(Text, false).BreachMatch(&hit, k, 42))
	assert.Contains(t, hit.String(), "seen 42 times")

	var miss bytes.Buffer
	require.NoError(t, New(Text, false).BreachMatch(&miss, k, 0))
	assert.Contains(t, miss.String(), "not found")

	var y bytes.Buffer
	require.NoError(t, New(YAML, false).BreachMatch(&y, k, 3))
	assert.Contains(t, y.String(), "count: 3")
	assert.Contains(t, y.String(), "prefix: 5BAA6")
}

func TestValue_TextFallsBackToYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Text, false).Value(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "a: 1\n", buf.String())
}
