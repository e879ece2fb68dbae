// Package render turns analysis results into text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/hasbyte1/go-password-strength/breach"
	"github.com/hasbyte1/go-password-strength/strength"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("render: unknown format %q", s)
	}
}

// Renderer writes results in one format.
type Renderer struct {
	format Format
	styles styles
}

// New returns a Renderer for format.  With color false, text output carries
// no ANSI sequences.  Otherwise lipgloss picks the color profile from
// standard output.
func New(format Format, color bool) *Renderer {
	return &Renderer{format: format, styles: newStyles(color)}
}

// BreachKeyResult is the structured form of a derived lookup key.
type BreachKeyResult struct {
	Driver string `json:"driver" yaml:"driver"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// BreachMatchResult is the structured form of a range lookup.
type BreachMatchResult struct {
	Driver string `json:"driver" yaml:"driver"`
	Prefix string `json:"prefix" yaml:"prefix"`
	Count  int    `json:"count" yaml:"count"`
}

// Report writes r.
func (rd *Renderer) Report(w io.Writer, r strength.Report) error {
	if rd.format == Text {
		return rd.reportText(w, r)
	}
	return rd.encode(w, r)
}

// BreachKey writes the public part of k.
func (rd *Renderer) BreachKey(w io.Writer, k breach.Key) error {
	res := BreachKeyResult{Driver: string(k.Driver()), Prefix: k.Prefix()}
	if rd.format == Text {
		_, err := fmt.Fprintf(w, "%s %s\n", rd.styles.label(res.Driver), res.Prefix)
		return err
	}
	return rd.encode(w, res)
}

// BreachMatch writes the outcome of a range lookup.
func (rd *Renderer) BreachMatch(w io.Writer, k breach.Key, count int) error {
	res := BreachMatchResult{Driver: string(k.Driver()), Prefix: k.Prefix(), Count: count}
	if rd.format != Text {
		return rd.encode(w, res)
	}
	var err error
	if count > 0 {
		_, err = fmt.Fprintf(w, "%s seen %d times in known breaches\n", rd.styles.bad("⚠"), count)
	} else {
		_, err = fmt.Fprintf(w, "%s not found in the supplied range\n", rd.styles.good("✓"))
	}
	return err
}

// Value writes an arbitrary value in a structured format.  Text falls back
// to YAML.
func (rd *Renderer) Value(w io.Writer, v any) error {
	if rd.format == Text {
		return writeYAML(w, v)
	}
	return rd.encode(w, v)
}

func (rd *Renderer) encode(w io.Writer, v any) error {
	switch rd.format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("render: json: %w", err)
		}
		return nil
	case YAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("render: unknown format %q", rd.format)
	}
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Text
// ──────────────────────────────────────────────────────────────────────────────

const rule = "=================================================="

type styles struct {
	heading, good, bad, warn, label func(...string) string
	band                            map[strength.Label]lipgloss.Style
}

func newStyles(color bool) styles {
	plain := lipgloss.NewStyle()
	if !color {
		return styles{
			heading: plain.Render,
			good:    plain.Render,
			bad:     plain.Render,
			warn:    plain.Render,
			label:   plain.Render,
			band:    map[strength.Label]lipgloss.Style{},
		}
	}
	return styles{
		heading: lipgloss.NewStyle().Bold(true).Render,
		good:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render,
		bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render,
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render,
		label:   lipgloss.NewStyle().Faint(true).Render,
		band: map[strength.Label]lipgloss.Style{
			strength.Weak:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			strength.Moderate:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			strength.Strong:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
			strength.VeryStrong: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		},
	}
}

func (s styles) labelFor(l strength.Label) string {
	if st, ok := s.band[l]; ok {
		return st.Render(l.String())
	}
	return l.String()
}

func (rd *Renderer) reportText(w io.Writer, r strength.Report) error {
	s := rd.styles
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", rule, s.heading("PASSWORD ANALYSIS RESULTS"), rule)
	fmt.Fprintf(&b, "Strength: %s (%d/100)\n", s.labelFor(r.Label), r.Score)
	fmt.Fprintf(&b, "Length: %d characters\n", r.Length)
	fmt.Fprintf(&b, "Entropy: %.2f bits\n", r.EntropyEstimate)

	b.WriteString("\nCharacter Types:\n")
	for _, c := range []struct {
		ok   bool
		name string
	}{
		{r.HasUppercase, "Uppercase letters"},
		{r.HasLowercase, "Lowercase letters"},
		{r.HasDigits, "Numbers"},
		{r.HasSpecial, "Special characters"},
	} {
		mark := s.bad("✗")
		if c.ok {
			mark = s.good("✓")
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, c.name)
	}

	b.WriteString("\nSecurity Issues:\n")
	if r.IsCommon {
		fmt.Fprintf(&b, "  %s Common password detected\n", s.warn("⚠"))
	}
	if r.HasRepeatedRun {
		fmt.Fprintf(&b, "  %s Contains repeated characters\n", s.warn("⚠"))
	}
	if r.HasSequentialPattern {
		fmt.Fprintf(&b, "  %s Contains sequential patterns\n", s.warn("⚠"))
	}
	if !r.Issues() {
		fmt.Fprintf(&b, "  %s No common issues detected\n", s.good("✓"))
	}

	b.WriteString("\nRecommendations:\n")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
	}
	fmt.Fprintf(&b, "\n%s\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}
