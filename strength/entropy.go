package strength

import "math"

// Entropy returns a frequency-based information estimate for password, in
// bits, rounded to two decimal places.
//
// For each distinct code point with probability p = count/length the
// estimator accumulates -p*log2(p), then multiplies the per-symbol sum by
// the length.  Because the probabilities come from the password itself the
// result is biased toward that password: "aaaa" scores 0 and "abcd" scores
// 8 regardless of how guessable either is.  It is not standard per-symbol
// Shannon entropy and is not a cryptographic bound.
//
// The empty string yields 0.  Invalid UTF-8 bytes are distinct symbols.
func Entropy(password string) float64 {
	return entropyOf(symbols(password))
}

func entropyOf(runes []rune) float64 {
	n := len(runes)
	if n == 0 {
		return 0
	}

	freq := make(map[rune]int, n)
	for _, r := range runes {
		freq[r]++
	}

	var perSymbol float64
	for _, count := range freq {
		p := float64(count) / float64(n)
		perSymbol -= p * math.Log2(p)
	}

	total := round2(perSymbol * float64(n))
	// A single repeated symbol gives -0 after rounding.
	if total <= 0 {
		return 0
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
