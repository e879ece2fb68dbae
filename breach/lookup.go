package breach

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Lookup scans a range response body for the key's own suffix and returns
// the breach count recorded against it, or 0 when absent.
//
// The body holds one SUFFIX:COUNT pair per line, as returned by the Pwned
// Passwords range API.  CRLF line endings and blank lines are tolerated,
// suffixes compare case-insensitively, and padding rows (count 0) count as
// absent.  Returns [ErrInvalidResponse] for a malformed line and
// [ErrEmptyKey] on the zero Key.
func (k Key) Lookup(body io.Reader) (int, error) {
	if k.IsZero() {
		return 0, ErrEmptyKey
	}

	sc := bufio.NewScanner(body)
	found := 0
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		suffix, countStr, ok := strings.Cut(line, ":")
		if !ok || !isHex(suffix) {
			return 0, fmt.Errorf("%w: line %d", ErrInvalidResponse, n)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count < 0 {
			return 0, fmt.Errorf("%w: line %d: bad count", ErrInvalidResponse, n)
		}
		if strings.EqualFold(suffix, k.suffix) {
			found = count
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("breach: reading range response: %w", err)
	}
	return found, nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
