package strength

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed denylist.txt
var defaultDenylistRaw string

// Denylist is a read-only set of known-weak passwords.
//
// Implementations must fold case themselves: Contains receives the password
// as typed.  All implementations in this package are immutable after
// construction and safe for concurrent use.
type Denylist interface {
	// Contains reports whether password (compared case-insensitively) is
	// on the list.
	Contains(password string) bool

	// Len returns the number of entries the list was built from.
	Len() int
}

// SetDenylist is an exact, map-backed [Denylist].
type SetDenylist struct {
	words map[string]struct{}
}

// NewSetDenylist builds a SetDenylist from words.  Entries are trimmed and
// lowercased; empty entries are dropped.
func NewSetDenylist(words ...string) *SetDenylist {
	d := &SetDenylist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = normalizeEntry(w); w != "" {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// LoadSetDenylist reads one entry per line from r.  Blank lines and lines
// starting with '#' are skipped.  Returns [ErrEmptyDenylist] when r yields
// no entries.
func LoadSetDenylist(r io.Reader) (*SetDenylist, error) {
	d := &SetDenylist{words: make(map[string]struct{})}
	err := scanEntries(r, func(w string) { d.words[w] = struct{}{} })
	if err != nil {
		return nil, err
	}
	if len(d.words) == 0 {
		return nil, ErrEmptyDenylist
	}
	return d, nil
}

var (
	defaultDenylistOnce sync.Once
	defaultDenylist     *SetDenylist
)

// DefaultDenylist returns the embedded list of frequently breached
// passwords.  The same immutable instance is returned on every call.
func DefaultDenylist() *SetDenylist {
	defaultDenylistOnce.Do(func() {
		d, err := LoadSetDenylist(strings.NewReader(defaultDenylistRaw))
		if err != nil {
			panic(fmt.Sprintf("strength: embedded denylist: %v", err))
		}
		defaultDenylist = d
	})
	return defaultDenylist
}

// Contains reports whether the lowercased password is in the set.
func (d *SetDenylist) Contains(password string) bool {
	if password == "" {
		return false
	}
	_, ok := d.words[strings.ToLower(password)]
	return ok
}

// Len returns the number of distinct entries.
func (d *SetDenylist) Len() int { return len(d.words) }

func normalizeEntry(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// scanEntries calls add for every usable line of r.
func scanEntries(r io.Reader, add func(string)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := normalizeEntry(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		add(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("strength: reading denylist: %w", err)
	}
	return nil
}
