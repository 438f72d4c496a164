// Package goversion parses and compares Go release versions so demos can be
// labeled and filtered by the release that introduced their idioms.
package goversion

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Version identifies a Go release such as go1.21 or go1.23.4.
// Pre-release suffixes (rc, beta) are ignored; only the numeric parts matter
// for era gating.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Zero is the unknown version. It compares lower than every real release, so
// gating against it never hides a demo.
var Zero = Version{}

// V is shorthand for a major.minor version.
func V(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// Parse reads a version like "go1.21", "1.21.3" or "go1.22rc1".
// The leading "go" is optional. Trailing pre-release text after the last
// numeric component is dropped, matching how the toolchain names candidates.
func Parse(s string) (Version, error) {
	raw := s
	s = strings.TrimPrefix(strings.TrimSpace(s), "go")
	if s == "" {
		return Zero, fmt.Errorf("goversion: empty version %q", raw)
	}

	var v Version
	var ok bool
	if v.Major, s, ok = cutInt(s); !ok {
		return Zero, fmt.Errorf("goversion: malformed version %q", raw)
	}
	if s == "" {
		return v, nil
	}
	if s[0] != '.' {
		// "go1rc1" style: numeric prefix parsed, suffix dropped.
		return v, nil
	}
	if v.Minor, s, ok = cutInt(s[1:]); !ok {
		return Zero, fmt.Errorf("goversion: malformed minor in %q", raw)
	}
	if s == "" || s[0] != '.' {
		// Remaining text is a pre-release tag ("rc1", "beta2"); ignore it.
		return v, nil
	}
	if v.Patch, _, ok = cutInt(s[1:]); !ok {
		return Zero, fmt.Errorf("goversion: malformed patch in %q", raw)
	}
	return v, nil
}

// MustParse is Parse for trusted literals.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Current reports the release of the running toolchain. Development builds
// ("devel +hash") yield (Zero, false).
func Current() (Version, bool) {
	v, err := Parse(runtime.Version())
	if err != nil {
		return Zero, false
	}
	return v, true
}

// Compare orders two versions: -1, 0 or +1.
func Compare(a, b Version) int {
	if c := cmpInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmpInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	return cmpInt(a.Patch, b.Patch)
}

// AtLeast reports whether v is min or newer.
func (v Version) AtLeast(min Version) bool {
	return Compare(v, min) >= 0
}

// IsZero reports whether v is the unknown version.
func (v Version) IsZero() bool {
	return v == Zero
}

// String renders the canonical short form: "go1.21" or "go1.21.3".
// The patch component is omitted when zero, matching release notes usage.
func (v Version) String() string {
	if v.IsZero() {
		return "go?"
	}
	if v.Patch == 0 {
		return fmt.Sprintf("go%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("go%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cutInt splits the leading decimal run off s.
func cutInt(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, "", false
	}
	return n, s[i:], true
}
