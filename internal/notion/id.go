package notion

import (
	"regexp"
	"strings"
)

var (
	hyphenatedIDPattern = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	compactIDPattern    = regexp.MustCompile(`(?i)[0-9a-f]{32}`)
	canonicalIDPattern  = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// ExtractPageID searches s for a page identifier: a hyphenated UUID
// first, then a bare 32-hex-digit run. The first match wins. The second
// return value is false when s contains no identifier; that is an
// expected negative result, not an error.
func ExtractPageID(s string) (string, bool) {
	if m := hyphenatedIDPattern.FindString(s); m != "" {
		return CanonicalPageID(m), true
	}
	if m := compactIDPattern.FindString(s); m != "" {
		return CanonicalPageID(m), true
	}
	return "", false
}

// CanonicalPageID lower-cases a 32-hex identifier (hyphenated or not)
// and re-hyphenates it into the canonical 8-4-4-4-12 form. Input that
// is not 32 hex digits after stripping hyphens is returned lower-cased
// as is.
func CanonicalPageID(raw string) string {
	compact := strings.ToLower(strings.ReplaceAll(raw, "-", ""))
	if len(compact) != 32 {
		return compact
	}
	return strings.Join([]string{
		compact[0:8],
		compact[8:12],
		compact[12:16],
		compact[16:20],
		compact[20:],
	}, "-")
}

// IsCanonicalPageID reports whether s is already in canonical form.
func IsCanonicalPageID(s string) bool {
	return canonicalIDPattern.MatchString(s)
}
