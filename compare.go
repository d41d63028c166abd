package strview

import "strings"

// Equal reports whether two views have the same length and content.
// Identical windows compare equal without inspecting bytes. An Invalid
// view carries no content and therefore equals any zero-length view,
// including another Invalid one.
func (v View) Equal(o View) bool {
	return v.window() == o.window()
}

// EqualFold is Equal with ASCII case folding. Only the 26 ASCII letters
// fold; bytes outside that range compare exactly.
func (v View) EqualFold(o View) bool {
	a, b := v.window(), o.window()
	if len(a) != len(b) {
		return false
	}
	if a == b {
		return true
	}
	for i := 0; i < len(a); i++ {
		if upper(a[i]) != upper(b[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether v begins with prefix. An Invalid prefix is
// only a prefix of an Invalid view; a valid-empty prefix is a prefix of
// everything.
func (v View) HasPrefix(prefix View) bool {
	if !prefix.valid {
		return !v.valid
	}
	a, p := v.window(), prefix.window()
	return len(a) >= len(p) && a[:len(p)] == p
}

// HasPrefixFold is HasPrefix with ASCII case folding.
func (v View) HasPrefixFold(prefix View) bool {
	if !prefix.valid {
		return !v.valid
	}
	a, p := v.window(), prefix.window()
	if len(a) < len(p) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if upper(a[i]) != upper(p[i]) {
			return false
		}
	}
	return true
}

// Compare orders two views lexicographically by bytes. The result is
// negative, zero, or positive as v sorts before, equal to, or after o.
// When one view is a prefix of the other, the longer sorts after.
// Invalid views behave as zero-length and sort first. Compare defines a
// total order suitable for sorting.
func (v View) Compare(o View) int {
	a, b := v.window(), o.window()
	n := min(len(a), len(b))
	if c := strings.Compare(a[:n], b[:n]); c != 0 {
		return c
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return 0
}

// upper folds an ASCII lowercase letter to uppercase.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}
