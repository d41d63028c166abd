package strview

import (
	"strings"

	"github.com/tidwall/match"
)

// FindFirst returns a view of the first occurrence of needle within v.
// The result windows the matching bytes inside v's storage, so it can
// drive SplitLeft and SplitRight. Returns Invalid if either view is
// invalid or there is no match. A valid empty needle matches
// immediately at the start of v.
func (v View) FindFirst(needle View) View {
	if !v.valid || !needle.valid {
		return View{}
	}
	i := strings.Index(v.window(), needle.window())
	if i < 0 {
		return View{}
	}
	return v.slice(i, i+needle.Len())
}

// FindLast returns a view of the last occurrence of needle within v.
// Same contract as FindFirst, scanning from the end. A valid empty
// needle matches immediately at the end of v.
func (v View) FindLast(needle View) View {
	if !v.valid || !needle.valid {
		return View{}
	}
	i := strings.LastIndex(v.window(), needle.window())
	if i < 0 {
		return View{}
	}
	return v.slice(i, i+needle.Len())
}

// Contains reports whether needle occurs within v.
func (v View) Contains(needle View) bool {
	return v.FindFirst(needle).IsValid()
}

// Match reports whether the window matches a wildcard pattern, where
// '*' matches any byte sequence and '?' matches any single byte.
// Returns false if either view is invalid.
func (v View) Match(pattern View) bool {
	if !v.valid || !pattern.valid {
		return false
	}
	return match.Match(v.window(), pattern.window())
}

// containsChar reports whether c is one of the bytes of set. The set is
// a view whose bytes are treated as a character set; an invalid set
// contains nothing.
func containsChar(set View, c byte, caseSensitive bool) bool {
	s := set.window()
	if caseSensitive {
		return strings.IndexByte(s, c) >= 0
	}
	u := upper(c)
	for i := 0; i < len(s); i++ {
		if upper(s[i]) == u {
			return true
		}
	}
	return false
}
