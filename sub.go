package strview

// Sub returns the [begin, end) slice of the view.
//
// Negative indexes count back from the end of the view (length + index)
// and are resolved first. The resolved range is then validated: if
// begin > end, begin is at or past the view's length, or end resolves
// below zero, the request is nonsensical and Sub returns Invalid.
// Otherwise begin and end are clamped into [0, length] before slicing,
// which makes Sub(v, 0, math.MaxInt) a safe idiom for "rest of view".
// The resolve, validate, clamp order is load-bearing: reordering
// changes the result for inputs like Sub(v, -1000, 2).
//
// An empty or inverted-but-valid request on a non-empty view yields a
// zero-length view still anchored at the requested offset in v's
// storage. Sub of a valid-empty view returns it unchanged; Sub of an
// Invalid view returns Invalid.
func (v View) Sub(begin, end int) View {
	if !v.valid {
		return View{}
	}
	n := v.Len()
	if n == 0 {
		return v
	}
	if begin < 0 {
		begin = n + begin
	}
	if end < 0 {
		end = n + end
	}
	if begin > end || begin >= n || end < 0 {
		return View{}
	}
	if begin < 0 {
		begin = 0
	}
	if end > n {
		end = n
	}
	return v.slice(begin, end)
}

// TrimStart returns v with leading bytes that are members of cutset
// removed. Membership is case-sensitive. Trimming stops at the first
// non-member or when the view becomes empty.
func (v View) TrimStart(cutset View) View {
	for v.valid && v.lo < v.hi && containsChar(cutset, v.base[v.lo], true) {
		v.lo++
	}
	return v
}

// TrimEnd returns v with trailing cutset members removed.
func (v View) TrimEnd(cutset View) View {
	for v.valid && v.lo < v.hi && containsChar(cutset, v.base[v.hi-1], true) {
		v.hi--
	}
	return v
}

// Trim returns v with both leading and trailing cutset members removed.
func (v View) Trim(cutset View) View {
	return v.TrimStart(cutset).TrimEnd(cutset)
}
