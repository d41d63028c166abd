package strview

import "unsafe"

// View is a borrowed window into externally owned character data.
// It holds the backing string plus the [lo, hi) window into it, so a
// zero-length window keeps its position in the storage rather than
// collapsing to an unanchored empty string. The zero value is Invalid.
// Copying a View copies only the window, never the referenced bytes.
type View struct {
	base   string
	lo, hi int
	valid  bool
}

// Invalid returns an invalid view: no backing data, length zero.
// Equivalent to the zero value of View.
func Invalid() View {
	return View{}
}

// From returns a valid view of s. Go strings are never absent, so the
// result is always valid, even for the empty string.
func From(s string) View {
	return View{base: s, hi: len(s), valid: true}
}

// FromBytes returns a view borrowing b's storage without copying.
// A nil slice yields an Invalid view; a non-nil empty slice yields a
// valid empty view. The caller must not mutate or free b while any view
// derived from it is in use.
func FromBytes(b []byte) View {
	if b == nil {
		return View{}
	}
	if len(b) == 0 {
		return View{valid: true}
	}
	s := unsafe.String(&b[0], len(b))
	return View{base: s, hi: len(s), valid: true}
}

// IsValid reports whether the view references data. A valid view may
// still be empty.
func (v View) IsValid() bool {
	return v.valid
}

// Len returns the number of bytes in the window. Invalid views report 0.
func (v View) Len() int {
	return v.hi - v.lo
}

// IsEmpty reports whether the view spans zero bytes. True for both
// Invalid and valid-empty views.
func (v View) IsEmpty() bool {
	return v.Len() == 0
}

// String returns the window itself. No bytes are copied: the result
// shares the view's backing storage, so a View interpolates into
// formatted output as exactly Len bytes without materializing.
// Invalid views yield "".
func (v View) String() string {
	return v.base[v.lo:v.hi]
}

// Bytes returns a copy of the window's bytes, or nil if the view is
// invalid. This is the second of the two copying boundary operations,
// alongside Materialize.
func (v View) Bytes() []byte {
	if !v.valid {
		return nil
	}
	return []byte(v.window())
}

// Materialize copies the window into dst as a NUL-terminated C-style
// string. At most len(dst)-1 bytes are copied, then a NUL is written.
// Invalid or empty views produce an empty string in dst. Returns the
// number of bytes copied, excluding the terminator. A zero-length dst
// is left untouched and 0 is returned.
func (v View) Materialize(dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	n := copy(dst[:len(dst)-1], v.window())
	dst[n] = 0
	return n
}

// Swap exchanges two views. Only the windows are swapped; no data moves.
func Swap(a, b *View) {
	*a, *b = *b, *a
}

// window returns the windowed bytes. Invalid views window nothing.
func (v View) window() string {
	return v.base[v.lo:v.hi]
}

// slice returns the [i, j) subwindow as a view over the same backing
// storage. Offsets are relative to the window, not the backing string.
// Zero-length results keep their anchor because lo is stored explicitly;
// the gc compiler zeroes the data pointer of zero-length string slices,
// so the anchor cannot be recovered from the window itself.
func (v View) slice(i, j int) View {
	return View{base: v.base, lo: v.lo + i, hi: v.lo + j, valid: true}
}

// begin returns the address of the first byte of the window, anchored
// for zero-length windows too since the offset is explicit.
func (v View) begin() uintptr {
	return uintptr(unsafe.Pointer(unsafe.StringData(v.base))) + uintptr(v.lo)
}

// end returns the address one past the last byte of the window.
func (v View) end() uintptr {
	return v.begin() + uintptr(v.Len())
}
