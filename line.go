package strview

import "strings"

// EOLState carries line-terminator state across SplitLine calls. When
// buffered input ends mid-terminator (a CR with its LF still in the
// next read, or vice versa), the state records the half already
// consumed so the completing byte at the start of the next buffer is
// recognized as part of the same terminator rather than an empty line.
//
// The state is only rewritten when a call finds a line. A call that
// consumes a completing byte but finds no further terminator leaves
// the pending state in place, so the same state can match again at the
// start of a later buffer; callers feeding many small buffers should
// expect a bare completing byte to be swallowed in that case (see
// SplitLine).
type EOLState uint8

const (
	// EOLNone means no half-terminator is pending.
	EOLNone EOLState = iota

	// EOLPendingCR means the previous line ended with a bare CR; a
	// leading LF in the next data completes the same terminator.
	EOLPendingCR

	// EOLPendingLF means the previous line ended with a bare LF; a
	// leading CR in the next data completes the same terminator.
	EOLPendingLF
)

// pending returns the state recording a consumed terminator byte.
func pending(term byte) EOLState {
	if term == '\r' {
		return EOLPendingCR
	}
	return EOLPendingLF
}

// completes reports whether byte b is the complementary half of the
// pending terminator.
func (e EOLState) completes(b byte) bool {
	return (e == EOLPendingCR && b == '\n') || (e == EOLPendingLF && b == '\r')
}

// SplitLine splits off the next line, treating any of CR, LF, CRLF, or
// LFCR as a single terminator. The returned line excludes the
// terminator; line and terminator are both consumed from the receiver.
//
// If eol is non-nil it is consulted and updated: a pending
// half-terminator completed by the first byte of the receiver is
// consumed before scanning, and after a line is found the state records
// whether that line's terminator could still be completed by upcoming
// data. Pass nil when the data is known to be complete.
//
// If no terminator remains, SplitLine returns Invalid and leaves the
// receiver unmodified (except for a consumed completing byte), letting
// callers distinguish "incomplete final line, wait for more data" from
// "found a line". The receiver then holds the terminator-less remainder.
//
// On that not-found path *eol is left untouched even when the call
// consumed the completing byte, so the still-pending state can consume
// a second completing byte from the next buffer; a blank line carried
// alone in a later buffer is then folded into the earlier terminator.
func (v *View) SplitLine(eol *EOLState) View {
	if !v.valid || v.Len() == 0 {
		return View{}
	}

	src := *v
	if eol != nil && eol.completes(src.base[src.lo]) {
		src.lo++
	}

	w := src.window()
	i := strings.IndexAny(w, "\r\n")
	if i < 0 {
		*v = src
		return View{}
	}

	line := src.slice(0, i)
	term := w[i]
	restLo := i + 1

	state := pending(term)
	if restLo < len(w) && state.completes(w[restLo]) {
		restLo++
		state = EOLNone
	}
	if eol != nil {
		*eol = state
	}
	*v = src.slice(restLo, len(w))
	return line
}
