package strview

// Splitting operations consume a prefix or suffix of the receiver,
// return the consumed piece, and mutate the receiver in place to the
// unconsumed remainder. The receiver acts as the cursor: each call
// advances it monotonically and never re-reads consumed bytes. The
// per-operation "not found" policy is part of the contract and differs
// between operations; see each method.

// SplitFirst scans forward for the first byte that is a member of the
// delims set and returns everything before it. The delimiter itself is
// consumed. If the delimiter was the last byte, the receiver becomes
// valid-empty so a splitting loop terminates by yielding empty views.
// If no delimiter is found, the entire view is returned and the
// receiver becomes Invalid, signalling "no more pieces".
func (v *View) SplitFirst(delims View) View {
	return v.splitFirst(delims, true)
}

// SplitFirstFold is SplitFirst with ASCII case-insensitive delimiter
// membership.
func (v *View) SplitFirstFold(delims View) View {
	return v.splitFirst(delims, false)
}

// SplitLast scans backward for the last delims member and returns the
// suffix after it, consuming the delimiter. The receiver keeps the
// prefix before the delimiter. Not-found policy mirrors SplitFirst:
// the whole view is returned and the receiver becomes Invalid.
func (v *View) SplitLast(delims View) View {
	return v.splitLast(delims, true)
}

// SplitLastFold is SplitLast with ASCII case-insensitive delimiter
// membership.
func (v *View) SplitLastFold(delims View) View {
	return v.splitLast(delims, false)
}

func (v *View) splitFirst(delims View, caseSensitive bool) View {
	if v.valid && delims.valid {
		w := v.window()
		for i := 0; i < len(w); i++ {
			if !containsChar(delims, w[i], caseSensitive) {
				continue
			}
			piece := v.slice(0, i)
			if i+1 < len(w) {
				*v = v.slice(i+1, len(w))
			} else {
				// Delimiter was the last byte. The remainder is empty
				// but stays valid, anchored at the delimiter.
				*v = v.slice(i, i)
			}
			return piece
		}
	}
	piece := *v
	*v = View{}
	return piece
}

func (v *View) splitLast(delims View, caseSensitive bool) View {
	if v.valid && delims.valid {
		w := v.window()
		for i := len(w) - 1; i >= 0; i-- {
			if !containsChar(delims, w[i], caseSensitive) {
				continue
			}
			var piece View
			if i+1 < len(w) {
				piece = v.slice(i+1, len(w))
			} else {
				// Delimiter was the last byte; the piece is empty but
				// valid, anchored at the delimiter.
				piece = v.slice(i, i)
			}
			*v = v.slice(0, i)
			return piece
		}
	}
	piece := *v
	*v = View{}
	return piece
}

// SplitIndex splits the view at a fixed offset, clamped to [0, Len].
// A non-negative index returns the first index bytes and retains the
// rest. A negative index returns the last |index| bytes (clamped) and
// retains the head: the sign selects which side is returned, not a
// different split point. Splitting an Invalid view returns Invalid and
// leaves the receiver untouched.
func (v *View) SplitIndex(index int) View {
	if !v.valid {
		return View{}
	}
	n := v.Len()
	neg := index < 0
	if neg {
		index = n + index
	}
	if index < 0 {
		index = 0
	}
	if index > n {
		index = n
	}
	head := v.slice(0, index)
	tail := v.slice(index, n)
	if neg {
		*v = head
		return tail
	}
	*v = tail
	return head
}

// SplitLeft splits at the boundary where pos begins. pos must be a view
// of memory inside the receiver, typically located by FindFirst or
// FindLast. Returns everything before pos and retains from pos's start
// onward. If pos's start does not lie within the receiver's window
// (inclusive of both ends), SplitLeft returns Invalid and the receiver
// is left unmodified.
func (v *View) SplitLeft(pos View) View {
	if !v.valid || !pos.valid {
		return View{}
	}
	p := pos.begin()
	if v.begin() <= p && p <= v.end() {
		return v.SplitIndex(int(p - v.begin()))
	}
	return View{}
}

// SplitRight splits at the boundary where pos ends. Returns everything
// from the end of pos onward and retains everything up to and including
// pos. If pos's end does not lie within the receiver's window,
// SplitRight returns Invalid and the receiver is left unmodified.
func (v *View) SplitRight(pos View) View {
	if !v.valid || !pos.valid {
		return View{}
	}
	p := pos.end()
	if v.begin() <= p && p <= v.end() {
		src := *v
		piece := src.SplitIndex(int(p - src.begin()))
		Swap(&piece, &src)
		*v = src
		return piece
	}
	return View{}
}

// PopFirst returns the first byte of the view and advances the view
// past it. Returns 0 without modifying the view if it is empty or
// invalid; by contract the zero sentinel is indistinguishable from a
// genuine NUL data byte, so callers holding data that may contain NUL
// should test IsEmpty first.
func (v *View) PopFirst() byte {
	if !v.valid || v.lo == v.hi {
		return 0
	}
	c := v.base[v.lo]
	v.lo++
	return c
}
