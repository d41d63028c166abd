package strview

// Scanner tokenizes a view by a delimiter set, driving SplitFirst and
// presenting each piece through a tagged Next result. It holds the
// remaining view as its only state.
type Scanner struct {
	src    View
	delims View
}

// NewScanner creates a scanner over v using the bytes of delims as the
// delimiter set.
func NewScanner(v, delims View) *Scanner {
	return &Scanner{src: v, delims: delims}
}

// Next returns the next token and true, or an Invalid view and false
// once the source is exhausted. Consecutive delimiters yield empty
// tokens; the final token is everything after the last delimiter,
// which may be empty.
func (s *Scanner) Next() (View, bool) {
	if !s.src.IsValid() {
		return View{}, false
	}
	return s.src.SplitFirst(s.delims), true
}

// Rest returns the unconsumed remainder. Invalid once Next has
// returned the final token.
func (s *Scanner) Rest() View {
	return s.src
}

// LineScanner yields lines from a view, handling CR, LF, CRLF, and
// LFCR terminators. It carries the pending-terminator state across
// buffers so input that ends mid-CRLF is handled correctly when more
// data is fed in.
type LineScanner struct {
	src View
	eol EOLState
}

// NewLineScanner creates a line scanner over v.
func NewLineScanner(v View) *LineScanner {
	return &LineScanner{src: v}
}

// Next returns the next terminated line and true, or an Invalid view
// and false when no complete line remains. After a false return, Rest
// holds the terminator-less remainder; feed it back with more data via
// Feed to continue.
func (s *LineScanner) Next() (View, bool) {
	line := s.src.SplitLine(&s.eol)
	return line, line.IsValid()
}

// Rest returns the unconsumed remainder: after Next reports false this
// is the incomplete final line, if any.
func (s *LineScanner) Rest() View {
	return s.src
}

// Feed replaces the remaining source with v, keeping the
// pending-terminator state. The caller is responsible for carrying any
// bytes still in Rest into the new storage; the scanner itself never
// copies.
func (s *LineScanner) Feed(v View) {
	s.src = v
}
