package strview

import (
	"strings"
	"testing"
)

// FuzzSplitIndex checks that the two halves of any index split
// reassemble to the original input.
func FuzzSplitIndex(f *testing.F) {
	f.Add("", 0)
	f.Add("hello", 2)
	f.Add("hello", -2)
	f.Add("hello", 100)
	f.Add("hello", -100)
	f.Add("a\x00b", 1)

	f.Fuzz(func(t *testing.T, s string, n int) {
		v := From(s)
		piece := v.SplitIndex(n)
		if !v.IsValid() || !piece.IsValid() {
			t.Fatal("both halves should be valid")
		}
		var whole string
		if n < 0 {
			whole = v.String() + piece.String()
		} else {
			whole = piece.String() + v.String()
		}
		if whole != s {
			t.Errorf("halves %q + %q do not reassemble %q", piece.String(), v.String(), s)
		}
	})
}

// FuzzSplitFirst checks the splitting loop: every byte of the input is
// accounted for, one consumed delimiter per boundary.
func FuzzSplitFirst(f *testing.F) {
	f.Add("")
	f.Add("a,b,c")
	f.Add(",,")
	f.Add("no delimiters here")
	f.Add("trailing,")

	f.Fuzz(func(t *testing.T, s string) {
		v := From(s)
		comma := From(",")
		var pieces []string
		for v.IsValid() {
			piece := v.SplitFirst(comma)
			if !piece.IsValid() {
				t.Fatal("pieces from a valid source should be valid")
			}
			if strings.IndexByte(piece.String(), ',') >= 0 {
				t.Fatalf("piece %q contains a delimiter", piece.String())
			}
			pieces = append(pieces, piece.String())
		}
		if got := strings.Join(pieces, ","); got != s {
			t.Errorf("reassembled %q, want %q", got, s)
		}
	})
}

// FuzzSub checks that Sub never yields bytes outside the source and
// honors the resolve, validate, clamp order.
func FuzzSub(f *testing.F) {
	f.Add("hello", 0, 5)
	f.Add("hello", -3, -1)
	f.Add("hello", -1000, 2)
	f.Add("hello", 3, 1000)
	f.Add("", 0, 0)

	f.Fuzz(func(t *testing.T, s string, begin, end int) {
		v := From(s)
		sub := v.Sub(begin, end)
		if !sub.IsValid() {
			return
		}
		if sub.Len() > v.Len() {
			t.Fatalf("sub longer than source: %d > %d", sub.Len(), v.Len())
		}
		if !strings.Contains(s, sub.String()) {
			t.Errorf("sub %q is not a substring of %q", sub.String(), s)
		}
	})
}

// FuzzSplitLine checks that lines plus remainder account for every
// data byte and that no returned line contains a terminator.
func FuzzSplitLine(f *testing.F) {
	f.Add("line1\r\nline2\rline3")
	f.Add("a\n\rb")
	f.Add("\r\n\r\n")
	f.Add("no terminator")
	f.Add("trailing\r")

	f.Fuzz(func(t *testing.T, s string) {
		v := From(s)
		var eol EOLState
		var dataBytes int
		for {
			line := v.SplitLine(&eol)
			if !line.IsValid() {
				break
			}
			if strings.ContainsAny(line.String(), "\r\n") {
				t.Fatalf("line %q contains a terminator", line.String())
			}
			dataBytes += line.Len()
		}
		dataBytes += v.Len()

		terminators := strings.Count(s, "\r") + strings.Count(s, "\n")
		if dataBytes+terminators != len(s) {
			t.Errorf("data %d + terminators %d != input %d", dataBytes, terminators, len(s))
		}
	})
}

// FuzzTrim checks idempotence and that trimming only removes cutset
// members from the ends.
func FuzzTrim(f *testing.F) {
	f.Add(" ._THIS. _", " ._")
	f.Add("abc", "")
	f.Add("", " ")
	f.Add("xxxx", "x")

	f.Fuzz(func(t *testing.T, s, cutset string) {
		cs := From(cutset)
		once := From(s).Trim(cs)
		if !once.Equal(once.Trim(cs)) {
			t.Error("Trim is not idempotent")
		}
		if once.Len() > 0 {
			if strings.IndexByte(cutset, once.String()[0]) >= 0 {
				t.Error("leading cutset member survived")
			}
			if strings.IndexByte(cutset, once.String()[once.Len()-1]) >= 0 {
				t.Error("trailing cutset member survived")
			}
		}
		if !strings.Contains(s, once.String()) {
			t.Errorf("trimmed %q is not a substring of %q", once.String(), s)
		}
	})
}
