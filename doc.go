// Package strview provides a non-owning string view type for navigating
// and parsing text without allocating or copying.
//
// A View is a (pointer, length) window over existing character data plus
// a validity bit. Operations search, compare, trim, and progressively
// split views; every result is a new window into the same backing
// storage. The only operation that copies bytes is Materialize.
//
// Key properties:
//   - Views never own or mutate the data they reference
//   - Invalid (no backing data) is distinct from valid-but-empty
//   - Operating on an Invalid view is always well-defined; it behaves
//     as a zero-length view rather than failing
//   - Splitting operations mutate the caller's view in place to the
//     unconsumed remainder and return the consumed piece
//   - All operations are O(n) or better and never panic
//
// Basic usage:
//
//	date := strview.From("2023/07/03")
//	year := date.SplitFirst(strview.From("/"))  // "2023"
//	month := date.SplitFirst(strview.From("/")) // "07"
//	day := date.SplitFirst(strview.From("/"))   // "03", date now Invalid
//
// A view's lifetime is bounded by the lifetime of the storage it points
// into. Views built with FromBytes borrow the slice's memory; the caller
// must not mutate or free it while any derived view is in use. Views may
// be copied and read concurrently, but splitting mutates the receiver
// and needs external synchronization if shared.
package strview
