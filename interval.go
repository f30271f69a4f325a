package linerange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unbounded is the End of an interval with no upper limit.
const Unbounded = uint64(math.MaxUint64)

const (
	inclusiveSep = "..."
	exclusiveSep = ".."
)

// Interval is a half-open range [Start, End) of 0-based line indexes.
type Interval struct {
	Start uint64
	End   uint64
}

// All selects every line of the input.
var All = Interval{Start: 0, End: Unbounded}

// Len returns the number of indexes in the interval. It never underflows: an interval whose End
// is not after its Start has length zero.
func (iv Interval) Len() uint64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// IsEmpty reports whether the interval selects nothing.
func (iv Interval) IsEmpty() bool {
	return iv.Len() == 0
}

// Contains reports whether the 0-based index i is inside the interval.
func (iv Interval) Contains(i uint64) bool {
	return iv.Start <= i && i < iv.End
}

// String renders the interval as an inclusive expression with 1-based line numbers. For any
// interval returned by ParseInterval the result parses back to the same interval. An empty
// interval renders in the exclusive form, e.g. "3..3".
func (iv Interval) String() string {
	if iv.IsEmpty() {
		n := strconv.FormatUint(iv.Start+1, 10)
		return n + exclusiveSep + n
	}
	var b strings.Builder
	if iv.Start > 0 {
		b.WriteString(strconv.FormatUint(iv.Start+1, 10))
	}
	b.WriteString(inclusiveSep)
	if iv.End != Unbounded {
		b.WriteString(strconv.FormatUint(iv.End, 10))
	}
	return b.String()
}

// bound is one side of an expression as written by the user: a 1-based line number, or open.
type bound struct {
	n    uint64
	open bool
}

// ParseInterval parses a range expression into an Interval. The recognized forms, tried in
// order, are "A...B" (inclusive of B), "A..B" (exclusive of B) and a single line number "N". In
// the two range forms either side may be omitted. The empty expression selects all lines.
//
// Numbers must be exact decimal digit sequences; surrounding whitespace is not trimmed. Every
// failure is an *Error of kind InvalidRangeSyntax.
func ParseInterval(expr string) (Interval, error) {
	if expr == "" {
		return All, nil
	}
	var (
		lo, hi    bound
		inclusive bool
		err       error
	)
	if a, b, ok := strings.Cut(expr, inclusiveSep); ok {
		inclusive = true
		lo, hi, err = parseBounds(a, b)
	} else if a, b, ok := strings.Cut(expr, exclusiveSep); ok {
		lo, hi, err = parseBounds(a, b)
	} else {
		var n uint64
		n, err = parseLineNumber(expr)
		lo = bound{n: n}
		hi = bound{n: n}
		inclusive = true
	}
	if err != nil {
		return Interval{}, &Error{Kind: InvalidRangeSyntax, Input: expr, Err: err}
	}
	iv, err := normalize(lo, hi, inclusive)
	if err != nil {
		return Interval{}, &Error{Kind: InvalidRangeSyntax, Input: expr, Err: err}
	}
	return iv, nil
}

// MustParseInterval is like ParseInterval but panics on error. Intended for tests and
// package-level variables.
func MustParseInterval(expr string) Interval {
	iv, err := ParseInterval(expr)
	if err != nil {
		panic(err)
	}
	return iv
}

// normalize converts user bounds into the canonical half-open pair. All off-by-one handling
// between the inclusive and exclusive forms lives here.
func normalize(lo, hi bound, inclusive bool) (Interval, error) {
	iv := All
	if !lo.open {
		iv.Start = lo.n - 1
	}
	if !hi.open {
		if inclusive {
			iv.End = hi.n
		} else {
			iv.End = hi.n - 1
		}
	}
	if iv.Start > iv.End {
		return Interval{}, fmt.Errorf("start line %d is after end line %d", lo.n, hi.n)
	}
	return iv, nil
}

func parseBounds(a, b string) (lo, hi bound, err error) {
	if lo, err = parseBound(a); err != nil {
		return bound{}, bound{}, err
	}
	if hi, err = parseBound(b); err != nil {
		return bound{}, bound{}, err
	}
	return lo, hi, nil
}

func parseBound(s string) (bound, error) {
	if s == "" {
		return bound{open: true}, nil
	}
	n, err := parseLineNumber(s)
	if err != nil {
		return bound{}, err
	}
	return bound{n: n}, nil
}

var errZeroLine = errors.New("line numbers start at 1")

// parseLineNumber parses a 1-based line number made only of decimal digits.
func parseLineNumber(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("missing line number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid line number %q", s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("line number %q out of range", s)
		}
		return 0, fmt.Errorf("invalid line number %q", s)
	}
	if n == 0 {
		return 0, errZeroLine
	}
	return n, nil
}
