// Package linerange selects a contiguous range of lines from a text stream.
//
// A range expression is parsed into a half-open [Interval] over 0-based line indexes, and
// [Select] copies the lines inside that interval from a [Lines] stream to a writer. The
// expression forms are:
//
//	3       line 3 only
//	2..6    lines 2 to 6, exclusive of 6
//	2...6   lines 2 to 6, inclusive of 6
//	3..     line 3 onwards
//	..4     lines 1 to 4, exclusive of 4
//
// Line numbers in expressions are 1-based. Lines are read lazily and reading stops as soon as the
// end of the interval is reached, so an expression such as "1...10" never consumes more than ten
// lines of input.
package linerange
