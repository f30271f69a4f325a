package linerange

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// SelectOptions controls how selected lines are written.
type SelectOptions struct {
	// Number prefixes each line with its 1-based line number, right-aligned to six columns and
	// followed by a tab.
	Number bool
}

// Select writes every line of src whose 0-based index is inside iv to w, each followed by a
// single "\n", and returns the number of lines written. See [SelectWith].
func Select(iv Interval, src *Lines, w io.Writer) (int, error) {
	return SelectWith(iv, src, w, SelectOptions{})
}

// SelectWith is like [Select] but takes options.
//
// Lines before iv.Start are read and discarded. Once the last line of the interval has been
// written no further input is read, so an open-ended source is only consumed up to iv.End. An
// empty interval reads nothing.
//
// If reading src fails, the lines already selected are still written and the read error is
// returned. Output is buffered and always flushed before returning.
func SelectWith(iv Interval, src *Lines, w io.Writer, opts SelectOptions) (n int, err error) {
	if iv.IsEmpty() {
		return 0, nil
	}
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write output: %w", ferr)
		}
	}()

	var num []byte
	remaining := iv.Len()
	for remaining > 0 && src.Next() {
		i := src.Index()
		if i < iv.Start {
			continue
		}
		if opts.Number {
			num = appendLineNumber(num[:0], i+1)
			if _, err := bw.Write(num); err != nil {
				return n, fmt.Errorf("write output: %w", err)
			}
		}
		if _, err := bw.Write(src.Bytes()); err != nil {
			return n, fmt.Errorf("write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("write output: %w", err)
		}
		n++
		remaining--
	}
	if err := src.Err(); err != nil {
		return n, err
	}
	return n, nil
}

func appendLineNumber(dst []byte, lineno uint64) []byte {
	s := strconv.FormatUint(lineno, 10)
	for pad := 6 - len(s); pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	dst = append(dst, s...)
	return append(dst, '\t')
}
