package linerange

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
)

// Lines is a lazy, forward-only sequence of lines read from a source. It is used like
// [bufio.Scanner]:
//
//	lines := linerange.NewLines(r)
//	defer lines.Close()
//	for lines.Next() {
//		fmt.Println(lines.Text())
//	}
//	if err := lines.Err(); err != nil {
//		...
//	}
//
// Line terminators ("\n" or "\r\n") are stripped. A final line without a terminator is still
// returned. There is no limit on line length.
type Lines struct {
	r      *bufio.Reader
	closer io.Closer
	name   string

	line   []byte
	index  uint64
	read   uint64
	err    error
	done   bool
	closed bool
}

// NewLines returns a line stream reading from r. If r implements [io.Closer] it is closed by
// [Lines.Close].
func NewLines(r io.Reader) *Lines {
	l := &Lines{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		l.closer = c
	}
	return l
}

// Open opens the named file as a line stream. A failure to open the file is returned as an
// *Error of kind SourceUnavailable.
func Open(path string) (*Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: SourceUnavailable, Input: path, Err: err}
	}
	l := NewLines(f)
	l.name = path
	return l, nil
}

// Next advances to the next line. It returns false at the end of the input or when reading
// fails; call [Lines.Err] to tell the two apart.
func (l *Lines) Next() bool {
	if l.done {
		return false
	}
	line, err := l.r.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		// Long line: accumulate a private copy until the terminator.
		buf := append([]byte(nil), line...)
		for errors.Is(err, bufio.ErrBufferFull) {
			line, err = l.r.ReadSlice('\n')
			buf = append(buf, line...)
		}
		line = buf
	}
	if err != nil && !errors.Is(err, io.EOF) {
		l.fail(err)
		return false
	}
	if len(line) == 0 {
		// Clean end of input.
		l.done = true
		return false
	}
	if err != nil {
		// io.EOF after an unterminated final line; the next call reports the end.
		l.done = true
	}
	l.line = dropTerminator(line)
	l.index = l.read
	l.read++
	return true
}

func (l *Lines) fail(err error) {
	l.done = true
	l.line = nil
	l.err = &Error{Kind: ReadFailure, Input: l.name, Err: err}
}

// Bytes returns the current line without its terminator. The slice may be overwritten by the
// next call to Next.
func (l *Lines) Bytes() []byte {
	return l.line
}

// Text returns the current line as a string.
func (l *Lines) Text() string {
	return string(l.line)
}

// Index returns the 0-based index of the current line.
func (l *Lines) Index() uint64 {
	return l.index
}

// Count returns the number of lines read so far.
func (l *Lines) Count() uint64 {
	return l.read
}

// Err returns the first read error encountered, as an *Error of kind ReadFailure. It returns nil
// if the stream ended normally.
func (l *Lines) Err() error {
	return l.err
}

// Close stops the stream and releases the underlying source. It is safe to call more than once.
func (l *Lines) Close() error {
	l.done = true
	if l.closed || l.closer == nil {
		return nil
	}
	l.closed = true
	return l.closer.Close()
}

// dropTerminator strips "\n" or "\r\n". A lone trailing "\r" is kept.
func dropTerminator(line []byte) []byte {
	if !bytes.HasSuffix(line, []byte{'\n'}) {
		return line
	}
	line = line[:len(line)-1]
	return bytes.TrimSuffix(line, []byte{'\r'})
}
