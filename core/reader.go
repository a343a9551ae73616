package core

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// LineReader reads bounded lines from the operator and echoes them back.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer

	// buf holds the current line, its capacity includes the newline.
	buf []byte
}

// NewLineReader creates a reader whose lines hold at most capacity bytes,
// including the trailing newline.
func NewLineReader(in io.Reader, out io.Writer, capacity int) (*LineReader, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("%w: capacity %d can't hold a character and a newline", ErrAllocation, capacity)
	}

	return &LineReader{
		in:  bufio.NewReader(in),
		out: out,
		buf: make([]byte, 0, capacity),
	}, nil
}

// Limit returns the number of characters a line can hold.
func (r *LineReader) Limit() int {
	return cap(r.buf) - 1
}

// ReadLine prints the prompt, reads a line, echoes it exactly as read and
// returns it without the newline.
//
// A final line without a newline is returned normally; the read after it
// fails with ErrRead. Lines longer than Limit are consumed in full and
// reported with ErrLineTooLong.
func (r *LineReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	r.buf = r.buf[:0]
	for len(r.buf) < cap(r.buf) {
		b, err := r.in.ReadByte()
		switch {
		case errors.Is(err, io.EOF) && len(r.buf) > 0:
			return r.accept(), nil
		case err != nil:
			return "", fmt.Errorf("%w: %v", ErrRead, err)
		}

		r.buf = append(r.buf, b)
		if b == '\n' {
			return r.accept(), nil
		}
	}

	// The buffer filled without a newline, only the newline may occupy the
	// last byte.
	r.out.Write(r.buf)
	r.discardLine()
	return "", ErrLineTooLong
}

func (r *LineReader) accept() string {
	r.out.Write(r.buf)

	line := r.buf
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return string(line)
}

// discardLine consumes and echoes input up to and including the next newline.
func (r *LineReader) discardLine() {
	for {
		chunk, err := r.in.ReadSlice('\n')
		r.out.Write(chunk)
		if !errors.Is(err, bufio.ErrBufferFull) {
			return
		}
	}
}
