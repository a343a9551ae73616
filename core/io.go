package core

import (
	"io"
	"os"
)

// IO holds the standard streams of the operator's terminal.
type IO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// IOAdapter implements IO over plain readers and writers.
type IOAdapter struct {
	IStdin  io.Reader
	IStdout io.Writer
	IStderr io.Writer
}

// NewIOAdapter creates an IO, nil streams behave like /dev/null.
func NewIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *IOAdapter {
	return &IOAdapter{
		IStdin:  toReaderOrClosed(stdin),
		IStdout: toWriterOrDiscard(stdout),
		IStderr: toWriterOrDiscard(stderr),
	}
}

var _ IO = (*IOAdapter)(nil)

func (pr *IOAdapter) Stdin() io.Reader {
	return pr.IStdin
}

func (pr *IOAdapter) Stdout() io.Writer {
	return pr.IStdout
}

func (pr *IOAdapter) Stderr() io.Writer {
	return pr.IStderr
}

func toWriterOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

func toReaderOrClosed(r io.Reader) io.Reader {
	if r == nil {
		return &closedReader{}
	}
	return r
}

// closedReader implements io.Reader and always returns ErrClosed on Read.
type closedReader struct{}

var _ io.Reader = (*closedReader)(nil)

func (*closedReader) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}
