package quiltscan

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Keys recognized by the capture loop.
const (
	KeyEscape byte = 27
	KeySpace  byte = 32
)

// KeyReader reads a single key press at a time.
type KeyReader interface {
	// ReadKey blocks until one key is available and returns it.
	ReadKey() (byte, error)
}

// NewKeyReader returns a KeyReader for f. When f is a terminal the keys are read in raw mode,
// without echo and without waiting for Enter. Otherwise the keys are read from r, which
// should be the buffered reader already wrapping f, if any.
func NewKeyReader(f *os.File, r *bufio.Reader) KeyReader {
	if fd := int(f.Fd()); term.IsTerminal(fd) {
		return &rawKeyReader{fd: fd, r: f}
	}
	if r == nil {
		r = bufio.NewReader(f)
	}
	return &streamKeyReader{r: r}
}

// rawKeyReader switches the terminal fd into raw mode for the duration of every single read.
// The key is read from r, which is normally the file behind fd.
type rawKeyReader struct {
	fd int
	r  io.Reader
}

func (k *rawKeyReader) ReadKey() (key byte, err error) {
	state, err := term.MakeRaw(k.fd)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTerminalMode, err)
	}
	defer func() {
		if rerr := term.Restore(k.fd, state); rerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrTerminalMode, rerr)
		}
	}()

	var buf [1]byte
	if _, err := io.ReadFull(k.r, buf[:]); err != nil {
		return 0, fmt.Errorf("unable to read key: %w", err)
	}
	return buf[0], nil
}

// streamKeyReader reads the keys from a non interactive input, like a pipe.
type streamKeyReader struct {
	r *bufio.Reader
}

func (k *streamKeyReader) ReadKey() (byte, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("unable to read key: %w", err)
	}
	return b, nil
}
