//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// pollInterval bounds how long a read blocks before checking for
// cancellation.
const pollInterval = 50 * time.Millisecond

// Source produces decoded terminal input.
type Source interface {
	// Read blocks until input is available or ctx is done, and returns
	// everything decoded so far. It returns ctx.Err() once ctx is done.
	Read(ctx context.Context) ([]Input, error)
}

// Reader reads and decodes input from a raw-mode terminal file and turns
// SIGWINCH into ResizeInput.
type Reader struct {
	fd      int
	sizeFd  int
	buf     []byte
	partial []byte
	sigCh   chan os.Signal
}

var _ Source = (*Reader)(nil)

// NewReader creates a reader for in. Resize reports are measured on out.
func NewReader(in, out *os.File) *Reader {
	r := &Reader{
		fd:     int(in.Fd()),
		sizeFd: int(out.Fd()),
		buf:    make([]byte, 1024),
		sigCh:  make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r
}

// Read implements Source.
func (r *Reader) Read(ctx context.Context) ([]Input, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		select {
		case <-r.sigCh:
			w, h := windowSize(r.sizeFd)
			return []Input{ResizeInput{Width: w, Height: h}}, nil
		default:
		}

		ready, err := selectWithTimeout(r.fd, pollInterval)
		if err != nil {
			return nil, fmt.Errorf("wait for input: %w", err)
		}
		if !ready {
			continue
		}

		n, err := unix.Read(r.fd, r.buf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return nil, fmt.Errorf("read input: %w", err)
		}
		if n == 0 {
			return nil, fmt.Errorf("read input: %w", os.ErrClosed)
		}

		data := append(r.partial, r.buf[:n]...)
		inputs, rest := Parse(data)
		r.partial = append([]byte(nil), rest...)
		if len(inputs) > 0 {
			return inputs, nil
		}
	}
}

// Close stops resize notifications.
func (r *Reader) Close() error {
	signal.Stop(r.sigCh)
	return nil
}

// selectWithTimeout waits for fd to become readable. It returns false on
// timeout or when interrupted by a signal.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(fd+1, &readFds, nil, nil, &tv)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
