//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// ErrNotTerminal is returned by Open when input or output is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
	// Button-event tracking reports motion while a button is held; 1006
	// selects SGR encoding.
	enableMouse  = "\x1b[?1002h\x1b[?1006h"
	disableMouse = "\x1b[?1006l\x1b[?1002l"
)

// Terminal is a raw-mode terminal on the alternate screen with mouse
// reporting enabled.
type Terminal struct {
	in  *os.File
	out *os.File

	saved  unix.Termios
	closed bool
}

// Open puts in into raw mode, switches out to the alternate screen and
// enables mouse reporting. Close restores everything.
func Open(in, out *os.File) (*Terminal, error) {
	if !IsTerminal(in) || !IsTerminal(out) {
		return nil, ErrNotTerminal
	}

	fd := int(in.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("read terminal attributes: %w", err)
	}
	t := &Terminal{in: in, out: out, saved: *termios}

	raw := *termios
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	if _, err := io.WriteString(out, enterAltScreen+hideCursor+enableMouse+clearScreen); err != nil {
		_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, &t.saved)
		return nil, fmt.Errorf("set up screen: %w", err)
	}
	return t, nil
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && isatty.IsTerminal(f.Fd())
}

// Size returns the terminal dimensions in cells, or 80x24 if they cannot
// be determined.
func (t *Terminal) Size() (width, height int) {
	return windowSize(int(t.out.Fd()))
}

// Write implements io.Writer on the terminal output.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Input returns the file input is read from.
func (t *Terminal) Input() *os.File {
	return t.in
}

// Close disables mouse reporting, leaves the alternate screen and restores
// the saved terminal attributes. Calling Close more than once is a no-op.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	_, werr := io.WriteString(t.out, disableMouse+showCursor+exitAltScreen)
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &t.saved); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	if werr != nil {
		return fmt.Errorf("restore screen: %w", werr)
	}
	return nil
}

func windowSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
