//go:build linux || darwin

package backend

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is a ByteSource over a real terminal. Opening it puts the
// terminal into raw mode; Close restores the previous state. Resize
// detection rides on SIGWINCH.
type TTY struct {
	f     *os.File
	fd    int
	prev  *term.State
	winch chan os.Signal
}

// OpenTTY puts f (normally os.Stdin) into raw mode and returns a
// non-blocking byte source over it.
func OpenTTY(f *os.File) (*TTY, error) {
	fd := int(f.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	t := &TTY{
		f:     f,
		fd:    fd,
		prev:  prev,
		winch: make(chan os.Signal, 1),
	}
	signal.Notify(t.winch, syscall.SIGWINCH)
	return t, nil
}

// ReadAvailable returns whatever bytes the terminal has ready, without
// blocking. Transient errors (EINTR, EAGAIN) read as a quiet stream.
func (t *TTY) ReadAvailable(buf []byte) (int, error) {
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return 0, nil
	}

	m, err := unix.Read(t.fd, buf)
	if m <= 0 {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	return m, nil
}

// PendingResize reports a SIGWINCH received since the last call,
// together with the terminal's current size.
func (t *TTY) PendingResize() (int, int, bool) {
	select {
	case <-t.winch:
		w, h, err := term.GetSize(t.fd)
		if err != nil {
			return 0, 0, false
		}
		return w, h, true
	default:
		return 0, 0, false
	}
}

// Close restores the terminal state. The file itself is left open; the
// caller owns it.
func (t *TTY) Close() error {
	signal.Stop(t.winch)
	return term.Restore(t.fd, t.prev)
}
