package console

import (
	"bufio"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is a Console backed by a host terminal or pipe pair.
// A single reader goroutine pulls bytes off Input into a one-deep key
// buffer; Poll drains it without blocking, ReadChar waits on it.
type Terminal struct {
	Input  *os.File
	Output *os.File

	raw   bool
	saved unix.Termios

	once sync.Once
	keys chan byte
	out  *bufio.Writer
}

var _ Console = (*Terminal)(nil)

// NewTerminal creates a Terminal on stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		Input:  os.Stdin,
		Output: os.Stdout,
	}
}

// Raw switches the input into non-canonical, no-echo mode so single
// keystrokes reach the machine immediately. It is a no-op when the input
// is not an interactive terminal, so piped input runs unmolested.
func (t *Terminal) Raw() (err error) {
	if !term.IsTerminal(int(t.Input.Fd())) {
		return
	}

	err = termios.Tcgetattr(t.Input.Fd(), &t.saved)
	if err != nil {
		return
	}

	raw := t.saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	err = termios.Tcsetattr(t.Input.Fd(), termios.TCSANOW, &raw)
	if err != nil {
		return
	}

	t.raw = true
	return
}

// Restore puts the input back into the mode it had before Raw.
// Safe to call more than once.
func (t *Terminal) Restore() (err error) {
	if !t.raw {
		return
	}

	err = termios.Tcsetattr(t.Input.Fd(), termios.TCSANOW, &t.saved)
	if err != nil {
		return
	}

	t.raw = false
	return
}

func (t *Terminal) start() {
	t.once.Do(func() {
		t.keys = make(chan byte, 1)
		t.out = bufio.NewWriter(t.Output)
		go t.readKeys()
	})
}

// readKeys feeds the key buffer until the input stream ends.
func (t *Terminal) readKeys() {
	var one [1]byte
	for {
		n, err := t.Input.Read(one[:])
		if err != nil {
			close(t.keys)
			return
		}
		if n > 0 {
			t.keys <- one[0]
		}
	}
}

// Poll reports and consumes a pending input character without blocking.
func (t *Terminal) Poll() (c byte, ok bool) {
	t.start()

	select {
	case c, ok = <-t.keys:
	default:
	}
	return
}

// ReadChar blocks until one input character is available. Returns
// ErrClosed once the input stream has ended.
func (t *Terminal) ReadChar() (c byte, err error) {
	t.start()

	c, ok := <-t.keys
	if !ok {
		err = ErrClosed
	}
	return
}

// WriteChar queues one character for output.
func (t *Terminal) WriteChar(c byte) (err error) {
	t.start()

	err = t.out.WriteByte(c)
	return
}

// Flush forces queued output to the host.
func (t *Terminal) Flush() (err error) {
	t.start()

	err = t.out.Flush()
	return
}
