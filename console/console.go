// Package console provides the host character-I/O capability for the
// machine. It offers a non-blocking pending-input poll, used by the
// memory-mapped keyboard registers, and blocking character read/write,
// used by the trap services.
package console

// Console is the character I/O surface the machine runs against.
// The core never depends on a concrete terminal or signal mechanism;
// it only sees this interface.
type Console interface {
	// Poll reports and consumes a pending input character without blocking.
	Poll() (c byte, ok bool)
	// ReadChar blocks until one input character is available.
	ReadChar() (c byte, err error)
	// WriteChar queues one character for output.
	WriteChar(c byte) error
	// Flush forces queued output to the host.
	Flush() error
}
