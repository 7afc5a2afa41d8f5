package console

import (
	"bytes"
)

// Buffer is an in-memory Console for tests and scripted runs. Input
// characters are served from In; output accumulates in Out.
type Buffer struct {
	In  []byte
	Out bytes.Buffer
}

var _ Console = (*Buffer)(nil)

// Poll reports and consumes the next input character, if any.
func (b *Buffer) Poll() (c byte, ok bool) {
	if len(b.In) == 0 {
		return
	}

	c = b.In[0]
	b.In = b.In[1:]
	ok = true
	return
}

// ReadChar consumes the next input character. Returns ErrClosed once In
// is exhausted, standing in for a closed host stream.
func (b *Buffer) ReadChar() (c byte, err error) {
	c, ok := b.Poll()
	if !ok {
		err = ErrClosed
	}
	return
}

// WriteChar appends one character to Out.
func (b *Buffer) WriteChar(c byte) (err error) {
	err = b.Out.WriteByte(c)
	return
}

// Flush is a no-op; Buffer output is never deferred.
func (b *Buffer) Flush() (err error) {
	return
}
