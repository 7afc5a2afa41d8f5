package console

import (
	"errors"

	"lc3vm/translate"
)

var f = translate.From

var (
	// ErrClosed is returned when the input stream has ended.
	ErrClosed = errors.New(f("console input closed"))
)
