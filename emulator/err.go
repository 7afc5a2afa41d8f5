package emulator

import (
	"errors"

	"lc3vm/translate"
)

var f = translate.From

var (
	// Image format errors
	ErrImageShort = errors.New(f("image too short"))
	ErrImageOdd   = errors.New(f("image has a partial word"))
	ErrImageRange = errors.New(f("image exceeds memory"))
)

// ErrImage reports a program image that could not be loaded.
type ErrImage struct {
	Path string
	Err  error
}

func (err *ErrImage) Error() string {
	return f("image %v: %v", err.Path, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
