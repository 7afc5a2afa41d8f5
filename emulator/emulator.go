// Package emulator wires the execution core to the host: it loads binary
// program images into machine memory and drives the run loop.
package emulator

import (
	"context"
	"encoding/binary"
	"io"
	"os"

	"lc3vm/console"
	"lc3vm/cpu"
)

// Emulator owns one machine instance and its console.
type Emulator struct {
	Verbose bool // If set, enables verbose instruction tracing.
	*cpu.Cpu

	Console console.Console
}

// NewEmulator creates a machine wired to the given console.
func NewEmulator(con console.Console) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(con),
		Console: con,
	}

	return
}

// LoadImage reads a program image and places it in machine memory. The
// image is a sequence of big-endian words: the first is the load origin,
// the rest are stored contiguously from there.
func (emu *Emulator) LoadImage(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	if len(data) < 2 {
		err = ErrImageShort
		return
	}
	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	origin := binary.BigEndian.Uint16(data[0:2])
	body := data[2:]

	words := make([]uint16, len(body)/2)
	for n := range words {
		words[n] = binary.BigEndian.Uint16(body[2*n : 2*n+2])
	}

	if int(origin)+len(words) > cpu.MEM_MAX {
		err = ErrImageRange
		return
	}

	emu.Mem.Load(origin, words)

	return
}

// LoadImageFile loads a program image from a file. Errors identify the
// offending path.
func (emu *Emulator) LoadImageFile(path string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrImage{Path: path, Err: err}
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	err = emu.LoadImage(file)

	return
}

// Run executes instructions until the program halts, a fatal decode or
// trap error occurs, or ctx is cancelled. Cancellation is only observed
// between instructions; no register or memory mutation happens after it.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var done bool
		done, err = emu.Cpu.Step()
		if err != nil || done {
			return
		}
	}
}
