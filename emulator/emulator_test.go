package emulator

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"lc3vm/console"
	"lc3vm/cpu"
)

// image builds a binary program image from an origin and body words.
func image(origin uint16, words ...uint16) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, origin)
	binary.Write(buf, binary.BigEndian, words)
	return buf.Bytes()
}

func newTestEmulator() (emu *Emulator, con *console.Buffer) {
	con = &console.Buffer{}
	emu = NewEmulator(con)
	return
}

func TestLoadImage(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator()

	err := emu.LoadImage(bytes.NewReader(image(0x3000, 0x1025, 0xF025)))
	assert.NoError(err)

	// Words land contiguously at the origin, converted from big endian.
	assert.Equal(uint16(0x1025), emu.Mem.Read(0x3000))
	assert.Equal(uint16(0xF025), emu.Mem.Read(0x3001))
	assert.Equal(uint16(0x0000), emu.Mem.Read(0x3002))
}

func TestLoadImageErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		data []byte
		want error
	}){
		{"empty", []byte{}, ErrImageShort},
		{"single_byte", []byte{0x30}, ErrImageShort},
		{"partial_word", []byte{0x30, 0x00, 0x12}, ErrImageOdd},
		{"exceeds_memory", image(0xFFFF, 1, 2), ErrImageRange},
		{"origin_only_is_fine", image(0x3000), nil},
	}

	for _, entry := range table {
		emu, _ := newTestEmulator()

		err := emu.LoadImage(bytes.NewReader(entry.data))
		if entry.want == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.want, entry.name)
		}
	}
}

func TestLoadImageFileMissing(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator()

	err := emu.LoadImageFile("testdata/no-such-image.obj")
	assert.Error(err)

	var imgErr *ErrImage
	assert.ErrorAs(err, &imgErr)
	assert.Equal("testdata/no-such-image.obj", imgErr.Path)
}

func TestRunAddHalt(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator()

	// add r0, r0, #5 ; halt
	err := emu.LoadImage(bytes.NewReader(image(0x3000, 0x1025, 0xF025)))
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.NoError(err)

	assert.True(emu.Halted())
	assert.Equal(uint16(5), emu.Reg[cpu.R0])
	assert.Equal(cpu.FL_POS, emu.Cond)
	assert.Equal(2, emu.Ticks)
}

func TestRunPuts(t *testing.T) {
	assert := assert.New(t)

	emu, con := newTestEmulator()

	// lea r0, #2 ; puts ; halt ; .stringz "HI"
	err := emu.LoadImage(bytes.NewReader(image(0x3000,
		0xE002, 0xF022, 0xF025, 'H', 'I', 0x0000)))
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.NoError(err)

	assert.True(emu.Halted())
	out := con.Out.String()
	assert.Equal("HI", out[:2])
}

func TestRunEcho(t *testing.T) {
	assert := assert.New(t)

	emu, con := newTestEmulator()
	con.In = []byte{'z'}

	// getc ; out ; halt
	err := emu.LoadImage(bytes.NewReader(image(0x3000, 0xF020, 0xF021, 0xF025)))
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.NoError(err)

	assert.Equal(uint16('z'), emu.Reg[cpu.R0])
	assert.Equal(byte('z'), con.Out.Bytes()[0])
}

func TestRunReservedOpcode(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator()

	err := emu.LoadImage(bytes.NewReader(image(0x3000, 0x8000)))
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.ErrorIs(err, cpu.ErrOpcode(0))

	// Nothing mutated beyond the fetch increment.
	assert.Equal([8]uint16{}, emu.Reg)
	assert.Equal(uint16(0x3001), emu.PC)
	assert.Equal(cpu.FL_ZRO, emu.Cond)
	assert.False(emu.Halted())
}

func TestRunUndefinedTrap(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator()

	err := emu.LoadImage(bytes.NewReader(image(0x3000, 0xF0FF)))
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.ErrorIs(err, cpu.ErrTrap(0))
}

func TestRunCancelled(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator()

	// brnzp #-1: spins forever.
	err := emu.LoadImage(bytes.NewReader(image(0x3000, 0x0FFF)))
	assert.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = emu.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.False(emu.Halted())
}

func TestRunMultipleImages(t *testing.T) {
	assert := assert.New(t)

	emu, con := newTestEmulator()

	// The program at 0x3000 prints a string the second image placed
	// at 0x4000.
	err := emu.LoadImage(bytes.NewReader(image(0x3000,
		0x2002, 0xF022, 0xF025, 0x4000))) // ld r0, #2 ; puts ; halt ; .fill x4000
	assert.NoError(err)
	err = emu.LoadImage(bytes.NewReader(image(0x4000, 'O', 'K', 0x0000)))
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.NoError(err)

	out := con.Out.String()
	assert.Equal("OK", out[:2])
}
