package cpu

import (
	"lc3vm/translate"
)

var f = translate.From

// ErrOpcode indicates an instruction with a reserved opcode was executed.
// The machine has no defined semantics for it; execution cannot continue.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("reserved opcode 0x%04x (%v)", uint16(eo), Opcode(uint16(eo)>>12))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrTrap indicates a TRAP instruction named a vector outside the defined
// service table. Same handling as a reserved opcode.
type ErrTrap uint16

func (et ErrTrap) Error() string {
	return f("undefined trap vector 0x%02x", uint16(et))
}

func (et ErrTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrTrap)
	return
}
