package cpu

import (
	"fmt"
)

// Opcode is the 4-bit instruction class field, bits 15-12 of a fetched word.
type Opcode uint16

const (
	OP_BR   = Opcode(0)  // conditional branch
	OP_ADD  = Opcode(1)  // add
	OP_LD   = Opcode(2)  // load PC-relative
	OP_ST   = Opcode(3)  // store PC-relative
	OP_JSR  = Opcode(4)  // jump to subroutine
	OP_AND  = Opcode(5)  // bitwise and
	OP_LDR  = Opcode(6)  // load base+offset
	OP_STR  = Opcode(7)  // store base+offset
	OP_RTI  = Opcode(8)  // reserved
	OP_NOT  = Opcode(9)  // bitwise complement
	OP_LDI  = Opcode(10) // load indirect
	OP_STI  = Opcode(11) // store indirect
	OP_JMP  = Opcode(12) // register jump; jmp r7 is the subroutine return
	OP_RES  = Opcode(13) // reserved
	OP_LEA  = Opcode(14) // load effective address
	OP_TRAP = Opcode(15) // system call gateway
)

var opcodeNames = [16]string{
	"br", "add", "ld", "st", "jsr", "and", "ldr", "str",
	"rti", "not", "ldi", "sti", "jmp", "res", "lea", "trap",
}

// String returns the assembler mnemonic for the opcode.
func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}

	return fmt.Sprintf("op(%d)", int(op))
}

// Flag is a condition flag value. Exactly one flag is set at all times.
type Flag uint16

const (
	FL_POS = Flag(1 << 0) // last result was positive
	FL_ZRO = Flag(1 << 1) // last result was zero
	FL_NEG = Flag(1 << 2) // last result was negative
)

// String returns the n/z/p letter for the flag.
func (fl Flag) String() string {
	switch fl {
	case FL_POS:
		return "p"
	case FL_ZRO:
		return "z"
	case FL_NEG:
		return "n"
	}

	return fmt.Sprintf("flag(%d)", uint16(fl))
}
