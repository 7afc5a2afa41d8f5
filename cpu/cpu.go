package cpu

import (
	"fmt"
	"log"

	"lc3vm/console"
)

// PC_START is the default program entry address; guest programs are
// conventionally assembled with .ORIG x3000.
const PC_START = uint16(0x3000)

// Register indices for the general-purpose register file.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7 // return address after JSR/JSRR and TRAP
)

// Cpu is the execution state of a single machine instance. Nothing is
// process-global; independent machines can run side by side.
type Cpu struct {
	Verbose bool // Set to enable verbose instruction tracing.

	Reg  [8]uint16 // General-purpose registers r0-r7.
	PC   uint16    // Program counter.
	Cond Flag      // Condition flags from the last flag-setting result.

	Mem     *Memory         // The machine's address space.
	Console console.Console // Host character I/O.

	Ticks int // Instructions retired since reset.

	halted bool
}

// NewCpu creates a machine with zeroed memory and registers, wired to the
// given console. The console doubles as the memory-mapped keyboard.
func NewCpu(con console.Console) (cpu *Cpu) {
	cpu = &Cpu{
		Mem:     NewMemory(con),
		Console: con,
	}
	cpu.Reset()

	return
}

// Reset returns the register file to its power-on state: all general
// registers zero, flags ZRO, program counter at PC_START. Memory is left
// alone so a loaded image survives.
func (cpu *Cpu) Reset() {
	clear(cpu.Reg[:])
	cpu.PC = PC_START
	cpu.Cond = FL_ZRO
	cpu.Ticks = 0
	cpu.halted = false
}

// Halted reports whether the machine has executed a HALT trap.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// String returns the current register file as a dump, one register per line.
func (cpu *Cpu) String() (text string) {
	for n, value := range cpu.Reg {
		text += fmt.Sprintf("  r%d: 0x%04x\n", n, value)
	}
	text += fmt.Sprintf("  pc: 0x%04x\ncond: %v\n", cpu.PC, cpu.Cond)

	return
}

// Step runs a single fetch/decode/execute cycle. done is true once the
// machine has halted; err is non-nil for reserved opcodes, undefined trap
// vectors, and host I/O failures, all of which are fatal to the run.
func (cpu *Cpu) Step() (done bool, err error) {
	if cpu.halted {
		done = true
		return
	}

	pc := cpu.PC
	instr := cpu.Mem.Read(pc)
	cpu.PC++

	err = cpu.execute(pc, instr)
	if err != nil {
		return
	}

	cpu.Ticks++
	done = cpu.halted

	return
}

// execute dispatches one fetched instruction. pc is the fetch address and
// is only used for tracing; PC-relative offsets apply to the already
// incremented program counter.
func (cpu *Cpu) execute(pc, instr uint16) (err error) {
	op := Opcode(instr >> 12)

	if cpu.Verbose {
		log.Printf("%04x: %04x %v", pc, instr, op)
	}

	switch op {
	case OP_ADD:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7
		if instr&(1<<5) != 0 {
			cpu.Reg[dr] = cpu.Reg[sr1] + SignExtend(instr&0x1F, 5)
		} else {
			cpu.Reg[dr] = cpu.Reg[sr1] + cpu.Reg[instr&0x7]
		}
		cpu.updateFlags(dr)

	case OP_AND:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7
		if instr&(1<<5) != 0 {
			cpu.Reg[dr] = cpu.Reg[sr1] & SignExtend(instr&0x1F, 5)
		} else {
			cpu.Reg[dr] = cpu.Reg[sr1] & cpu.Reg[instr&0x7]
		}
		cpu.updateFlags(dr)

	case OP_NOT:
		dr := (instr >> 9) & 0x7
		sr := (instr >> 6) & 0x7
		cpu.Reg[dr] = ^cpu.Reg[sr]
		cpu.updateFlags(dr)

	case OP_BR:
		nzp := Flag((instr >> 9) & 0x7)
		if nzp&cpu.Cond != 0 {
			cpu.PC += SignExtend(instr&0x1FF, 9)
		}

	case OP_JMP:
		cpu.PC = cpu.Reg[(instr>>6)&0x7]

	case OP_JSR:
		cpu.Reg[R7] = cpu.PC
		if instr&(1<<11) != 0 {
			cpu.PC += SignExtend(instr&0x7FF, 11)
		} else {
			cpu.PC = cpu.Reg[(instr>>6)&0x7]
		}

	case OP_LD:
		dr := (instr >> 9) & 0x7
		cpu.Reg[dr] = cpu.Mem.Read(cpu.PC + SignExtend(instr&0x1FF, 9))
		cpu.updateFlags(dr)

	case OP_LDI:
		dr := (instr >> 9) & 0x7
		cpu.Reg[dr] = cpu.Mem.Read(cpu.Mem.Read(cpu.PC + SignExtend(instr&0x1FF, 9)))
		cpu.updateFlags(dr)

	case OP_LDR:
		dr := (instr >> 9) & 0x7
		br := (instr >> 6) & 0x7
		cpu.Reg[dr] = cpu.Mem.Read(cpu.Reg[br] + SignExtend(instr&0x3F, 6))
		cpu.updateFlags(dr)

	case OP_LEA:
		dr := (instr >> 9) & 0x7
		cpu.Reg[dr] = cpu.PC + SignExtend(instr&0x1FF, 9)
		cpu.updateFlags(dr)

	case OP_ST:
		sr := (instr >> 9) & 0x7
		cpu.Mem.Write(cpu.PC+SignExtend(instr&0x1FF, 9), cpu.Reg[sr])

	case OP_STI:
		sr := (instr >> 9) & 0x7
		cpu.Mem.Write(cpu.Mem.Read(cpu.PC+SignExtend(instr&0x1FF, 9)), cpu.Reg[sr])

	case OP_STR:
		sr := (instr >> 9) & 0x7
		br := (instr >> 6) & 0x7
		cpu.Mem.Write(cpu.Reg[br]+SignExtend(instr&0x3F, 6), cpu.Reg[sr])

	case OP_TRAP:
		cpu.Reg[R7] = cpu.PC
		err = cpu.trap(instr & 0xFF)

	case OP_RTI, OP_RES:
		err = ErrOpcode(instr)
	}

	return
}

// updateFlags classifies the value in register r. Invoked exactly once,
// immediately after every instruction that defines a destination register.
func (cpu *Cpu) updateFlags(r uint16) {
	switch {
	case cpu.Reg[r] == 0:
		cpu.Cond = FL_ZRO
	case cpu.Reg[r]>>15 != 0:
		cpu.Cond = FL_NEG
	default:
		cpu.Cond = FL_POS
	}
}

// SignExtend widens the low bits of x, read as a two's-complement number,
// to a full 16-bit word. Instructions embed immediates and offsets at
// widths 5, 6, 9 and 11.
func SignExtend(x uint16, bits uint) uint16 {
	if (x>>(bits-1))&1 != 0 {
		x |= 0xFFFF << bits
	}

	return x
}
