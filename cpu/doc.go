// Package cpu implements the LC-3 execution core.
//
// The machine is word addressable: 65536 16-bit words of memory shared by
// code and data, eight general-purpose registers (r7 conventionally holds
// the return address after a subroutine call), a program counter, and a
// one-hot positive/zero/negative condition flag. Each Step fetches one
// instruction at the program counter, advances it, and dispatches on the
// top four bits to one of the sixteen instruction handlers. Trap
// instructions bridge the guest to host character I/O through a
// console.Console.
//
// The two reserved opcodes (RTI and 0b1101) and any trap vector outside
// 0x20-0x25 have no defined semantics; executing them stops the machine
// with an error.
package cpu
