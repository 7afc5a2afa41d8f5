package cpu

// Trap vectors. Each is a synchronous call into the host console; any
// other vector is undefined for this machine.
const (
	TRAP_GETC  = uint16(0x20) // read one character, no echo
	TRAP_OUT   = uint16(0x21) // write the character in the low byte of r0
	TRAP_PUTS  = uint16(0x22) // write a word string, one character per word
	TRAP_IN    = uint16(0x23) // prompt, read one character, echo it
	TRAP_PUTSP = uint16(0x24) // write a byte string, two characters per word
	TRAP_HALT  = uint16(0x25) // announce and stop the machine
)

// trap services one trap vector. The caller has already saved the return
// address into r7. Traps never touch the condition flags.
func (cpu *Cpu) trap(vector uint16) (err error) {
	switch vector {
	case TRAP_GETC:
		var c byte
		c, err = cpu.Console.ReadChar()
		if err != nil {
			return
		}
		cpu.Reg[R0] = uint16(c)

	case TRAP_OUT:
		err = cpu.Console.WriteChar(byte(cpu.Reg[R0]))
		if err != nil {
			return
		}
		err = cpu.Console.Flush()

	case TRAP_PUTS:
		// One character per word, terminated by a zero word.
		for addr := cpu.Reg[R0]; ; addr++ {
			c := cpu.Mem.Read(addr)
			if c == 0 {
				break
			}
			err = cpu.Console.WriteChar(byte(c))
			if err != nil {
				return
			}
		}
		err = cpu.Console.Flush()

	case TRAP_IN:
		err = cpu.puts(f("Enter a character: "))
		if err != nil {
			return
		}
		var c byte
		c, err = cpu.Console.ReadChar()
		if err != nil {
			return
		}
		err = cpu.Console.WriteChar(c)
		if err != nil {
			return
		}
		err = cpu.Console.Flush()
		if err != nil {
			return
		}
		cpu.Reg[R0] = uint16(c)

	case TRAP_PUTSP:
		// Two characters per word, low byte first, terminated by a zero
		// word. A zero high byte ends the word early but not the string.
		for addr := cpu.Reg[R0]; ; addr++ {
			word := cpu.Mem.Read(addr)
			if word == 0 {
				break
			}
			err = cpu.Console.WriteChar(byte(word))
			if err != nil {
				return
			}
			if word>>8 != 0 {
				err = cpu.Console.WriteChar(byte(word >> 8))
				if err != nil {
					return
				}
			}
		}
		err = cpu.Console.Flush()

	case TRAP_HALT:
		err = cpu.puts(f("HALT\n"))
		if err != nil {
			return
		}
		cpu.halted = true

	default:
		err = ErrTrap(vector)
	}

	return
}

// puts writes a host-side string through the console and flushes it.
func (cpu *Cpu) puts(text string) (err error) {
	for _, c := range []byte(text) {
		err = cpu.Console.WriteChar(c)
		if err != nil {
			return
		}
	}
	err = cpu.Console.Flush()

	return
}
