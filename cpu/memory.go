package cpu

// MEM_MAX is the number of addressable words.
const MEM_MAX = 1 << 16

// Memory-mapped device register addresses.
const (
	MR_KBSR = uint16(0xFE00) // keyboard status: bit 15 set while a key is pending
	MR_KBDR = uint16(0xFE02) // keyboard data: the pending character
)

// Poller reports and consumes a pending input character without blocking.
// console.Console satisfies it.
type Poller interface {
	Poll() (c byte, ok bool)
}

// Memory is the flat 65536-word address space. Addresses are 16 bits, so
// every access is in range by construction. The keyboard device is mapped
// at MR_KBSR/MR_KBDR; all other addresses are passive storage.
type Memory struct {
	// Keyboard is polled on every read of MR_KBSR. A nil Keyboard reads
	// as a device with no pending input.
	Keyboard Poller

	cells [MEM_MAX]uint16
}

// NewMemory creates a zeroed Memory polling the given keyboard.
func NewMemory(keyboard Poller) *Memory {
	return &Memory{Keyboard: keyboard}
}

// Read returns the word at addr. Reading MR_KBSR polls the keyboard: if a
// character is pending, bit 15 of the status word is set and the character
// lands in MR_KBDR; otherwise the status word reads as zero.
func (mem *Memory) Read(addr uint16) uint16 {
	if addr == MR_KBSR {
		if c, ok := mem.poll(); ok {
			mem.cells[MR_KBSR] = 1 << 15
			mem.cells[MR_KBDR] = uint16(c)
		} else {
			mem.cells[MR_KBSR] = 0
		}
	}

	return mem.cells[addr]
}

// Write stores value at addr. Guest stores to the keyboard registers are
// ignored so they cannot clobber device state.
func (mem *Memory) Write(addr, value uint16) {
	if addr == MR_KBSR || addr == MR_KBDR {
		return
	}

	mem.cells[addr] = value
}

// Load stores words contiguously starting at origin, bypassing device
// register interception. The image loader uses it to populate memory
// before execution.
func (mem *Memory) Load(origin uint16, words []uint16) {
	for n, value := range words {
		mem.cells[origin+uint16(n)] = value
	}
}

func (mem *Memory) poll() (c byte, ok bool) {
	if mem.Keyboard == nil {
		return
	}

	return mem.Keyboard.Poll()
}
