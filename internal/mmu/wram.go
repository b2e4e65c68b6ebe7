package mmu

// WRAM is the 8KiB of work RAM at 0xC000 - 0xDFFF. Addresses are
// masked to 13 bits, so the echo region at 0xE000 - 0xFDFF aliases
// it for free.
type WRAM struct {
	data [0x2000]uint8
}

func (w *WRAM) Read(address uint16) uint8 {
	return w.data[address&0x1FFF]
}

func (w *WRAM) Write(address uint16, value uint8) {
	w.data[address&0x1FFF] = value
}
