package cartridge

// romCartridge is a plain 32KiB ROM with no mapper, optionally with
// 8KiB of external RAM.
type romCartridge struct {
	rom    []byte
	ram    []byte
	header *Header
}

func newROM(rom []byte, header *Header) *romCartridge {
	return &romCartridge{
		rom:    rom,
		ram:    make([]byte, header.RAMSize),
		header: header,
	}
}

func (c *romCartridge) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		if int(address) < len(c.rom) {
			return c.rom[address]
		}
		return 0xFF
	case address >= 0xA000 && address < 0xC000:
		if offset := int(address - 0xA000); offset < len(c.ram) {
			return c.ram[offset]
		}
		return 0xFF
	}
	return 0xFF
}

func (c *romCartridge) Write(address uint16, value uint8) {
	// ROM is not writable and there is no mapper to command
	if address >= 0xA000 && address < 0xC000 {
		if offset := int(address - 0xA000); offset < len(c.ram) {
			c.ram[offset] = value
		}
	}
}

func (c *romCartridge) Header() *Header {
	return c.header
}
