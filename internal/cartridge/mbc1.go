package cartridge

// mbc1 implements the MBC1 mapper: up to 2MiB of ROM in 16KiB banks
// and up to 32KiB of external RAM in 8KiB banks.
type mbc1 struct {
	rom    []byte
	ram    []byte
	header *Header

	ramEnabled bool
	romBank    uint8 // 5-bit bank register
	bankHigh   uint8 // 2-bit register, ROM bits 5-6 or RAM bank
	mode       uint8 // 0 = ROM banking, 1 = RAM banking
}

func newMBC1(rom []byte, header *Header) *mbc1 {
	return &mbc1{
		rom:     rom,
		ram:     make([]byte, header.RAMSize),
		header:  header,
		romBank: 1,
	}
}

func (c *mbc1) romBanks() uint8 {
	return uint8(len(c.rom) / 0x4000)
}

func (c *mbc1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		bank := uint8(0)
		if c.mode == 1 {
			bank = (c.bankHigh << 5) % c.romBanks()
		}
		return c.rom[uint32(bank)*0x4000+uint32(address)]
	case address < 0x8000:
		bank := (c.bankHigh<<5 | c.romBank) % c.romBanks()
		return c.rom[uint32(bank)*0x4000+uint32(address-0x4000)]
	case address >= 0xA000 && address < 0xC000:
		if !c.ramEnabled || len(c.ram) == 0 {
			return 0xFF
		}
		return c.ram[c.ramOffset(address)]
	}
	return 0xFF
}

func (c *mbc1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		c.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// bank 0 is never selectable in the switchable region
		c.romBank = value & 0x1F
		if c.romBank == 0 {
			c.romBank = 1
		}
	case address < 0x6000:
		c.bankHigh = value & 0x03
	case address < 0x8000:
		c.mode = value & 0x01
	case address >= 0xA000 && address < 0xC000:
		if c.ramEnabled && len(c.ram) > 0 {
			c.ram[c.ramOffset(address)] = value
		}
	}
}

func (c *mbc1) ramOffset(address uint16) uint32 {
	offset := uint32(address - 0xA000)
	if c.mode == 1 {
		offset += uint32(c.bankHigh) * 0x2000
	}
	return offset % uint32(len(c.ram))
}

func (c *mbc1) Header() *Header {
	return c.header
}
