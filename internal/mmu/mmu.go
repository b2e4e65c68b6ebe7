// Package mmu implements the SM83's 64KB memory bus. Every location
// has a dispatch entry built once at construction, so region decoding
// is not repeated on each access.
package mmu

import (
	"github.com/sm83go/sm83/internal/cartridge"
	"github.com/sm83go/sm83/internal/ram"
	"github.com/sm83go/sm83/internal/types"
	"github.com/sm83go/sm83/pkg/log"
)

// MMU is the memory bus. It owns work RAM, video RAM, OAM and HRAM,
// and routes the remaining regions to the cartridge and the hardware
// register block.
type MMU struct {
	raw [65536]*types.Address

	wram WRAM
	vram *ram.RAM
	oam  *ram.RAM
	hram *ram.RAM

	cart     cartridge.Cartridge
	hardware types.HardwareRegisters

	log log.Logger
}

// NewMMU returns a new memory bus for the given cartridge. It
// collects the hardware registers defined so far, so every component
// that maps registers must be constructed first.
func NewMMU(cart cartridge.Cartridge, logger log.Logger) *MMU {
	m := &MMU{
		vram:     ram.NewRAM(0x2000),
		oam:      ram.NewRAM(0xA0),
		hram:     ram.NewRAM(0x7F),
		cart:     cart,
		hardware: types.CollectHardwareRegisters(),
		log:      logger,
	}
	m.buildDispatch()
	return m
}

func (m *MMU) buildDispatch() {
	cartridgeSpace := &types.Address{
		Read:  m.cart.Read,
		Write: m.cart.Write,
	}
	wramSpace := &types.Address{
		Read:  m.wram.Read,
		Write: m.wram.Write,
	}
	vramSpace := &types.Address{
		Read:  func(a uint16) uint8 { return m.vram.Read(a - 0x8000) },
		Write: func(a uint16, v uint8) { m.vram.Write(a-0x8000, v) },
	}
	oamSpace := &types.Address{
		Read:  func(a uint16) uint8 { return m.oam.Read(a - 0xFE00) },
		Write: func(a uint16, v uint8) { m.oam.Write(a-0xFE00, v) },
	}
	hramSpace := &types.Address{
		Read:  func(a uint16) uint8 { return m.hram.Read(a - 0xFF80) },
		Write: func(a uint16, v uint8) { m.hram.Write(a-0xFF80, v) },
	}
	unusableSpace := &types.Address{
		Read:  func(a uint16) uint8 { return 0xFF },
		Write: func(a uint16, v uint8) {},
	}
	hardwareSpace := &types.Address{
		Read:  m.hardware.Read,
		Write: m.hardware.Write,
	}

	for i := 0; i < 65536; i++ {
		a := uint16(i)
		switch {
		case a < 0x8000:
			m.raw[i] = cartridgeSpace
		case a < 0xA000:
			m.raw[i] = vramSpace
		case a < 0xC000:
			m.raw[i] = cartridgeSpace
		case a < 0xFE00:
			// 0xE000 - 0xFDFF echoes work RAM via address masking
			m.raw[i] = wramSpace
		case a < 0xFEA0:
			m.raw[i] = oamSpace
		case a < 0xFF00:
			m.raw[i] = unusableSpace
		case a < 0xFF80:
			m.raw[i] = hardwareSpace
		case a < 0xFFFF:
			m.raw[i] = hramSpace
		default:
			m.raw[i] = hardwareSpace
		}
	}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the byte to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

// Read16 reads a little-endian 16-bit value at the given address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address+1))<<8 | uint16(m.Read(address))
}

// Write16 writes a little-endian 16-bit value to the given address.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// Cartridge returns the attached cartridge.
func (m *MMU) Cartridge() cartridge.Cartridge {
	return m.cart
}
