package types

import (
	"fmt"
)

var hardwareRegisters = HardwareRegisters{}

// HardwareRegisters is the I/O register block, indexed by the
// register's address ANDed with 0x007F. The IE register (0xFFFF)
// shares index 0x7F; the bus resolves the collision by address.
type HardwareRegisters [0x80]*HardwareRegister

// Read returns the value of the hardware register for the given
// address. Addresses with no register behind them read back 0xFF.
func (h HardwareRegisters) Read(address uint16) uint8 {
	// the IE register is at index 0x7F, which 0xFF7F would also map
	// to, so IE is checked by full address first
	if address == 0xFFFF {
		return h[0x7F].Read()
	}
	if h[address&0x007F] == nil || address == 0xFF7F {
		return 0xFF
	}
	return h[address&0x007F].Read()
}

// Write writes the given value to the hardware register for the
// given address. Writes to unoccupied addresses are discarded.
func (h HardwareRegisters) Write(address uint16, value uint8) {
	// IE shares index 0x7F with the unmapped 0xFF7F, so only the
	// full address 0xFFFF may reach it
	if address == 0xFFFF {
		h[0x7F].Write(value)
		return
	}
	if h[address&0x007F] == nil || address == 0xFF7F {
		return
	}
	h[address&0x007F].Write(value)
}

// CollectHardwareRegisters returns the registers defined so far and
// clears the package-level set, so that a fresh machine can be wired
// up (for example, when running multiple emulator instances in tests).
func CollectHardwareRegisters() HardwareRegisters {
	hardware := hardwareRegisters
	hardwareRegisters = HardwareRegisters{}
	return hardware
}

// HardwareRegister represents a single memory-mapped hardware
// register, owned by whichever component registered it.
type HardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

// RegisterHardware defines a hardware register with the given address
// and read/write functions. Components call this at construction time;
// the bus later collects the full set with CollectHardwareRegisters.
func RegisterHardware(address HardwareAddress, write func(v uint8), read func() uint8) {
	hardwareRegisters[address&0x007F] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

func (h *HardwareRegister) Read() uint8 {
	if h.read != nil {
		return h.read()
	}
	panic(fmt.Sprintf("hardware: no read function for address 0x%04X", h.address))
}

func (h *HardwareRegister) Write(value uint8) {
	if h.write != nil {
		h.write(value)
		return
	}
	panic(fmt.Sprintf("hardware: no write function for address 0x%04X", h.address))
}
