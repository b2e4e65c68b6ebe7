package types

// Address represents a memory address in the SM83's 64KB address
// space, which can be read from or written to. The bus holds one
// Address per location and dispatches through it, so region decoding
// happens once, at wiring time, rather than on every access.
type Address struct {
	// Read is called when the CPU reads from the address.
	Read func(address uint16) uint8
	// Write is called when the CPU writes to the address.
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a hardware register.
// The hardware registers are mapped to memory addresses
// 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the joypad register. The joypad is an
	// external collaborator and is not mapped by this core; reads
	// fall through to the 0xFF fallback.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register. It holds the
	// next byte to be transferred over the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. It controls
	// the serial port; writing 0x81 requests a transfer.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Internally
	// it is a 16-bit counter incremented every T-cycle, but only the
	// upper 8 bits may be read. Writing any value resets the full
	// counter to zero.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. TIMA is
	// incremented at the rate selected by TAC. When it overflows it
	// is reloaded from TMA and a timer interrupt is requested, both
	// one machine cycle after the overflow.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. TMA is
	// loaded into TIMA when TIMA overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register.
	//
	//  Bit 2: Timer enable
	//  Bits 1-0: Frequency select (4096, 262144, 65536, 16384 Hz)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register, the interrupt
	// request mask.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h)
	//  Bit 2: Timer Interrupt Request (INT 50h)
	//  Bit 3: Serial Interrupt Request (INT 58h)
	//  Bit 4: Joypad Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F
	// IE is the address of the IE hardware register, the interrupt
	// enable mask. It sits alone at the very top of the address
	// space, outside the I/O block.
	IE HardwareAddress = 0xFFFF
)
