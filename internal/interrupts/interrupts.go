// Package interrupts implements the SM83's interrupt controller,
// exposing the IF and IE hardware registers and the master enable
// flag shared between the CPU and the peripherals.
package interrupts

import (
	"github.com/sm83go/sm83/internal/types"
)

const (
	// VBlankFlag is the flag for the V-Blank interrupt (bit 0),
	// vector 0x0040.
	VBlankFlag = types.Bit0
	// LCDFlag is the flag for the LCD STAT interrupt (bit 1),
	// vector 0x0048.
	LCDFlag = types.Bit1
	// TimerFlag is the flag for the timer interrupt (bit 2),
	// vector 0x0050. Requested when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the flag for the serial interrupt (bit 3),
	// vector 0x0058. Requested when a serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is the flag for the joypad interrupt (bit 4),
	// vector 0x0060.
	JoypadFlag = types.Bit4
)

// Service represents the interrupt controller. It holds the IF and
// IE registers and the IME flag. Peripherals request interrupts by
// calling Request; the CPU polls Pending between instructions and
// fetches the vector to jump to with Vector.
type Service struct {
	// Flag is the IF register (0xFF0F). Only the low 5 bits are
	// backed by hardware; the upper 3 read as 1.
	Flag uint8
	// Enable is the IE register (0xFFFF).
	Enable uint8

	// IME is the interrupt master enable flag. It gates servicing
	// only; pending interrupts still wake HALT when it is clear.
	IME bool
}

// NewService returns a new interrupt controller with its hardware
// registers defined.
func NewService() *Service {
	s := &Service{}

	types.RegisterHardware(types.IF, func(v uint8) {
		s.Flag = v & 0x1F
	}, func() uint8 {
		return s.Flag | 0xE0
	})
	types.RegisterHardware(types.IE, func(v uint8) {
		s.Enable = v
	}, func() uint8 {
		return s.Enable
	})

	return s
}

// Request requests the interrupt with the given flag.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
	s.Flag &= 0x1F
}

// Pending reports whether any requested interrupt is also enabled.
// This is independent of IME.
func (s *Service) Pending() bool {
	return s.Flag&s.Enable&0x1F != 0
}

// Vector acknowledges the highest-priority pending interrupt,
// clearing its IF bit, and returns its handler address. Bit 0
// (V-Blank) has the highest priority. Returns 0 if nothing is
// pending.
func (s *Service) Vector() uint16 {
	for i := uint8(0); i < 5; i++ {
		if s.Flag&(1<<i) != 0 && s.Enable&(1<<i) != 0 {
			s.Flag &^= 1 << i
			return uint16(0x0040 + i*8)
		}
	}
	return 0
}
