// Package timer implements the SM83's timer. The timer is backed by
// a single 16-bit counter incremented every T-cycle; DIV is the upper
// 8 bits of that counter, and TIMA increments on falling edges of a
// multiplexed counter bit. Because the edge detector watches the
// counter directly, writes to DIV and TAC can produce spurious TIMA
// increments, which are emulated here as hardware does them.
package timer

import (
	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/types"
)

// multiplexer bit masks for TAC frequency select values 0-3
// (4096 Hz, 262144 Hz, 65536 Hz, 16384 Hz)
var timaBits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is the timer controller. It exposes the DIV, TIMA, TMA
// and TAC hardware registers and requests the timer interrupt when
// TIMA overflows.
type Controller struct {
	internalDiv uint16
	tima        uint8
	tma         uint8
	tac         uint8

	timaEnabled bool
	currentBit  uint16
	lastBit     bool

	// TIMA holds 0x00 for one machine cycle after overflowing
	// before being reloaded from TMA
	overflow           bool
	ticksSinceOverflow uint8

	irq *interrupts.Service
}

// NewController returns a new timer controller with its hardware
// registers defined. The divider starts at its DMG power-on value.
func NewController(irq *interrupts.Service) *Controller {
	c := &Controller{
		irq:         irq,
		internalDiv: 0xABCC,
		currentBit:  timaBits[0],
	}

	types.RegisterHardware(types.DIV, func(v uint8) {
		// resetting the counter drops the selected bit, which the
		// edge detector sees as a falling edge
		old := c.internalDiv
		c.internalDiv = 0
		if c.timaEnabled && old&c.currentBit != 0 {
			c.incrementTIMA()
		}
		c.lastBit = false
	}, func() uint8 {
		return uint8(c.internalDiv >> 8)
	})
	types.RegisterHardware(types.TIMA, func(v uint8) {
		// a write on the reload cycle itself is lost; earlier in
		// the overflow window it cancels the pending reload
		if c.ticksSinceOverflow != 4 {
			c.tima = v
			c.overflow = false
			c.ticksSinceOverflow = 0
		}
	}, func() uint8 {
		return c.tima
	})
	types.RegisterHardware(types.TMA, func(v uint8) {
		c.tma = v
		// a write on the reload cycle is forwarded to TIMA
		if c.ticksSinceOverflow == 4 {
			c.tima = v
		}
	}, func() uint8 {
		return c.tma
	})
	types.RegisterHardware(types.TAC, func(v uint8) {
		wasEnabled := c.timaEnabled
		oldBit := c.currentBit

		c.tac = v & 0x07
		c.currentBit = timaBits[v&0x03]
		c.timaEnabled = v&types.Bit2 != 0

		c.timaGlitch(wasEnabled, oldBit)
	}, func() uint8 {
		return c.tac | 0xF8
	})

	return c
}

// Tick advances the timer by one T-cycle.
func (c *Controller) Tick() {
	c.internalDiv++

	bit := c.timaEnabled && c.internalDiv&c.currentBit != 0
	if c.lastBit && !bit {
		c.incrementTIMA()
	}
	c.lastBit = bit

	if c.overflow {
		c.ticksSinceOverflow++
		switch c.ticksSinceOverflow {
		case 4:
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		case 5:
			c.overflow = false
			c.ticksSinceOverflow = 0
		}
	}
}

func (c *Controller) incrementTIMA() {
	c.tima++
	if c.tima == 0 {
		c.overflow = true
		c.ticksSinceOverflow = 0
	}
}

// timaGlitch emulates the spurious increment caused by writing to
// TAC while the selected multiplexer bit is high.
func (c *Controller) timaGlitch(wasEnabled bool, oldBit uint16) {
	if !wasEnabled {
		return
	}
	if c.internalDiv&oldBit != 0 {
		if !c.timaEnabled || c.internalDiv&c.currentBit == 0 {
			c.incrementTIMA()
		}
		c.lastBit = false
	}
}

// Divider returns the full 16-bit internal divider. Exposed for the
// CPU's STOP instruction, which resets it.
func (c *Controller) Divider() uint16 {
	return c.internalDiv
}

// ResetDivider zeroes the internal divider without the write glitch.
// Used by STOP.
func (c *Controller) ResetDivider() {
	c.internalDiv = 0
	c.lastBit = false
}
