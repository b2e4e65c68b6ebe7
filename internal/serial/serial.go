// Package serial implements the SM83's serial port. No link partner
// is modelled; a transfer completes immediately and the transmitted
// byte is captured, which is enough for test ROMs that report their
// results over the link cable.
package serial

import (
	"io"

	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/types"
)

// Controller is the serial port controller. It exposes the SB and SC
// hardware registers.
type Controller struct {
	sb uint8
	sc uint8

	irq    *interrupts.Service
	output []byte
	writer io.Writer
}

// NewController returns a new serial controller with its hardware
// registers defined.
func NewController(irq *interrupts.Service) *Controller {
	c := &Controller{
		irq: irq,
	}

	types.RegisterHardware(types.SB, func(v uint8) {
		c.sb = v
	}, func() uint8 {
		return c.sb
	})
	types.RegisterHardware(types.SC, func(v uint8) {
		c.sc = v | 0x7E
		// bit 7 requests a transfer, bit 0 selects the internal
		// clock; with no partner attached only internally clocked
		// transfers ever complete
		if v&types.Bit7 != 0 && v&types.Bit0 != 0 {
			c.transfer()
		}
	}, func() uint8 {
		return c.sc | 0x7E
	})

	return c
}

func (c *Controller) transfer() {
	c.output = append(c.output, c.sb)
	if c.writer != nil {
		c.writer.Write([]byte{c.sb})
	}

	// the disconnected link shifts in all ones
	c.sb = 0xFF
	c.sc &^= types.Bit7
	c.irq.Request(interrupts.SerialFlag)
}

// Output returns every byte transmitted so far.
func (c *Controller) Output() []byte {
	return c.output
}

// Attach mirrors transmitted bytes to w as they are sent.
func (c *Controller) Attach(w io.Writer) {
	c.writer = w
}
