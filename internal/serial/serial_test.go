package serial

import (
	"bytes"
	"testing"

	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/types"
)

func newTestSerial() (*Controller, *interrupts.Service, types.HardwareRegisters) {
	irq := interrupts.NewService()
	c := NewController(irq)
	return c, irq, types.CollectHardwareRegisters()
}

func TestTransfer(t *testing.T) {
	c, irq, regs := newTestSerial()

	regs.Write(types.SB, 'H')
	regs.Write(types.SC, 0x81)

	if got := string(c.Output()); got != "H" {
		t.Errorf("expected output %q, got %q", "H", got)
	}
	if irq.Flag&interrupts.SerialFlag == 0 {
		t.Error("expected serial interrupt to be requested")
	}
	// a completed transfer clears the request bit and shifts in 0xFF
	if got := regs.Read(types.SC); got&types.Bit7 != 0 {
		t.Errorf("expected SC bit 7 to clear, got 0x%02X", got)
	}
	if got := regs.Read(types.SB); got != 0xFF {
		t.Errorf("expected SB to read 0xFF after transfer, got 0x%02X", got)
	}
}

func TestExternalClockNeverCompletes(t *testing.T) {
	c, irq, regs := newTestSerial()

	regs.Write(types.SB, 'H')
	regs.Write(types.SC, 0x80) // external clock, no partner

	if len(c.Output()) != 0 {
		t.Errorf("expected no output, got %q", c.Output())
	}
	if irq.Flag&interrupts.SerialFlag != 0 {
		t.Error("expected no serial interrupt")
	}
	if got := regs.Read(types.SC); got&types.Bit7 == 0 {
		t.Error("expected SC bit 7 to stay set")
	}
}

func TestAttach(t *testing.T) {
	c, _, regs := newTestSerial()
	var buf bytes.Buffer
	c.Attach(&buf)

	for _, b := range []byte("Hi") {
		regs.Write(types.SB, b)
		regs.Write(types.SC, 0x81)
	}

	if buf.String() != "Hi" {
		t.Errorf("expected writer to receive %q, got %q", "Hi", buf.String())
	}
	if got := string(c.Output()); got != "Hi" {
		t.Errorf("expected output %q, got %q", "Hi", got)
	}
}
