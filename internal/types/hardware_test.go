package types

import (
	"testing"
)

func TestIEReachableOnlyByFullAddress(t *testing.T) {
	var ie uint8
	RegisterHardware(IE, func(v uint8) {
		ie = v
	}, func() uint8 {
		return ie
	})
	regs := CollectHardwareRegisters()

	// 0xFF7F maps to the same index as IE but is unoccupied I/O
	regs.Write(0xFF7F, 0x1F)
	if ie != 0 {
		t.Errorf("expected a write to 0xFF7F to be discarded, IE=0x%02X", ie)
	}
	if got := regs.Read(0xFF7F); got != 0xFF {
		t.Errorf("expected 0xFF7F to read 0xFF, got 0x%02X", got)
	}

	regs.Write(0xFFFF, 0x1F)
	if ie != 0x1F {
		t.Errorf("expected IE=0x1F, got 0x%02X", ie)
	}
	if got := regs.Read(0xFFFF); got != 0x1F {
		t.Errorf("expected IE to read 0x1F, got 0x%02X", got)
	}
}

func TestUnoccupiedRegisterAccess(t *testing.T) {
	regs := CollectHardwareRegisters()

	// nothing registered: reads fall back to open bus, writes are
	// discarded without panicking
	regs.Write(0xFF03, 0x12)
	if got := regs.Read(0xFF03); got != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02X", got)
	}
}
