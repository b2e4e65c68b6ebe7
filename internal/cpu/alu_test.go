package cpu

import (
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, v    uint8
		carryIn bool
		useADC  bool
		want    uint8
		z, n, h, cy bool
	}{
		{name: "simple", a: 0x01, v: 0x02, want: 0x03},
		{name: "half carry", a: 0x0F, v: 0x01, want: 0x10, h: true},
		{name: "carry and zero", a: 0x80, v: 0x80, want: 0x00, z: true, cy: true},
		{name: "overflow wraps", a: 0xFF, v: 0x02, want: 0x01, h: true, cy: true},
		{name: "adc adds carry", a: 0x00, v: 0x00, carryIn: true, useADC: true, want: 0x01},
		{name: "adc half carry from carry", a: 0x0F, v: 0x00, carryIn: true, useADC: true, want: 0x10, h: true},
		{name: "adc wraps to zero", a: 0xFF, v: 0x00, carryIn: true, useADC: true, want: 0x00, z: true, h: true, cy: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCPU()
			c.F = 0
			c.flagWhen(FlagCarry, tc.carryIn)
			c.A = tc.a
			c.add(tc.v, tc.useADC)

			if c.A != tc.want {
				t.Errorf("expected A=0x%02X, got 0x%02X", tc.want, c.A)
			}
			checkFlags(t, c, tc.z, tc.n, tc.h, tc.cy)
		})
	}
}

func TestAddAToItself(t *testing.T) {
	c := newTestCPU()
	c.A = 0x80
	c.F = 0
	load(c, 0x87) // ADD A, A
	c.Step()

	if c.A != 0 {
		t.Errorf("expected A=0, got 0x%02X", c.A)
	}
	checkFlags(t, c, true, false, false, true)
}

func TestSub(t *testing.T) {
	tests := []struct {
		name    string
		a, v    uint8
		carryIn bool
		useSBC  bool
		want    uint8
		z, h, cy bool
	}{
		{name: "simple", a: 0x03, v: 0x01, want: 0x02},
		{name: "zero", a: 0x42, v: 0x42, want: 0x00, z: true},
		{name: "half borrow", a: 0x10, v: 0x01, want: 0x0F, h: true},
		{name: "borrow wraps", a: 0x00, v: 0x01, want: 0xFF, h: true, cy: true},
		{name: "sbc subtracts carry", a: 0x03, v: 0x01, carryIn: true, useSBC: true, want: 0x01},
		{name: "sbc borrow chain", a: 0x00, v: 0xFF, carryIn: true, useSBC: true, want: 0x00, z: true, h: true, cy: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCPU()
			c.F = 0
			c.flagWhen(FlagCarry, tc.carryIn)
			c.A = tc.a
			c.sub(tc.v, tc.useSBC)

			if c.A != tc.want {
				t.Errorf("expected A=0x%02X, got 0x%02X", tc.want, c.A)
			}
			checkFlags(t, c, tc.z, true, tc.h, tc.cy)
		})
	}
}

func TestCompareLeavesA(t *testing.T) {
	c := newTestCPU()
	c.A = 0x42
	c.compare(0x42)
	if c.A != 0x42 {
		t.Errorf("expected CP to leave A, got 0x%02X", c.A)
	}
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagSubtract) {
		t.Errorf("expected Z and N set, got F=0x%02X", c.F)
	}
}

func TestLogicOps(t *testing.T) {
	c := newTestCPU()

	c.A = 0xF0
	c.and(0x0F)
	if c.A != 0 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("AND: expected A=0 Z H, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c.A = 0xF0
	c.or(0x0F)
	if c.A != 0xFF || c.isFlagSet(FlagZero) || c.isFlagSet(FlagHalfCarry) {
		t.Errorf("OR: expected A=0xFF, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c.A = 0xFF
	c.xor(0xFF)
	if c.A != 0 || !c.isFlagSet(FlagZero) {
		t.Errorf("XOR: expected A=0 Z, got A=0x%02X F=0x%02X", c.A, c.F)
	}
}

func TestIncDecPreserveCarry(t *testing.T) {
	c := newTestCPU()
	c.setFlag(FlagCarry)

	if got := c.increment(0x0F); got != 0x10 || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("INC 0x0F: got 0x%02X F=0x%02X", got, c.F)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("expected INC to preserve the carry flag")
	}

	if got := c.decrement(0x10); got != 0x0F || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("DEC 0x10: got 0x%02X F=0x%02X", got, c.F)
	}
	if got := c.decrement(0x01); got != 0x00 || !c.isFlagSet(FlagZero) {
		t.Errorf("DEC 0x01: got 0x%02X F=0x%02X", got, c.F)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("expected DEC to preserve the carry flag")
	}
}

func TestAddHL(t *testing.T) {
	c := newTestCPU()
	c.F = 0
	c.setFlag(FlagZero) // must survive

	c.SetHL(0x0FFF)
	c.addHL(0x0001)
	if c.HL() != 0x1000 {
		t.Errorf("expected HL=0x1000, got 0x%04X", c.HL())
	}
	if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Errorf("expected H only, got F=0x%02X", c.F)
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("expected the zero flag to be untouched")
	}

	c.SetHL(0xFFFF)
	c.addHL(0x0001)
	if c.HL() != 0x0000 || !c.isFlagSet(FlagCarry) {
		t.Errorf("expected wrap with carry, got HL=0x%04X F=0x%02X", c.HL(), c.F)
	}
}

func TestInc16NoFlags(t *testing.T) {
	c := newTestCPU()
	c.F = 0
	c.SetBC(0xFFFF)
	load(c, 0x03) // INC BC
	c.Step()

	if c.BC() != 0x0000 {
		t.Errorf("expected BC to wrap to 0, got 0x%04X", c.BC())
	}
	if c.F != 0 {
		t.Errorf("expected no flags from 16-bit INC, got F=0x%02X", c.F)
	}

	c.PC = 0xC000
	load(c, 0x0B) // DEC BC
	c.Step()
	if c.BC() != 0xFFFF {
		t.Errorf("expected BC to wrap to 0xFFFF, got 0x%04X", c.BC())
	}
	if c.F != 0 {
		t.Errorf("expected no flags from 16-bit DEC, got F=0x%02X", c.F)
	}
}

func TestAddSPSigned(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFF8

	if got := c.addSPSigned(0x08); got != 0x0000 {
		t.Errorf("expected 0x0000, got 0x%04X", got)
	}
	// flags come from the low byte only
	if !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected H and C, got F=0x%02X", c.F)
	}
	if c.isFlagSet(FlagZero) {
		t.Error("expected the zero flag to always clear")
	}

	if got := c.addSPSigned(0xFE); got != 0xFFF6 { // -2
		t.Errorf("expected 0xFFF6, got 0x%04X", got)
	}
}

func TestDAA(t *testing.T) {
	c := newTestCPU()

	// 0x45 + 0x38 = 0x7D, adjusted to 0x83
	c.A = 0x45
	c.F = 0
	c.add(0x38, false)
	c.decimalAdjust()
	if c.A != 0x83 {
		t.Errorf("expected BCD 0x83, got 0x%02X", c.A)
	}

	// 0x83 - 0x38 = 0x4B, adjusted back to 0x45
	c.sub(0x38, false)
	c.decimalAdjust()
	if c.A != 0x45 {
		t.Errorf("expected BCD 0x45, got 0x%02X", c.A)
	}

	// 0x99 + 0x01 = 0x9A, adjusted to 0x00 with carry
	c.A = 0x99
	c.F = 0
	c.add(0x01, false)
	c.decimalAdjust()
	if c.A != 0x00 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
		t.Errorf("expected 0x00 with Z and C, got A=0x%02X F=0x%02X", c.A, c.F)
	}
}

func TestRotates(t *testing.T) {
	c := newTestCPU()

	c.F = 0
	if got := c.rotateLeftCarry(0x85); got != 0x0B || !c.isFlagSet(FlagCarry) {
		t.Errorf("RLC 0x85: got 0x%02X F=0x%02X", got, c.F)
	}
	c.F = 0
	if got := c.rotateRightCarry(0x01); got != 0x80 || !c.isFlagSet(FlagCarry) {
		t.Errorf("RRC 0x01: got 0x%02X F=0x%02X", got, c.F)
	}
	c.F = 0
	c.setFlag(FlagCarry)
	if got := c.rotateLeft(0x80); got != 0x01 || !c.isFlagSet(FlagCarry) {
		t.Errorf("RL 0x80: got 0x%02X F=0x%02X", got, c.F)
	}
	c.F = 0
	if got := c.rotateRight(0x01); got != 0x00 || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagZero) {
		t.Errorf("RR 0x01: got 0x%02X F=0x%02X", got, c.F)
	}
	c.F = 0
	if got := c.shiftRightArithmetic(0x81); got != 0xC0 || !c.isFlagSet(FlagCarry) {
		t.Errorf("SRA 0x81: got 0x%02X F=0x%02X", got, c.F)
	}
	c.F = 0
	if got := c.shiftRightLogical(0x81); got != 0x40 || !c.isFlagSet(FlagCarry) {
		t.Errorf("SRL 0x81: got 0x%02X F=0x%02X", got, c.F)
	}
	c.F = 0
	if got := c.swap(0xAB); got != 0xBA || c.F != 0 {
		t.Errorf("SWAP 0xAB: got 0x%02X F=0x%02X", got, c.F)
	}
}

func TestRotateAClearsZero(t *testing.T) {
	c := newTestCPU()
	c.A = 0x00
	c.F = 0
	load(c, 0x07) // RLCA
	c.Step()
	if c.isFlagSet(FlagZero) {
		t.Error("expected RLCA to clear the zero flag even for a zero result")
	}
}

// checkFlags asserts the full flag register.
func checkFlags(t *testing.T, c *CPU, z, n, h, cy bool) {
	t.Helper()
	for _, f := range []struct {
		name string
		flag uint8
		want bool
	}{
		{"Z", FlagZero, z},
		{"N", FlagSubtract, n},
		{"H", FlagHalfCarry, h},
		{"C", FlagCarry, cy},
	} {
		if c.isFlagSet(f.flag) != f.want {
			t.Errorf("expected %s=%v, F=0x%02X", f.name, f.want, c.F)
		}
	}
}
