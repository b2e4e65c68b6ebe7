package cpu

import (
	"github.com/sm83go/sm83/internal/types"
)

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero = types.Bit7
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract = types.Bit6
	// FlagHalfCarry is set on a carry out of bit 3 (bit 11 for
	// 16-bit additions).
	FlagHalfCarry = types.Bit5
	// FlagCarry is set on a carry out of bit 7 (bit 15 for 16-bit
	// additions).
	FlagCarry = types.Bit4
)

// setFlag sets the given flag in F.
func (c *CPU) setFlag(flag uint8) {
	c.F |= flag
}

// clearFlag clears the given flag in F.
func (c *CPU) clearFlag(flag uint8) {
	c.F &^= flag
}

// flagWhen sets or clears the given flag depending on cond.
func (c *CPU) flagWhen(flag uint8, cond bool) {
	if cond {
		c.F |= flag
	} else {
		c.F &^= flag
	}
}

// isFlagSet reports whether the given flag is set.
func (c *CPU) isFlagSet(flag uint8) bool {
	return c.F&flag != 0
}
