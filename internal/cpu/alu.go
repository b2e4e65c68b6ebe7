package cpu

// add adds value (plus the carry flag, for ADC) to A.
func (c *CPU) add(value uint8, carry bool) {
	var cy uint8
	if carry && c.isFlagSet(FlagCarry) {
		cy = 1
	}
	result := uint16(c.A) + uint16(value) + uint16(cy)
	c.flagWhen(FlagHalfCarry, c.A&0x0F+value&0x0F+cy > 0x0F)
	c.flagWhen(FlagCarry, result > 0xFF)
	c.A = uint8(result)
	c.flagWhen(FlagZero, c.A == 0)
	c.clearFlag(FlagSubtract)
}

// sub subtracts value (plus the carry flag, for SBC) from A.
func (c *CPU) sub(value uint8, carry bool) {
	var cy uint8
	if carry && c.isFlagSet(FlagCarry) {
		cy = 1
	}
	result := int16(c.A) - int16(value) - int16(cy)
	c.flagWhen(FlagHalfCarry, int16(c.A&0x0F)-int16(value&0x0F)-int16(cy) < 0)
	c.flagWhen(FlagCarry, result < 0)
	c.A = uint8(result)
	c.flagWhen(FlagZero, c.A == 0)
	c.setFlag(FlagSubtract)
}

// compare subtracts value from A for the flags only.
func (c *CPU) compare(value uint8) {
	a := c.A
	c.sub(value, false)
	c.A = a
}

func (c *CPU) and(value uint8) {
	c.A &= value
	c.flagWhen(FlagZero, c.A == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
}

func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.flagWhen(FlagZero, c.A == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
}

func (c *CPU) or(value uint8) {
	c.A |= value
	c.flagWhen(FlagZero, c.A == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
}

// increment returns value+1. The carry flag is untouched.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.flagWhen(FlagHalfCarry, value&0x0F == 0x0F)
	return result
}

// decrement returns value-1. The carry flag is untouched.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.flagWhen(FlagZero, result == 0)
	c.setFlag(FlagSubtract)
	c.flagWhen(FlagHalfCarry, value&0x0F == 0)
	return result
}

// addHL adds value to HL. The zero flag is untouched.
func (c *CPU) addHL(value uint16) {
	hl := c.HL()
	result := uint32(hl) + uint32(value)
	c.clearFlag(FlagSubtract)
	c.flagWhen(FlagHalfCarry, hl&0x0FFF+value&0x0FFF > 0x0FFF)
	c.flagWhen(FlagCarry, result > 0xFFFF)
	c.SetHL(uint16(result))
}

// addSPSigned returns SP plus the signed offset. The half-carry and
// carry flags come from the low byte, as for an 8-bit addition.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.flagWhen(FlagHalfCarry, c.SP&0x0F+uint16(offset&0x0F) > 0x0F)
	c.flagWhen(FlagCarry, c.SP&0xFF+uint16(offset) > 0xFF)
	return c.SP + uint16(int8(offset))
}

// decimalAdjust adjusts A after a BCD addition or subtraction (DAA).
func (c *CPU) decimalAdjust() {
	a := c.A
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || a > 0x99 {
			a += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.A = a
	c.flagWhen(FlagZero, a == 0)
	c.clearFlag(FlagHalfCarry)
}

// rotateLeftCarry rotates value left, bit 7 into both bit 0 and the
// carry flag (RLC).
func (c *CPU) rotateLeftCarry(value uint8) uint8 {
	carry := value >> 7
	result := value<<1 | carry
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.flagWhen(FlagCarry, carry == 1)
	return result
}

// rotateLeft rotates value left through the carry flag (RL).
func (c *CPU) rotateLeft(value uint8) uint8 {
	var carryIn uint8
	if c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	result := value<<1 | carryIn
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.flagWhen(FlagCarry, value&0x80 != 0)
	return result
}

// rotateRightCarry rotates value right, bit 0 into both bit 7 and
// the carry flag (RRC).
func (c *CPU) rotateRightCarry(value uint8) uint8 {
	carry := value & 1
	result := value>>1 | carry<<7
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.flagWhen(FlagCarry, carry == 1)
	return result
}

// rotateRight rotates value right through the carry flag (RR).
func (c *CPU) rotateRight(value uint8) uint8 {
	var carryIn uint8
	if c.isFlagSet(FlagCarry) {
		carryIn = 0x80
	}
	result := value>>1 | carryIn
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.flagWhen(FlagCarry, value&1 != 0)
	return result
}

// shiftLeftArithmetic shifts value left into the carry flag (SLA).
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	result := value << 1
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.flagWhen(FlagCarry, value&0x80 != 0)
	return result
}

// shiftRightArithmetic shifts value right, preserving the sign bit
// (SRA).
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.flagWhen(FlagCarry, value&1 != 0)
	return result
}

// shiftRightLogical shifts value right, bit 7 cleared (SRL).
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	result := value >> 1
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.flagWhen(FlagCarry, value&1 != 0)
	return result
}

// swap exchanges the nibbles of value.
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.flagWhen(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	return result
}

// testBit tests bit n of value (BIT). The carry flag is untouched.
func (c *CPU) testBit(n uint8, value uint8) {
	c.flagWhen(FlagZero, value&(1<<n) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}
