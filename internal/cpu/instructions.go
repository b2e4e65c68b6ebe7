package cpu

import (
	"fmt"
)

// toWord assembles a little-endian 16-bit immediate from the operand
// bytes.
func toWord(operands []byte) uint16 {
	return uint16(operands[1])<<8 | uint16(operands[0])
}

// conditions are indexed in the opcode encoding order NZ, Z, NC, C.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func (c *CPU) condition(idx uint8) bool {
	switch idx {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}

func init() {
	registerControlInstructions()
	registerRotateAccumulatorInstructions()
	registerLoadInstructions()
	registerArithmeticInstructions()
	registerJumpInstructions()
}

func registerControlInstructions() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []byte) {})
	DefineInstruction(0x10, "STOP", func(c *CPU, _ []byte) {
		// entering STOP resets the divider
		c.timer.ResetDivider()
		c.mode = ModeStop
	}, Length(2))
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []byte) {
		if c.irq.IME {
			c.mode = ModeHalt
			return
		}
		if c.irq.Pending() {
			// IME clear with an interrupt already pending triggers
			// the HALT bug: the next opcode executes twice
			c.mode = ModeHaltBug
		} else {
			c.mode = ModeHaltDI
		}
	})
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []byte) {
		c.irq.IME = false
	})
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []byte) {
		// takes effect after the next instruction
		c.mode = ModeEnableIME
	})
	DefineInstruction(0x27, "DAA", func(c *CPU, _ []byte) {
		c.decimalAdjust()
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []byte) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []byte) {
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.setFlag(FlagCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []byte) {
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.flagWhen(FlagCarry, !c.isFlagSet(FlagCarry))
	})
}

// The accumulator rotates differ from their CB-prefixed forms in
// always clearing the zero flag.
func registerRotateAccumulatorInstructions() {
	DefineInstruction(0x07, "RLCA", func(c *CPU, _ []byte) {
		c.A = c.rotateLeftCarry(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU, _ []byte) {
		c.A = c.rotateRightCarry(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU, _ []byte) {
		c.A = c.rotateLeft(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU, _ []byte) {
		c.A = c.rotateRight(c.A)
		c.clearFlag(FlagZero)
	})
}

func registerLoadInstructions() {
	// LD rr, d16
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU, o []byte) { c.SetBC(toWord(o)) }, Length(3), Cycles(12))
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU, o []byte) { c.SetDE(toWord(o)) }, Length(3), Cycles(12))
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU, o []byte) { c.SetHL(toWord(o)) }, Length(3), Cycles(12))
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU, o []byte) { c.SP = toWord(o) }, Length(3), Cycles(12))

	// LD r, d8
	for i := uint8(0); i < 8; i++ {
		idx := i
		cycles := uint8(8)
		if idx == 6 {
			cycles = 12
		}
		DefineInstruction(0x06+idx*8, fmt.Sprintf("LD %s, d8", registerNames[idx]), func(c *CPU, o []byte) {
			c.setReg(idx, o[0])
		}, Length(2), Cycles(cycles))
	}

	// LD r, r'
	for src := uint8(0); src < 8; src++ {
		for dst := uint8(0); dst < 8; dst++ {
			if src == 6 && dst == 6 {
				continue // 0x76 is HALT
			}
			s, d := src, dst
			cycles := uint8(4)
			if s == 6 || d == 6 {
				cycles = 8
			}
			DefineInstruction(0x40+d*8+s, fmt.Sprintf("LD %s, %s", registerNames[d], registerNames[s]), func(c *CPU, _ []byte) {
				c.setReg(d, c.reg(s))
			}, Cycles(cycles))
		}
	}

	// loads through the register pairs
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, _ []byte) { c.writeByte(c.BC(), c.A) }, Cycles(8))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, _ []byte) { c.writeByte(c.DE(), c.A) }, Cycles(8))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, _ []byte) { c.A = c.readByte(c.BC()) }, Cycles(8))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, _ []byte) { c.A = c.readByte(c.DE()) }, Cycles(8))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, _ []byte) {
		c.writeByte(c.HL(), c.A)
		c.SetHL(c.HL() + 1)
	}, Cycles(8))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, _ []byte) {
		c.writeByte(c.HL(), c.A)
		c.SetHL(c.HL() - 1)
	}, Cycles(8))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, _ []byte) {
		c.A = c.readByte(c.HL())
		c.SetHL(c.HL() + 1)
	}, Cycles(8))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, _ []byte) {
		c.A = c.readByte(c.HL())
		c.SetHL(c.HL() - 1)
	}, Cycles(8))

	// absolute and high-page loads
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, o []byte) {
		addr := toWord(o)
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	}, Length(3), Cycles(20))
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, o []byte) {
		c.writeByte(0xFF00+uint16(o[0]), c.A)
	}, Length(2), Cycles(12))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, o []byte) {
		c.A = c.readByte(0xFF00 + uint16(o[0]))
	}, Length(2), Cycles(12))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, _ []byte) {
		c.writeByte(0xFF00+uint16(c.C), c.A)
	}, Cycles(8))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, _ []byte) {
		c.A = c.readByte(0xFF00 + uint16(c.C))
	}, Cycles(8))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, o []byte) {
		c.writeByte(toWord(o), c.A)
	}, Length(3), Cycles(16))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, o []byte) {
		c.A = c.readByte(toWord(o))
	}, Length(3), Cycles(16))

	// stack pointer loads
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, o []byte) {
		c.SetHL(c.addSPSigned(o[0]))
	}, Length(2), Cycles(12))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ []byte) {
		c.SP = c.HL()
	}, Cycles(8))

	// PUSH / POP
	DefineInstruction(0xC5, "PUSH BC", func(c *CPU, _ []byte) { c.push(c.BC()) }, Cycles(16))
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU, _ []byte) { c.push(c.DE()) }, Cycles(16))
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU, _ []byte) { c.push(c.HL()) }, Cycles(16))
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU, _ []byte) { c.push(c.AF()) }, Cycles(16))
	DefineInstruction(0xC1, "POP BC", func(c *CPU, _ []byte) { c.SetBC(c.pop()) }, Cycles(12))
	DefineInstruction(0xD1, "POP DE", func(c *CPU, _ []byte) { c.SetDE(c.pop()) }, Cycles(12))
	DefineInstruction(0xE1, "POP HL", func(c *CPU, _ []byte) { c.SetHL(c.pop()) }, Cycles(12))
	DefineInstruction(0xF1, "POP AF", func(c *CPU, _ []byte) { c.SetAF(c.pop()) }, Cycles(12))
}

type aluOp struct {
	// format has a %s placeholder for the operand
	format string
	fn     func(c *CPU, value uint8)
}

var aluOps = [8]aluOp{
	{"ADD A, %s", func(c *CPU, v uint8) { c.add(v, false) }},
	{"ADC A, %s", func(c *CPU, v uint8) { c.add(v, true) }},
	{"SUB %s", func(c *CPU, v uint8) { c.sub(v, false) }},
	{"SBC A, %s", func(c *CPU, v uint8) { c.sub(v, true) }},
	{"AND %s", func(c *CPU, v uint8) { c.and(v) }},
	{"XOR %s", func(c *CPU, v uint8) { c.xor(v) }},
	{"OR %s", func(c *CPU, v uint8) { c.or(v) }},
	{"CP %s", func(c *CPU, v uint8) { c.compare(v) }},
}

func registerArithmeticInstructions() {
	// ALU A, r for the whole 0x80 - 0xBF block
	for op := uint8(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			o, s := op, src
			cycles := uint8(4)
			if s == 6 {
				cycles = 8
			}
			DefineInstruction(0x80+o*8+s, fmt.Sprintf(aluOps[o].format, registerNames[s]), func(c *CPU, _ []byte) {
				aluOps[o].fn(c, c.reg(s))
			}, Cycles(cycles))
		}
	}

	// ALU A, d8
	for op := uint8(0); op < 8; op++ {
		o := op
		DefineInstruction(0xC6+o*8, fmt.Sprintf(aluOps[o].format, "d8"), func(c *CPU, operands []byte) {
			aluOps[o].fn(c, operands[0])
		}, Length(2), Cycles(8))
	}

	// INC r / DEC r
	for i := uint8(0); i < 8; i++ {
		idx := i
		cycles := uint8(4)
		if idx == 6 {
			cycles = 12
		}
		DefineInstruction(0x04+idx*8, fmt.Sprintf("INC %s", registerNames[idx]), func(c *CPU, _ []byte) {
			c.setReg(idx, c.increment(c.reg(idx)))
		}, Cycles(cycles))
		DefineInstruction(0x05+idx*8, fmt.Sprintf("DEC %s", registerNames[idx]), func(c *CPU, _ []byte) {
			c.setReg(idx, c.decrement(c.reg(idx)))
		}, Cycles(cycles))
	}

	// 16-bit INC / DEC, no flags
	DefineInstruction(0x03, "INC BC", func(c *CPU, _ []byte) { c.SetBC(c.BC() + 1) }, Cycles(8))
	DefineInstruction(0x13, "INC DE", func(c *CPU, _ []byte) { c.SetDE(c.DE() + 1) }, Cycles(8))
	DefineInstruction(0x23, "INC HL", func(c *CPU, _ []byte) { c.SetHL(c.HL() + 1) }, Cycles(8))
	DefineInstruction(0x33, "INC SP", func(c *CPU, _ []byte) { c.SP++ }, Cycles(8))
	DefineInstruction(0x0B, "DEC BC", func(c *CPU, _ []byte) { c.SetBC(c.BC() - 1) }, Cycles(8))
	DefineInstruction(0x1B, "DEC DE", func(c *CPU, _ []byte) { c.SetDE(c.DE() - 1) }, Cycles(8))
	DefineInstruction(0x2B, "DEC HL", func(c *CPU, _ []byte) { c.SetHL(c.HL() - 1) }, Cycles(8))
	DefineInstruction(0x3B, "DEC SP", func(c *CPU, _ []byte) { c.SP-- }, Cycles(8))

	// ADD HL, rr
	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU, _ []byte) { c.addHL(c.BC()) }, Cycles(8))
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU, _ []byte) { c.addHL(c.DE()) }, Cycles(8))
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU, _ []byte) { c.addHL(c.HL()) }, Cycles(8))
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU, _ []byte) { c.addHL(c.SP) }, Cycles(8))

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, o []byte) {
		c.SP = c.addSPSigned(o[0])
	}, Length(2), Cycles(16))
}

func registerJumpInstructions() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, o []byte) {
		c.PC += uint16(int8(o[0]))
	}, Length(2), Cycles(12))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, o []byte) {
		c.PC = toWord(o)
	}, Length(3), Cycles(16))
	DefineInstruction(0xE9, "JP HL", func(c *CPU, _ []byte) {
		c.PC = c.HL()
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, o []byte) {
		c.push(c.PC)
		c.PC = toWord(o)
	}, Length(3), Cycles(24))
	DefineInstruction(0xC9, "RET", func(c *CPU, _ []byte) {
		c.PC = c.pop()
	}, Cycles(16))
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []byte) {
		// unlike EI, RETI enables interrupts immediately
		c.PC = c.pop()
		c.irq.IME = true
	}, Cycles(16))

	// conditional forms
	for i := uint8(0); i < 4; i++ {
		cc := i
		DefineInstruction(0x20+cc*8, fmt.Sprintf("JR %s, r8", conditionNames[cc]), func(c *CPU, o []byte) {
			if c.condition(cc) {
				c.branched = true
				c.PC += uint16(int8(o[0]))
			}
		}, Length(2), Cycles(12), CyclesNotTaken(8))
		DefineInstruction(0xC2+cc*8, fmt.Sprintf("JP %s, a16", conditionNames[cc]), func(c *CPU, o []byte) {
			if c.condition(cc) {
				c.branched = true
				c.PC = toWord(o)
			}
		}, Length(3), Cycles(16), CyclesNotTaken(12))
		DefineInstruction(0xC4+cc*8, fmt.Sprintf("CALL %s, a16", conditionNames[cc]), func(c *CPU, o []byte) {
			if c.condition(cc) {
				c.branched = true
				c.push(c.PC)
				c.PC = toWord(o)
			}
		}, Length(3), Cycles(24), CyclesNotTaken(12))
		DefineInstruction(0xC0+cc*8, fmt.Sprintf("RET %s", conditionNames[cc]), func(c *CPU, _ []byte) {
			if c.condition(cc) {
				c.branched = true
				c.PC = c.pop()
			}
		}, Cycles(20), CyclesNotTaken(8))
	}

	// RST
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", vector), func(c *CPU, _ []byte) {
			c.push(c.PC)
			c.PC = vector
		}, Cycles(16))
	}
}
