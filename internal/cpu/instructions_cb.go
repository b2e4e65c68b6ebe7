package cpu

import (
	"fmt"
)

type cbOp struct {
	name string
	fn   func(c *CPU, value uint8) uint8
}

var cbOps = [8]cbOp{
	{"RLC", func(c *CPU, v uint8) uint8 { return c.rotateLeftCarry(v) }},
	{"RRC", func(c *CPU, v uint8) uint8 { return c.rotateRightCarry(v) }},
	{"RL", func(c *CPU, v uint8) uint8 { return c.rotateLeft(v) }},
	{"RR", func(c *CPU, v uint8) uint8 { return c.rotateRight(v) }},
	{"SLA", func(c *CPU, v uint8) uint8 { return c.shiftLeftArithmetic(v) }},
	{"SRA", func(c *CPU, v uint8) uint8 { return c.shiftRightArithmetic(v) }},
	{"SWAP", func(c *CPU, v uint8) uint8 { return c.swap(v) }},
	{"SRL", func(c *CPU, v uint8) uint8 { return c.shiftRightLogical(v) }},
}

func init() {
	// rotates, shifts and swap: 0x00 - 0x3F
	for op := uint8(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			o, s := op, src
			cycles := uint8(8)
			if s == 6 {
				cycles = 16
			}
			DefineInstructionCB(o*8+s, fmt.Sprintf("%s %s", cbOps[o].name, registerNames[s]), func(c *CPU, _ []byte) {
				c.setReg(s, cbOps[o].fn(c, c.reg(s)))
			}, Cycles(cycles))
		}
	}

	for n := uint8(0); n < 8; n++ {
		for src := uint8(0); src < 8; src++ {
			b, s := n, src

			// BIT only reads, so its (HL) form is one machine cycle
			// cheaper than the read-modify-write operations
			cycles := uint8(8)
			if s == 6 {
				cycles = 12
			}
			DefineInstructionCB(0x40+b*8+s, fmt.Sprintf("BIT %d, %s", b, registerNames[s]), func(c *CPU, _ []byte) {
				c.testBit(b, c.reg(s))
			}, Cycles(cycles))

			cycles = 8
			if s == 6 {
				cycles = 16
			}
			DefineInstructionCB(0x80+b*8+s, fmt.Sprintf("RES %d, %s", b, registerNames[s]), func(c *CPU, _ []byte) {
				c.setReg(s, c.reg(s)&^(1<<b))
			}, Cycles(cycles))
			DefineInstructionCB(0xC0+b*8+s, fmt.Sprintf("SET %d, %s", b, registerNames[s]), func(c *CPU, _ []byte) {
				c.setReg(s, c.reg(s)|1<<b)
			}, Cycles(cycles))
		}
	}
}
