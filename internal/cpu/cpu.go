// Package cpu implements the Sharp SM83, the CPU core of the Game
// Boy. Instructions are dispatched through two 256-entry tables, one
// for the base set and one for the 0xCB-prefixed set, built at
// package init.
package cpu

import (
	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/mmu"
	"github.com/sm83go/sm83/internal/timer"
	"github.com/sm83go/sm83/pkg/log"
)

// Mode is the CPU's execution mode. Most of the time the CPU is in
// ModeNormal; the other modes model HALT, STOP, the EI delay, the
// HALT bug and the lock-up caused by undefined opcodes.
type Mode uint8

const (
	// ModeNormal fetches and executes instructions.
	ModeNormal Mode = iota
	// ModeHalt waits for an interrupt with IME set; the pending
	// interrupt will be serviced on wake.
	ModeHalt
	// ModeHaltDI waits for an interrupt with IME clear; execution
	// resumes on wake without servicing anything.
	ModeHaltDI
	// ModeHaltBug executes the next instruction twice: HALT was
	// entered with IME clear while an interrupt was already pending,
	// so the PC fails to advance past the following opcode.
	ModeHaltBug
	// ModeStop is entered by the STOP instruction. The divider is
	// reset on entry and the core sleeps until an interrupt is
	// pending.
	ModeStop
	// ModeEnableIME sets IME before executing the next instruction.
	// EI's effect is delayed by one instruction, so EI immediately
	// followed by DI never lets an interrupt through.
	ModeEnableIME
	// ModeLocked is entered by the undefined opcodes. The core
	// stops fetching entirely and only a reset recovers it.
	ModeLocked
)

// CPU is the SM83 core. It owns the register file and execution
// mode; memory accesses go through the bus and interrupt state lives
// in the controller shared with the peripherals.
type CPU struct {
	Registers

	mode Mode

	mmu   *mmu.MMU
	irq   *interrupts.Service
	timer *timer.Controller

	// ticks accumulates the T-cycle cost of the current Step
	ticks    uint8
	branched bool
	operands [2]byte

	log log.Logger
}

// NewCPU returns a new CPU core with the DMG post-boot register
// values, as the boot ROM leaves them.
func NewCPU(bus *mmu.MMU, irq *interrupts.Service, t *timer.Controller, logger log.Logger) *CPU {
	return &CPU{
		Registers: Registers{
			A: 0x01, F: 0xB0,
			B: 0x00, C: 0x13,
			D: 0x00, E: 0xD8,
			H: 0x01, L: 0x4D,
			SP: 0xFFFE,
			PC: 0x0100,
		},
		mmu:   bus,
		irq:   irq,
		timer: t,
		log:   logger,
	}
}

// Step executes one instruction (or one idle machine cycle when
// halted) and services at most one interrupt afterwards. It returns
// the number of T-cycles consumed.
func (c *CPU) Step() uint8 {
	c.ticks = 0

	switch c.mode {
	case ModeNormal:
		c.runInstruction(c.readInstruction())
	case ModeHalt, ModeHaltDI, ModeStop:
		c.ticks += 4
		if c.irq.Pending() {
			c.mode = ModeNormal
		}
	case ModeHaltBug:
		opcode := c.readInstruction()
		// the PC increment after the fetch is lost, so the byte
		// after HALT runs twice
		c.PC--
		c.mode = ModeNormal
		c.runInstruction(opcode)
	case ModeEnableIME:
		c.irq.IME = true
		c.mode = ModeNormal
		c.runInstruction(c.readInstruction())
	case ModeLocked:
		c.ticks += 4
		return c.ticks
	}

	if c.irq.IME && c.irq.Pending() {
		c.executeInterrupt()
	}

	return c.ticks
}

// Mode returns the CPU's current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Locked reports whether an undefined opcode has locked the core.
func (c *CPU) Locked() bool {
	return c.mode == ModeLocked
}

// readInstruction reads the byte at PC and increments PC.
func (c *CPU) readInstruction() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// runInstruction decodes and executes a single opcode, accumulating
// its T-cycle cost into c.ticks.
func (c *CPU) runInstruction(opcode uint8) {
	if opcode == 0xCB {
		ins := CBInstructionSet[c.readInstruction()]
		c.log.Debugf("0x%04X: %s", c.PC-2, ins.Name())
		ins.fn(c, nil)
		c.ticks += ins.cycles
		return
	}

	ins := InstructionSet[opcode]
	c.log.Debugf("0x%04X: %s", c.PC-1, ins.Name())
	for i := uint8(0); i < ins.length-1; i++ {
		c.operands[i] = c.readInstruction()
	}

	c.branched = false
	ins.fn(c, c.operands[:ins.length-1])

	if ins.cyclesNotTaken != 0 && !c.branched {
		c.ticks += ins.cyclesNotTaken
	} else {
		c.ticks += ins.cycles
	}
}

// executeInterrupt services the highest-priority pending interrupt:
// IME is cleared, the PC is pushed and execution continues at the
// handler. The push happens before the vector is chosen, so a push
// that lands on IE can redirect or cancel the dispatch, as on
// hardware (a cancelled dispatch jumps to 0x0000).
func (c *CPU) executeInterrupt() {
	// dispatch always resumes fetching, so a HALT or STOP entered
	// with the interrupt already pending falls straight through to
	// the handler
	c.mode = ModeNormal
	c.irq.IME = false
	c.push(c.PC)
	c.PC = c.irq.Vector()
	c.ticks += 20
}

func (c *CPU) readByte(address uint16) uint8 {
	return c.mmu.Read(address)
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.mmu.Write(address, value)
}

// push pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a 16-bit value off the stack.
func (c *CPU) pop() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// registerNames indexes the standard operand encoding order.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// reg reads the 8-bit register (or (HL)) with the given encoding
// index.
func (c *CPU) reg(idx uint8) uint8 {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.HL())
	default:
		return c.A
	}
}

// setReg writes the 8-bit register (or (HL)) with the given encoding
// index.
func (c *CPU) setReg(idx uint8, value uint8) {
	switch idx {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.writeByte(c.HL(), value)
	default:
		c.A = value
	}
}
