package cpu

import (
	"fmt"
)

// Instruction describes a single opcode: its mnemonic, its length in
// bytes, its cost in T-cycles and the function that executes it.
// Conditional instructions carry a second, cheaper cost for the
// branch-not-taken path.
type Instruction struct {
	name           string
	length         uint8
	cycles         uint8
	cyclesNotTaken uint8
	fn             func(cpu *CPU, operands []byte)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the length of the instruction in bytes, including
// the opcode itself.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the T-cycle cost of the instruction (the taken cost
// for conditionals).
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// InstructionSet is the base opcode table.
var InstructionSet [256]Instruction

// CBInstructionSet is the 0xCB-prefixed opcode table. Cycle costs
// include the prefix fetch.
var CBInstructionSet [256]Instruction

// InstructionOpt overrides a default field of an Instruction.
type InstructionOpt func(*Instruction)

// Length sets the instruction length in bytes.
func Length(length uint8) InstructionOpt {
	return func(i *Instruction) {
		i.length = length
	}
}

// Cycles sets the T-cycle cost.
func Cycles(cycles uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = cycles
	}
}

// CyclesNotTaken sets the T-cycle cost of the branch-not-taken path
// of a conditional instruction.
func CyclesNotTaken(cycles uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cyclesNotTaken = cycles
	}
}

// DefineInstruction adds an instruction to the base table. Length
// defaults to 1 byte and cost to 4 T-cycles.
func DefineInstruction(opcode uint8, name string, fn func(cpu *CPU, operands []byte), opts ...InstructionOpt) {
	if InstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: opcode 0x%02X defined twice", opcode))
	}
	ins := Instruction{
		name:   name,
		length: 1,
		cycles: 4,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&ins)
	}
	InstructionSet[opcode] = ins
}

// DefineInstructionCB adds an instruction to the 0xCB-prefixed
// table. Cost defaults to 8 T-cycles.
func DefineInstructionCB(opcode uint8, name string, fn func(cpu *CPU, operands []byte), opts ...InstructionOpt) {
	if CBInstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: CB opcode 0x%02X defined twice", opcode))
	}
	ins := Instruction{
		name:   name,
		length: 2,
		cycles: 8,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&ins)
	}
	CBInstructionSet[opcode] = ins
}

// disallowedOpcodes are the 11 opcodes the SM83 does not define.
// Executing one locks the core until reset.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	for _, opcode := range disallowedOpcodes {
		DefineInstruction(opcode, fmt.Sprintf("ILLEGAL(0x%02X)", opcode), func(c *CPU, _ []byte) {
			c.log.Errorf("cpu: undefined opcode at 0x%04X, locking", c.PC-1)
			c.mode = ModeLocked
		})
	}
}
