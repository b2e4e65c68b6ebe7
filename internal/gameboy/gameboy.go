// Package gameboy wires the SM83 core, bus, timer, serial port and
// interrupt controller into a runnable machine.
package gameboy

import (
	"io"

	"github.com/sm83go/sm83/internal/cartridge"
	"github.com/sm83go/sm83/internal/cpu"
	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/mmu"
	"github.com/sm83go/sm83/internal/serial"
	"github.com/sm83go/sm83/internal/timer"
	"github.com/sm83go/sm83/pkg/log"
)

const (
	// ClockSpeed is the DMG master clock in T-cycles per second.
	ClockSpeed = 4194304
	// FrameCycles is the T-cycle length of one display frame, which
	// Frame uses as its scheduling quantum.
	FrameCycles = 70224
)

// GameBoy is the assembled machine.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Timer      *timer.Controller
	Interrupts *interrupts.Service
	Serial     *serial.Controller

	cycles uint64
	log    log.Logger
}

type config struct {
	log          log.Logger
	serialWriter io.Writer
}

// Opt configures a GameBoy under construction.
type Opt func(*config)

// WithLogger sets the logger used by all components.
func WithLogger(l log.Logger) Opt {
	return func(c *config) {
		c.log = l
	}
}

// WithSerialWriter mirrors serial output to w as it is transmitted.
func WithSerialWriter(w io.Writer) Opt {
	return func(c *config) {
		c.serialWriter = w
	}
}

// NewGameBoy builds a machine around the given ROM image. A nil ROM
// attaches nothing to the cartridge slot. Construction order
// matters: every component that maps hardware registers must exist
// before the bus collects the register block.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	cfg := config{
		log: log.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	gb := &GameBoy{
		log: cfg.log,
	}
	gb.Interrupts = interrupts.NewService()
	gb.Timer = timer.NewController(gb.Interrupts)
	gb.Serial = serial.NewController(gb.Interrupts)
	if cfg.serialWriter != nil {
		gb.Serial.Attach(cfg.serialWriter)
	}

	cart := cartridge.Empty()
	if rom != nil {
		var err error
		cart, err = cartridge.NewCartridge(rom, gb.log)
		if err != nil {
			return nil, err
		}
	}

	gb.MMU = mmu.NewMMU(cart, gb.log)
	gb.CPU = cpu.NewCPU(gb.MMU, gb.Interrupts, gb.Timer, gb.log)

	return gb, nil
}

// Step executes one CPU step and advances the peripherals by the
// same number of T-cycles. It returns the T-cycles consumed.
func (gb *GameBoy) Step() uint8 {
	ticks := gb.CPU.Step()
	for i := uint8(0); i < ticks; i++ {
		gb.Timer.Tick()
	}
	gb.cycles += uint64(ticks)
	return ticks
}

// Frame runs the machine for one frame's worth of T-cycles. It
// returns early if the core locks up.
func (gb *GameBoy) Frame() {
	target := gb.cycles + FrameCycles
	for gb.cycles < target {
		if gb.CPU.Locked() {
			return
		}
		gb.Step()
	}
}

// RunCycles runs the machine for at least n more T-cycles, stopping
// early if the core locks up. It returns the cycles actually
// executed.
func (gb *GameBoy) RunCycles(n uint64) uint64 {
	start := gb.cycles
	target := start + n
	for gb.cycles < target {
		if gb.CPU.Locked() {
			break
		}
		gb.Step()
	}
	return gb.cycles - start
}

// Cycles returns the total number of T-cycles executed so far.
func (gb *GameBoy) Cycles() uint64 {
	return gb.cycles
}

// SerialOutput returns every byte the program has sent over the
// serial port, which is how most test ROMs report results.
func (gb *GameBoy) SerialOutput() []byte {
	return gb.Serial.Output()
}
