package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sm83go/sm83/internal/gameboy"
	"github.com/sm83go/sm83/pkg/log"
	"github.com/sm83go/sm83/pkg/utils"
)

func main() {
	romPath := flag.String("rom", "", "path to a ROM image (.gb, also .zip/.7z/.gz)")
	frames := flag.Int("frames", 60, "number of frames to run, 0 to run forever")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := log.New()
	if *debug {
		logger = log.NewDebug()
	}

	var rom []byte
	if *romPath != "" {
		var err error
		rom, err = utils.LoadFile(*romPath)
		if err != nil {
			logger.Fatal(err)
		}
	}

	gb, err := gameboy.NewGameBoy(rom,
		gameboy.WithLogger(logger),
		gameboy.WithSerialWriter(os.Stdout),
	)
	if err != nil {
		logger.Fatal(err)
	}
	if rom != nil {
		logger.Infof("loaded %s", gb.MMU.Cartridge().Header())
	}

	for i := 0; *frames == 0 || i < *frames; i++ {
		gb.Frame()
		if gb.CPU.Locked() {
			logger.Errorf("core locked up after %d cycles", gb.Cycles())
			break
		}
	}
	fmt.Fprintf(os.Stderr, "executed %d T-cycles\n", gb.Cycles())
}
