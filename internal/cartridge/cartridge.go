// Package cartridge implements Game Boy cartridges and their memory
// bank controllers. The bus forwards all reads in 0x0000 - 0x7FFF and
// 0xA000 - 0xBFFF here, along with the writes that the mappers
// interpret as bank-switching commands.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/sm83go/sm83/pkg/log"
)

var (
	// ErrROMTooSmall is returned when a ROM image is too short to
	// contain a cartridge header.
	ErrROMTooSmall = errors.New("cartridge: ROM too small for header")
	// ErrROMTruncated is returned when a ROM image is shorter than
	// the size its header declares.
	ErrROMTruncated = errors.New("cartridge: ROM shorter than its declared size")
	// ErrUnsupportedMapper is returned for mapper types the core
	// does not implement.
	ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")
)

// Cartridge is a cartridge mapped into the SM83's address space.
type Cartridge interface {
	// Read returns the byte at the given address. Valid for
	// 0x0000 - 0x7FFF (ROM) and 0xA000 - 0xBFFF (external RAM).
	Read(address uint16) uint8
	// Write handles a write to cartridge address space. ROM writes
	// are mapper commands; RAM writes go to external RAM.
	Write(address uint16, value uint8)
	// Header returns the parsed cartridge header.
	Header() *Header
}

// NewCartridge parses the given ROM image and returns a cartridge of
// the appropriate mapper type. A bad header checksum is logged but
// does not prevent the cartridge from loading.
func NewCartridge(rom []byte, logger log.Logger) (Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}
	if !header.ChecksumValid {
		logger.Warnf("cartridge: header checksum mismatch for %s", header)
	} else {
		logger.Infof("cartridge: loaded %s", header)
	}

	switch header.CartridgeType {
	case 0x00, 0x08, 0x09:
		return newROM(rom, header), nil
	case 0x01, 0x02, 0x03:
		return newMBC1(rom, header), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnsupportedMapper, header.CartridgeType)
	}
}

// Empty returns a cartridge with nothing attached. All reads return
// 0xFF, the open-bus value, and writes are discarded.
func Empty() Cartridge {
	return emptyCartridge{}
}

type emptyCartridge struct{}

func (emptyCartridge) Read(address uint16) uint8         { return 0xFF }
func (emptyCartridge) Write(address uint16, value uint8) {}
func (emptyCartridge) Header() *Header                   { return &Header{Title: "NONE"} }
