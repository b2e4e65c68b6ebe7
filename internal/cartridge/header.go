package cartridge

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// headerSize is the minimum ROM length needed to hold the entry
// point and header (0x0100 - 0x014F).
const headerSize = 0x0150

// Header is the cartridge header, parsed from ROM addresses
// 0x0100 - 0x014F.
type Header struct {
	// Title is the game title, up to 16 upper-case ASCII characters.
	Title string
	// CartridgeType is the raw mapper byte at 0x0147.
	CartridgeType uint8
	// ROMSize is the ROM size in bytes, decoded from 0x0148.
	ROMSize uint32
	// RAMSize is the external RAM size in bytes, decoded from 0x0149.
	RAMSize uint32
	// HeaderChecksum is the checksum byte at 0x014D.
	HeaderChecksum uint8
	// ChecksumValid reports whether the computed header checksum
	// matches HeaderChecksum. The boot ROM would lock up on a
	// mismatch, but real flash carts routinely ship bad checksums,
	// so the core only warns.
	ChecksumValid bool
	// Fingerprint is the xxhash digest of the entire ROM image,
	// used to identify the ROM in logs.
	Fingerprint uint64
}

var ramSizes = map[uint8]uint32{
	0x00: 0,
	0x01: 0x800,
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
	0x05: 0x10000,
}

func parseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrROMTooSmall, len(rom))
	}

	h := &Header{
		CartridgeType:  rom[0x0147],
		ROMSize:        (32 * 1024) << rom[0x0148],
		RAMSize:        ramSizes[rom[0x0149]],
		HeaderChecksum: rom[0x014D],
		Fingerprint:    xxhash.Sum64(rom),
	}

	title := rom[0x0134:0x0144]
	if i := strings.IndexByte(string(title), 0); i >= 0 {
		title = title[:i]
	}
	h.Title = strings.TrimSpace(string(title))

	// a short image would make the mappers index past the end of
	// the ROM slice, so it is rejected before execution starts
	if uint32(len(rom)) < h.ROMSize {
		return nil, fmt.Errorf("%w: %d bytes, header declares %d", ErrROMTruncated, len(rom), h.ROMSize)
	}

	// x = x - rom[i] - 1 over 0x0134 - 0x014C, wrapping
	var x uint8
	for i := 0x0134; i <= 0x014C; i++ {
		x = x - rom[i] - 1
	}
	h.ChecksumValid = x == h.HeaderChecksum

	return h, nil
}

// String implements fmt.Stringer.
func (h *Header) String() string {
	return fmt.Sprintf("%s (type 0x%02X, %dKiB ROM, %dKiB RAM, %016x)",
		h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024, h.Fingerprint)
}
