package cartridge

import (
	"errors"
	"testing"

	"github.com/sm83go/sm83/pkg/log"
)

// buildROM assembles a ROM image of the given size with a header of
// the given mapper type and a correct header checksum.
func buildROM(size int, mapper uint8) []byte {
	rom := make([]byte, size)
	copy(rom[0x0134:], "TEST")
	rom[0x0147] = mapper
	sizeCode := uint8(0)
	for s := 32 * 1024; s < size; s <<= 1 {
		sizeCode++
	}
	rom[0x0148] = sizeCode
	if mapper == 0x02 || mapper == 0x03 {
		rom[0x0149] = 0x03 // 32KiB RAM
	}

	var x uint8
	for i := 0x0134; i <= 0x014C; i++ {
		x = x - rom[i] - 1
	}
	rom[0x014D] = x
	return rom
}

func TestHeaderParse(t *testing.T) {
	rom := buildROM(32*1024, 0x00)
	cart, err := NewCartridge(rom, log.NullLogger)
	if err != nil {
		t.Fatal(err)
	}

	h := cart.Header()
	if h.Title != "TEST" {
		t.Errorf("expected title %q, got %q", "TEST", h.Title)
	}
	if h.ROMSize != 32*1024 {
		t.Errorf("expected 32KiB ROM, got %d", h.ROMSize)
	}
	if !h.ChecksumValid {
		t.Error("expected checksum to be valid")
	}
	if h.Fingerprint == 0 {
		t.Error("expected a non-zero fingerprint")
	}
}

func TestCorruptedChecksumStillLoads(t *testing.T) {
	rom := buildROM(32*1024, 0x00)
	rom[0x014D] ^= 0xFF

	cart, err := NewCartridge(rom, log.NullLogger)
	if err != nil {
		t.Fatalf("expected a bad checksum to load anyway, got %v", err)
	}
	if cart.Header().ChecksumValid {
		t.Error("expected checksum to be flagged invalid")
	}
}

func TestROMTooSmall(t *testing.T) {
	_, err := NewCartridge(make([]byte, 0x100), log.NullLogger)
	if !errors.Is(err, ErrROMTooSmall) {
		t.Errorf("expected ErrROMTooSmall, got %v", err)
	}
}

func TestTruncatedROMRejected(t *testing.T) {
	// a header-sized sliver declaring itself a 32KiB MBC1 cart must
	// be rejected at load, not fault on the first banked fetch
	rom := buildROM(32*1024, 0x01)[:headerSize]
	_, err := NewCartridge(rom, log.NullLogger)
	if !errors.Is(err, ErrROMTruncated) {
		t.Fatalf("expected ErrROMTruncated, got %v", err)
	}
}

func TestUnsupportedMapper(t *testing.T) {
	rom := buildROM(32*1024, 0xFF)
	_, err := NewCartridge(rom, log.NullLogger)
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("expected ErrUnsupportedMapper, got %v", err)
	}
}

func TestROMWritesIgnored(t *testing.T) {
	rom := buildROM(32*1024, 0x00)
	rom[0x1234] = 0xAB
	cart, err := NewCartridge(rom, log.NullLogger)
	if err != nil {
		t.Fatal(err)
	}

	cart.Write(0x1234, 0x00)
	if got := cart.Read(0x1234); got != 0xAB {
		t.Errorf("expected ROM write to be ignored, got 0x%02X", got)
	}
}

func TestMBC1ROMBanking(t *testing.T) {
	rom := buildROM(128*1024, 0x01) // 8 banks
	for bank := 0; bank < 8; bank++ {
		rom[bank*0x4000] = uint8(bank)
	}
	cart, err := NewCartridge(rom, log.NullLogger)
	if err != nil {
		t.Fatal(err)
	}

	if got := cart.Read(0x0000); got != 0 {
		t.Errorf("expected bank 0 in the fixed region, got %d", got)
	}
	// bank 0 selects bank 1
	cart.Write(0x2000, 0x00)
	if got := cart.Read(0x4000); got != 1 {
		t.Errorf("expected bank 1 for selection 0, got %d", got)
	}
	for bank := uint8(1); bank < 8; bank++ {
		cart.Write(0x2000, bank)
		if got := cart.Read(0x4000); got != bank {
			t.Errorf("expected bank %d, got %d", bank, got)
		}
	}
}

func TestMBC1RAM(t *testing.T) {
	rom := buildROM(64*1024, 0x03)
	cart, err := NewCartridge(rom, log.NullLogger)
	if err != nil {
		t.Fatal(err)
	}

	// RAM is disabled at power on
	cart.Write(0xA000, 0x42)
	if got := cart.Read(0xA000); got != 0xFF {
		t.Errorf("expected disabled RAM to read 0xFF, got 0x%02X", got)
	}

	cart.Write(0x0000, 0x0A)
	cart.Write(0xA000, 0x42)
	if got := cart.Read(0xA000); got != 0x42 {
		t.Errorf("expected enabled RAM to hold 0x42, got 0x%02X", got)
	}

	// banked RAM in mode 1
	cart.Write(0x6000, 0x01)
	cart.Write(0x4000, 0x01)
	if got := cart.Read(0xA000); got == 0x42 {
		t.Error("expected a different RAM bank after switching")
	}
	cart.Write(0xA000, 0x24)
	cart.Write(0x4000, 0x00)
	if got := cart.Read(0xA000); got != 0x42 {
		t.Errorf("expected bank 0 to still hold 0x42, got 0x%02X", got)
	}
}
