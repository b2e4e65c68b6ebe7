// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM, addressed from 0.
type RAM struct {
	data []uint8
}

// NewRAM returns a new RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}
