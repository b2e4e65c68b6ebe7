package cpu

// Registers is the SM83 register file. The 8-bit registers pair up
// into BC, DE and HL; A pairs with the flag register F, whose low
// nibble always reads zero.
type Registers struct {
	A uint8
	F uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP uint16
	PC uint16
}

// AF returns the combined AF register pair.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F)
}

// SetAF sets the AF register pair. The low nibble of F is not
// backed by hardware and is discarded.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.F = uint8(value) & 0xF0
}

// BC returns the combined BC register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC sets the BC register pair.
func (r *Registers) SetBC(value uint16) {
	r.B = uint8(value >> 8)
	r.C = uint8(value)
}

// DE returns the combined DE register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE sets the DE register pair.
func (r *Registers) SetDE(value uint16) {
	r.D = uint8(value >> 8)
	r.E = uint8(value)
}

// HL returns the combined HL register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL sets the HL register pair.
func (r *Registers) SetHL(value uint16) {
	r.H = uint8(value >> 8)
	r.L = uint8(value)
}
