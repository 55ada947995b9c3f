// Package emu provides a functional 8086-class emulator: register file,
// flags, arithmetic, effective-address resolution, and the
// fetch-decode-execute loop.
package emu

import "github.com/nkasanin/sim8086/insts"

// RegFile holds the 8086's general-purpose registers (AX, BX, CX, DX, SP,
// BP, SI, DI), its four segment registers, the instruction pointer, and
// the flags record.
type RegFile struct {
	AX, BX, CX, DX uint16
	SP, BP, SI, DI uint16

	ES, CS, SS, DS uint16

	IP uint16

	Flags Flags
}

// wordPtr returns the storage word backing reg, whether reg names a word
// register directly or one byte-half of AX/BX/CX/DX.
func (r *RegFile) wordPtr(reg insts.GeneralRegister) *uint16 {
	switch reg {
	case insts.AX, insts.AL, insts.AH:
		return &r.AX
	case insts.BX, insts.BL, insts.BH:
		return &r.BX
	case insts.CX, insts.CL, insts.CH:
		return &r.CX
	case insts.DX, insts.DL, insts.DH:
		return &r.DX
	case insts.SP:
		return &r.SP
	case insts.BP:
		return &r.BP
	case insts.SI:
		return &r.SI
	case insts.DI:
		return &r.DI
	default:
		return nil
	}
}

// isHighByte reports whether reg names the high byte-half of a word
// register (AH, BH, CH, DH).
func isHighByte(reg insts.GeneralRegister) bool {
	switch reg {
	case insts.AH, insts.BH, insts.CH, insts.DH:
		return true
	default:
		return false
	}
}

// ReadWord reads the full 16-bit value of a word-width general register.
func (r *RegFile) ReadWord(reg insts.GeneralRegister) uint16 {
	return *r.wordPtr(reg)
}

// WriteWord writes the full 16-bit value of a word-width general register.
func (r *RegFile) WriteWord(reg insts.GeneralRegister, value uint16) {
	*r.wordPtr(reg) = value
}

// ReadByte reads one byte-half register (AL, AH, ...), aliased into its
// parent word register.
func (r *RegFile) ReadByte(reg insts.GeneralRegister) uint8 {
	w := *r.wordPtr(reg)
	if isHighByte(reg) {
		return uint8(w >> 8)
	}
	return uint8(w)
}

// WriteByte writes one byte-half register, leaving the other half of its
// parent word register untouched.
func (r *RegFile) WriteByte(reg insts.GeneralRegister, value uint8) {
	p := r.wordPtr(reg)
	if isHighByte(reg) {
		*p = (*p & 0x00FF) | uint16(value)<<8
		return
	}
	*p = (*p & 0xFF00) | uint16(value)
}

// ReadGeneral reads reg at its natural width, returning the value widened
// into a uint16 (byte registers zero-extended).
func (r *RegFile) ReadGeneral(reg insts.GeneralRegister) uint16 {
	if reg.IsByte() {
		return uint16(r.ReadByte(reg))
	}
	return r.ReadWord(reg)
}

// WriteGeneral writes reg at its natural width, truncating value for a
// byte-half register.
func (r *RegFile) WriteGeneral(reg insts.GeneralRegister, value uint16) {
	if reg.IsByte() {
		r.WriteByte(reg, uint8(value))
		return
	}
	r.WriteWord(reg, value)
}

// ReadSeg reads a segment register.
func (r *RegFile) ReadSeg(seg insts.SegmentRegister) uint16 {
	switch seg {
	case insts.ES:
		return r.ES
	case insts.CS:
		return r.CS
	case insts.SS:
		return r.SS
	default: // insts.DS
		return r.DS
	}
}

// WriteSeg writes a segment register.
func (r *RegFile) WriteSeg(seg insts.SegmentRegister, value uint16) {
	switch seg {
	case insts.ES:
		r.ES = value
	case insts.CS:
		r.CS = value
	case insts.SS:
		r.SS = value
	default: // insts.DS
		r.DS = value
	}
}
