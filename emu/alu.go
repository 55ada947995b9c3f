package emu

import "github.com/nkasanin/sim8086/insts"

// ALU implements 8086 arithmetic and flag side effects (§4.8, §4.10).
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// Add computes op1 + op2 + carryIn at width w, sets CF/PF/AF/ZF/SF/OF, and
// returns the truncated result.
func (a *ALU) Add(w insts.Width, op1, op2, carryIn uint16) uint16 {
	mask := widthMask(w)
	o1 := uint32(op1) & mask
	o2 := uint32(op2) & mask
	full := o1 + o2 + uint32(carryIn)
	result := uint16(full & mask)
	a.setAddFlags(w, uint16(o1), uint16(o2), carryIn, full, result)
	return result
}

// setAddFlags sets the flags for an addition, given the already-masked
// operands, the unmasked 32-bit sum, and the truncated result.
func (a *ALU) setAddFlags(w insts.Width, op1, op2, carryIn uint16, full uint32, result uint16) {
	f := &a.regFile.Flags
	f.setZSP(result, w)

	mask := widthMask(w)
	f.CF = full&^mask != 0

	f.AF = (op1&0xF)+(op2&0xF)+(carryIn&0xF) > 0xF

	op1Sign := op1&signBit(w) != 0
	op2Sign := op2&signBit(w) != 0
	resultSign := result&signBit(w) != 0
	// Overflow: adding two like-signed operands yields a result of the
	// opposite sign.
	f.OF = (op1Sign == op2Sign) && (op1Sign != resultSign)
}

// Sub computes op1 - op2 - borrowIn at width w, sets CF/PF/AF/ZF/SF/OF, and
// returns the truncated result.
func (a *ALU) Sub(w insts.Width, op1, op2, borrowIn uint16) uint16 {
	mask := widthMask(w)
	o1 := uint32(op1) & mask
	o2 := uint32(op2) & mask
	result := uint16((o1 - o2 - uint32(borrowIn)) & mask)
	a.setSubFlags(w, uint16(o1), uint16(o2), borrowIn, result)
	return result
}

// setSubFlags sets the flags for a subtraction.
func (a *ALU) setSubFlags(w insts.Width, op1, op2, borrowIn uint16, result uint16) {
	f := &a.regFile.Flags
	f.setZSP(result, w)

	f.CF = uint32(op1) < uint32(op2)+uint32(borrowIn)
	f.AF = int32(op1&0xF)-int32(op2&0xF)-int32(borrowIn) < 0

	op1Sign := op1&signBit(w) != 0
	op2Sign := op2&signBit(w) != 0
	resultSign := result&signBit(w) != 0
	// Overflow: subtracting an unlike-signed operand yields a result with
	// the subtrahend's sign.
	f.OF = (op1Sign != op2Sign) && (op2Sign == resultSign)
}

// Compare computes op1 - op2 at width w purely to set flags; the result is
// discarded and only ZF/SF/PF are updated. This deliberately narrows CMP's
// flag effect relative to a full subtraction.
func (a *ALU) Compare(w insts.Width, op1, op2 uint16) {
	mask := widthMask(w)
	o1 := uint32(op1) & mask
	o2 := uint32(op2) & mask
	result := uint16((o1 - o2) & mask)
	a.regFile.Flags.setZSP(result, w)
}

// Exec applies op to (dst, src) at width w, updating flags, and returns the
// value that should be written back to dst. For ArithCmp the returned value
// equals dst unchanged — CMP never writes back.
func (a *ALU) Exec(op insts.ArithOp, w insts.Width, dst, src uint16) uint16 {
	switch op {
	case insts.ArithAdd:
		return a.Add(w, dst, src, 0)
	case insts.ArithAdc:
		return a.Add(w, dst, src, carryBit(a.regFile.Flags.CF))
	case insts.ArithSub:
		return a.Sub(w, dst, src, 0)
	case insts.ArithSbb:
		return a.Sub(w, dst, src, carryBit(a.regFile.Flags.CF))
	case insts.ArithCmp:
		a.Compare(w, dst, src)
		return dst
	default:
		return dst
	}
}

func carryBit(set bool) uint16 {
	if set {
		return 1
	}
	return 0
}
