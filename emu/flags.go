package emu

import "github.com/nkasanin/sim8086/insts"

// Flags is the 8086 flags record this simulator tracks: carry, parity,
// auxiliary carry, zero, sign, and overflow.
type Flags struct {
	CF bool
	PF bool
	AF bool
	ZF bool
	SF bool
	OF bool
}

// parityTable holds, for each possible low byte, whether that byte has an
// even number of set bits. Computed once at init, the same technique
// oisee-z80-optimizer uses for its Sz53pTable.
var parityTable [256]bool

func init() {
	for i := 0; i < 256; i++ {
		bits := 0
		for b := i; b != 0; b >>= 1 {
			bits += b & 1
		}
		parityTable[i] = bits%2 == 0
	}
}

// signBit returns the sign-bit mask for w: 0x80 for Byte, 0x8000 for Word.
func signBit(w insts.Width) uint16 {
	if w == insts.Byte {
		return 0x80
	}
	return 0x8000
}

// widthMask returns the bitmask that a value of width w is truncated to.
func widthMask(w insts.Width) uint32 {
	if w == insts.Byte {
		return 0xFF
	}
	return 0xFFFF
}

// setZSP sets ZF, SF, and PF from a result already masked to width w. PF
// always reflects the low 8 bits of the result, regardless of width, per
// the real 8086 ISA.
func (f *Flags) setZSP(result uint16, w insts.Width) {
	f.ZF = result&uint16(widthMask(w)) == 0
	f.SF = result&signBit(w) != 0
	f.PF = parityTable[uint8(result)]
}
