package emu

import (
	"fmt"

	"github.com/nkasanin/sim8086/insts"
)

func errMaxInstructions() error {
	return fmt.Errorf("emu: max instructions reached")
}

func errUnimplementedFamily(family int, ip uint16) error {
	return fmt.Errorf("emu: unimplemented instruction family %d at IP=0x%04X", family, ip)
}

// errMemoryOffset reports that resolving an effective address overflowed
// the architectural 16-bit offset space (§4.11, §7).
func errMemoryOffset(base uint16, disp int16) error {
	return fmt.Errorf("emu: memory-offset arithmetic overflowed 16 bits (base=0x%04X, disp=%d)", base, disp)
}

// errInstructionOffset reports that a jump's IP-relative offset overflowed
// the architectural 16-bit offset space (§7).
func errInstructionOffset(ip uint16, offset int8) error {
	return fmt.Errorf("emu: instruction-pointer arithmetic overflowed 16 bits (ip=0x%04X, offset=%d)", ip, offset)
}

// errRegisterWidthMismatch reports an attempt to access a general register
// at a width other than its own (§4.9's byte-half/word-only invariant).
func errRegisterWidthMismatch(reg insts.GeneralRegister, w insts.Width) error {
	return fmt.Errorf("emu: register %d accessed at mismatched width %d", reg, w)
}

// errSegmentWidthMismatch reports an attempt to access a segment register
// at byte width; segment registers are word-only (§4.9).
func errSegmentWidthMismatch(seg insts.SegmentRegister) error {
	return fmt.Errorf("emu: segment register %d accessed at byte width", seg)
}
