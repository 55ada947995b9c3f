package emu

import "github.com/nkasanin/sim8086/insts"

// BranchUnit implements the conditional-jump and loop condition table
// (§4.12) and IP-relative jumping.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// Jump adds offset to IP. offset is relative to the address of the
// instruction immediately following the jump, so the caller must have
// already advanced IP past the jump instruction itself. It returns an
// error rather than wrapping if the result falls outside the
// architectural 16-bit offset space (§7).
func (b *BranchUnit) Jump(offset int8) error {
	sum := int32(b.regFile.IP) + int32(offset)
	if sum < 0 || sum > 0xFFFF {
		return errInstructionOffset(b.regFile.IP, offset)
	}
	b.regFile.IP = uint16(sum)
	return nil
}

// ShouldJump evaluates cond against the current flags and, for the
// LOOP/LOOPZ/LOOPNZ/JCXZ family, against CX — decrementing CX first where
// the mnemonic calls for it.
func (b *BranchUnit) ShouldJump(cond insts.CondCode) bool {
	switch cond {
	case insts.CondLoop, insts.CondLoopZ, insts.CondLoopNZ, insts.CondJCXZ:
		return b.evalLoop(cond)
	default:
		return b.evalCond(cond)
	}
}

// evalLoop implements the CX-based loop conditions. LOOP, LOOPZ, and
// LOOPNZ decrement CX before testing; JCXZ does not touch CX.
func (b *BranchUnit) evalLoop(cond insts.CondCode) bool {
	if cond == insts.CondJCXZ {
		return b.regFile.CX == 0
	}
	b.regFile.CX--
	switch cond {
	case insts.CondLoop:
		return b.regFile.CX != 0
	case insts.CondLoopZ:
		return b.regFile.CX != 0 && b.regFile.Flags.ZF
	case insts.CondLoopNZ:
		return b.regFile.CX != 0 && !b.regFile.Flags.ZF
	default:
		return false
	}
}

// evalCond evaluates a flag-based jump condition.
func (b *BranchUnit) evalCond(cond insts.CondCode) bool {
	f := &b.regFile.Flags
	switch cond {
	case insts.CondJE:
		return f.ZF
	case insts.CondJNE:
		return !f.ZF
	case insts.CondJL:
		return f.SF != f.OF
	case insts.CondJNL:
		return f.SF == f.OF
	case insts.CondJLE:
		return f.ZF || f.SF != f.OF
	case insts.CondJG:
		return !f.ZF && f.SF == f.OF
	case insts.CondJB:
		return f.CF
	case insts.CondJNB:
		return !f.CF
	case insts.CondJBE:
		return f.CF || f.ZF
	case insts.CondJA:
		return !f.CF && !f.ZF
	case insts.CondJP:
		return f.PF
	case insts.CondJNP:
		return !f.PF
	case insts.CondJO:
		return f.OF
	case insts.CondJNO:
		return !f.OF
	case insts.CondJS:
		return f.SF
	case insts.CondJNS:
		return !f.SF
	default:
		return false
	}
}
