package emu

import (
	"fmt"

	"github.com/nkasanin/sim8086/insts"
)

// ResolveAddress computes the flat 16-bit address an effective address
// refers to (§4.11). This simulator keeps code and data in one unsegmented
// 64 KiB space, so resolution never needs a segment register: direct
// addresses are used as-is, and base/index forms add straight into the
// current register values. Base+index addition wraps modulo 2^16, per
// §4.11; adding a signed displacement on top of that must not silently
// wrap, and returns a memory-offset error if it overflows.
func ResolveAddress(regFile *RegFile, ea insts.EffectiveAddress) (uint16, error) {
	switch ea.Kind {
	case insts.EADirect:
		return ea.Addr, nil
	case insts.EABase:
		return addDisp(regFile.ReadWord(ea.Base), ea.Disp)
	case insts.EABaseIndex:
		sum := regFile.ReadWord(ea.Base) + regFile.ReadWord(ea.Index)
		return addDisp(sum, ea.Disp)
	default:
		return 0, fmt.Errorf("emu: unknown effective-address kind %d", ea.Kind)
	}
}

// addDisp adds d's signed displacement (if any) to base, reporting a
// memory-offset error rather than wrapping if the result overflows the
// 16-bit offset space.
func addDisp(base uint16, d insts.Displacement) (uint16, error) {
	if d.Kind != insts.Disp8 && d.Kind != insts.Disp16 {
		return base, nil
	}
	sum := int32(base) + int32(d.Value)
	if sum < 0 || sum > 0xFFFF {
		return 0, errMemoryOffset(base, d.Value)
	}
	return uint16(sum), nil
}

// LoadStoreUnit reads and writes insts.Operand values against a register
// file and memory (§4.11).
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		memory:  memory,
	}
}

// ReadOperand reads op at width w, widening byte values into a uint16.
func (ls *LoadStoreUnit) ReadOperand(op insts.Operand, w insts.Width) (uint16, error) {
	switch op.Kind {
	case insts.OperandRegister:
		if op.Reg.IsByte() != (w == insts.Byte) {
			return 0, errRegisterWidthMismatch(op.Reg, w)
		}
		return ls.regFile.ReadGeneral(op.Reg), nil
	case insts.OperandSegment:
		if w == insts.Byte {
			return 0, errSegmentWidthMismatch(op.Seg)
		}
		return ls.regFile.ReadSeg(op.Seg), nil
	case insts.OperandImmediate:
		return op.Imm.AsU16(), nil
	case insts.OperandMemory:
		addr, err := ResolveAddress(ls.regFile, op.EA)
		if err != nil {
			return 0, err
		}
		if w == insts.Byte {
			return uint16(ls.memory.Read8(addr)), nil
		}
		return ls.memory.Read16(addr), nil
	default:
		return 0, fmt.Errorf("emu: cannot read operand of kind %d", op.Kind)
	}
}

// WriteOperand writes value to op at width w.
func (ls *LoadStoreUnit) WriteOperand(op insts.Operand, w insts.Width, value uint16) error {
	switch op.Kind {
	case insts.OperandRegister:
		if op.Reg.IsByte() != (w == insts.Byte) {
			return errRegisterWidthMismatch(op.Reg, w)
		}
		ls.regFile.WriteGeneral(op.Reg, value)
		return nil
	case insts.OperandSegment:
		if w == insts.Byte {
			return errSegmentWidthMismatch(op.Seg)
		}
		ls.regFile.WriteSeg(op.Seg, value)
		return nil
	case insts.OperandMemory:
		addr, err := ResolveAddress(ls.regFile, op.EA)
		if err != nil {
			return err
		}
		if w == insts.Byte {
			ls.memory.Write8(addr, uint8(value))
		} else {
			ls.memory.Write16(addr, value)
		}
		return nil
	default:
		return fmt.Errorf("emu: cannot write to operand of kind %d", op.Kind)
	}
}

// Push decrements SP by 2 and writes value at the new SP, per the 8086
// stack-grows-down convention.
func (ls *LoadStoreUnit) Push(value uint16) {
	ls.regFile.SP -= 2
	ls.memory.Write16(ls.regFile.SP, value)
}

// Pop reads the word at SP and increments SP by 2.
func (ls *LoadStoreUnit) Pop() uint16 {
	value := ls.memory.Read16(ls.regFile.SP)
	ls.regFile.SP += 2
	return value
}
