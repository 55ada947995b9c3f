// Package disasm renders decoded instructions as 8086 assembly text
// (§4.13, §6).
package disasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nkasanin/sim8086/insts"
)

var generalRegisterNames = map[insts.GeneralRegister]string{
	insts.AL: "al", insts.CL: "cl", insts.DL: "dl", insts.BL: "bl",
	insts.AH: "ah", insts.CH: "ch", insts.DH: "dh", insts.BH: "bh",
	insts.AX: "ax", insts.CX: "cx", insts.DX: "dx", insts.BX: "bx",
	insts.SP: "sp", insts.BP: "bp", insts.SI: "si", insts.DI: "di",
}

var segmentRegisterNames = map[insts.SegmentRegister]string{
	insts.ES: "es", insts.CS: "cs", insts.SS: "ss", insts.DS: "ds",
}

var arithMnemonics = map[insts.ArithOp]string{
	insts.ArithAdd: "add", insts.ArithAdc: "adc", insts.ArithSub: "sub",
	insts.ArithSbb: "sbb", insts.ArithCmp: "cmp",
}

var condMnemonics = map[insts.CondCode]string{
	insts.CondJE: "je", insts.CondJNE: "jne", insts.CondJL: "jl", insts.CondJLE: "jle",
	insts.CondJB: "jb", insts.CondJBE: "jbe", insts.CondJP: "jp", insts.CondJO: "jo",
	insts.CondJS: "js", insts.CondJNL: "jnl", insts.CondJG: "jg", insts.CondJNB: "jnb",
	insts.CondJA: "ja", insts.CondJNP: "jnp", insts.CondJNO: "jno", insts.CondJNS: "jns",
	insts.CondLoop: "loop", insts.CondLoopZ: "loopz", insts.CondLoopNZ: "loopnz",
	insts.CondJCXZ: "jcxz",
}

// equationText renders the register(s) an effective address is built from,
// with no displacement or brackets.
func equationText(ea insts.EffectiveAddress) string {
	switch ea.Kind {
	case insts.EADirect:
		return strconv.Itoa(int(ea.Addr))
	case insts.EABaseIndex:
		return generalRegisterNames[ea.Base] + " + " + generalRegisterNames[ea.Index]
	default: // EABase
		return generalRegisterNames[ea.Base]
	}
}

// renderMemOperand renders a bracketed memory operand, with an explicit
// sign on any displacement: `[bx + si - 5]`, `[bp + 200]`, `[1000]`.
func renderMemOperand(ea insts.EffectiveAddress) string {
	if ea.Kind == insts.EADirect {
		return fmt.Sprintf("[%d]", ea.Addr)
	}
	eq := equationText(ea)
	switch ea.Disp.Kind {
	case insts.Disp8, insts.Disp16:
		if ea.Disp.Value < 0 {
			return fmt.Sprintf("[%s - %d]", eq, -int(ea.Disp.Value))
		}
		return fmt.Sprintf("[%s + %d]", eq, ea.Disp.Value)
	default:
		return fmt.Sprintf("[%s]", eq)
	}
}

// renderOperand renders op as assembly text, not including any size prefix.
func renderOperand(op insts.Operand) string {
	switch op.Kind {
	case insts.OperandRegister:
		return generalRegisterNames[op.Reg]
	case insts.OperandSegment:
		return segmentRegisterNames[op.Seg]
	case insts.OperandMemory:
		return renderMemOperand(op.EA)
	default: // OperandImmediate
		return strconv.Itoa(int(op.Imm.AsWord()))
	}
}

// sizePrefix returns "byte "/"word " when dst is a bare memory operand and
// src is an immediate — the only case where an operand's width can't be
// inferred from a register name.
func sizePrefix(w insts.Width, src, dst insts.Operand) string {
	if src.Kind != insts.OperandImmediate || dst.Kind != insts.OperandMemory {
		return ""
	}
	if w == insts.Byte {
		return "byte "
	}
	return "word "
}

// jumpTarget renders the `$+<n>+0` / `$-<n>+0` / `$+0` syntax (§6):
// n is the byte distance from the start of the jump instruction to its
// target, so it folds in the instruction's own 2-byte size.
func jumpTarget(offset int8) string {
	n := int(offset) + 2
	switch {
	case n > 0:
		return fmt.Sprintf("$+%d+0", n)
	case n < 0:
		return fmt.Sprintf("$-%d+0", -n)
	default:
		return "$+0"
	}
}

// Render renders a single decoded instruction as one line of assembly text.
func Render(inst insts.Instruction) string {
	switch inst.Family {
	case insts.FamilyMove:
		return fmt.Sprintf("mov %s, %s%s\n", renderOperand(inst.Dst), sizePrefix(inst.Width, inst.Src, inst.Dst), renderOperand(inst.Src))
	case insts.FamilyArith:
		return fmt.Sprintf("%s %s, %s%s\n", arithMnemonics[inst.Arith], renderOperand(inst.Dst), sizePrefix(inst.Width, inst.Src, inst.Dst), renderOperand(inst.Src))
	case insts.FamilyPush:
		return fmt.Sprintf("push %s\n", renderOperand(inst.Dst))
	case insts.FamilyPop:
		return fmt.Sprintf("pop %s\n", renderOperand(inst.Dst))
	case insts.FamilyCondJump:
		return fmt.Sprintf("%s %s\n", condMnemonics[inst.Cond], jumpTarget(inst.Offset))
	case insts.FamilyHalt:
		return "hlt\n"
	default:
		return "; unknown instruction\n"
	}
}

// RenderProgram renders every decoded instruction in order, one per line.
func RenderProgram(entries []insts.Decoded) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(Render(e.Inst))
	}
	return b.String()
}
