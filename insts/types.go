// Package insts decodes 8086-class machine code into a typed instruction
// representation. Decoding is pure: every function here takes a byte slice
// and returns a value plus the number of bytes consumed, never touching any
// shared state.
package insts

// Width distinguishes an 8-bit (byte) operand from a 16-bit (word) operand.
// Extracted from the W bit of most opcodes.
type Width uint8

const (
	Byte Width = iota
	Word
)

// Direction says whether the REG field of a ModR/M pair names the
// destination or the source operand. Extracted from the D bit.
type Direction uint8

const (
	RegIsSource Direction = iota
	RegIsDestination
)

// SignExtend says whether an 8-bit immediate should be sign-extended to 16
// bits. Only meaningful for the immediate-to-register/memory arithmetic form.
type SignExtend uint8

const (
	NoSignExtend SignExtend = iota
	SignExtendImm
)

// Mode is the 2-bit addressing mode field at the top of a ModR/M byte.
// The numeric values match the real encoding so modField needs no table.
type Mode uint8

const (
	ModeMemNoDisp Mode = 0b00
	ModeMem8      Mode = 0b01
	ModeMem16     Mode = 0b10
	ModeReg       Mode = 0b11
)

// GeneralRegister names one of the 8086's general-purpose registers, with
// AX/BX/CX/DX's byte halves as distinct names.
type GeneralRegister uint8

const (
	AL GeneralRegister = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

// IsByte reports whether r names an 8-bit byte-half register.
func (r GeneralRegister) IsByte() bool {
	return r <= BH
}

// SegmentRegister names one of the four segment registers.
type SegmentRegister uint8

const (
	ES SegmentRegister = iota
	CS
	SS
	DS
)

// segRegisters maps the 2-bit SR field to its SegmentRegister, in field order.
var segRegisters = [4]SegmentRegister{ES, CS, SS, DS}

// DecodeSegmentRegister maps a 2-bit SR field to a SegmentRegister.
func DecodeSegmentRegister(code uint8) (SegmentRegister, error) {
	if code > 0x3 {
		return 0, errInvalidSegReg(code)
	}
	return segRegisters[code], nil
}

// wordRegisters and byteRegisters map the 3-bit register code to a register
// name, in REG/R-M field order (000..111).
var (
	wordRegisters = [8]GeneralRegister{AX, CX, DX, BX, SP, BP, SI, DI}
	byteRegisters = [8]GeneralRegister{AL, CL, DL, BL, AH, CH, DH, BH}
)

// DecodeGeneralRegister maps a 3-bit register code plus width to a register
// name, per the fixed 8086 REG/R-M field table.
func DecodeGeneralRegister(code uint8, w Width) GeneralRegister {
	if w == Word {
		return wordRegisters[code&0x7]
	}
	return byteRegisters[code&0x7]
}

// DispKind tags which variant of displacement is present.
type DispKind uint8

const (
	DispNone DispKind = iota
	DispDirect
	Disp8
	Disp16
)

// Displacement is the tagged union of §3: none, a direct 16-bit absolute
// address, a signed 8-bit, or a signed 16-bit displacement.
type Displacement struct {
	Kind  DispKind
	Value int16 // signed displacement, or (as uint16) the direct address
}

// EAKind tags which shape of effective address is described.
type EAKind uint8

const (
	EADirect EAKind = iota
	EABase
	EABaseIndex
)

// EffectiveAddress is the tagged union of §3 describing how a memory
// operand's address is computed.
type EffectiveAddress struct {
	Kind  EAKind
	Base  GeneralRegister // meaningful for EABase, EABaseIndex
	Index GeneralRegister // meaningful for EABaseIndex
	Disp  Displacement    // meaningful for EABase, EABaseIndex (Disp8/Disp16/DispNone only)
	Addr  uint16          // meaningful for EADirect
}

// Value is the tagged union of a signed 8-bit or signed 16-bit immediate.
type Value struct {
	Width Width
	Byte  int8
	Word  int16
}

// AsWord returns v's value widened to a signed 16-bit integer; an 8-bit
// value is sign-extended, per spec.md §4.8's comparison rule.
func (v Value) AsWord() int16 {
	if v.Width == Byte {
		return int16(v.Byte)
	}
	return v.Word
}

// AsU16 returns v's bit pattern as an unsigned 16-bit word.
func (v Value) AsU16() uint16 {
	return uint16(v.AsWord())
}

// OperandKind tags which variant of operand is present.
type OperandKind uint8

const (
	OperandRegister OperandKind = iota
	OperandSegment
	OperandMemory
	OperandImmediate
)

// Operand is the tagged union of §3: a general register, a segment
// register, a memory reference, or an immediate value.
type Operand struct {
	Kind OperandKind
	Reg  GeneralRegister
	Seg  SegmentRegister
	EA   EffectiveAddress
	Imm  Value
}

// RegOperand builds a general-register operand.
func RegOperand(r GeneralRegister) Operand {
	return Operand{Kind: OperandRegister, Reg: r}
}

// SegOperand builds a segment-register operand.
func SegOperand(s SegmentRegister) Operand {
	return Operand{Kind: OperandSegment, Seg: s}
}

// MemOperand builds a memory operand from an effective address.
func MemOperand(ea EffectiveAddress) Operand {
	return Operand{Kind: OperandMemory, EA: ea}
}

// ImmOperand builds an immediate operand.
func ImmOperand(v Value) Operand {
	return Operand{Kind: OperandImmediate, Imm: v}
}

// InstFamily tags which variant of instruction is present.
type InstFamily uint8

const (
	FamilyUnknown InstFamily = iota
	FamilyMove
	FamilyArith
	FamilyPush
	FamilyPop
	FamilyCondJump
	FamilyHalt
)

// ArithOp is the arithmetic/compare subkind carried by a FamilyArith
// instruction.
type ArithOp uint8

const (
	ArithAdd ArithOp = iota
	ArithAdc
	ArithSub
	ArithSbb
	ArithCmp
)

// CondCode names a conditional-jump or loop mnemonic.
type CondCode uint8

const (
	CondJE CondCode = iota
	CondJNE
	CondJL
	CondJLE
	CondJB
	CondJBE
	CondJP
	CondJO
	CondJS
	CondJNL
	CondJG
	CondJNB
	CondJA
	CondJNP
	CondJNO
	CondJNS
	CondLoop
	CondLoopZ
	CondLoopNZ
	CondJCXZ
)

// Instruction is the tagged union of §3: every variant carries only the
// fields its Family uses; Src/Dst double as the push/pop operand slot
// (stored in Dst) for the single-operand stack families.
type Instruction struct {
	Family InstFamily
	Width  Width   // operand width for Move/Arith; always Word for Push/Pop
	Arith  ArithOp // meaningful when Family == FamilyArith
	Src    Operand // meaningful when Family == FamilyMove or FamilyArith
	Dst    Operand // meaningful when Family == FamilyMove, FamilyArith, FamilyPush, or FamilyPop
	Cond   CondCode
	Offset int8 // meaningful when Family == FamilyCondJump
}

// Decoded pairs a decoded instruction with its byte size and the offset (in
// the original buffer) at which it was found.
type Decoded struct {
	Inst   Instruction
	Size   int
	Offset int
}
