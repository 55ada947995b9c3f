package insts

import "fmt"

// Decoder decodes bytes into Instructions. It carries no state; every
// byte slice is decoded independently of any other.
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode classifies and decodes the instruction starting at data[0],
// per the opcode classification table (§4.1). offset is used only to
// annotate error messages with the buffer position being decoded. It
// returns the decoded instruction and the number of bytes it occupies.
func (dec *Decoder) Decode(data []byte, offset int) (Instruction, int, error) {
	if len(data) == 0 {
		return Instruction{}, 0, fmt.Errorf("insts: empty buffer at offset %d", offset)
	}
	inst, size, err := classify(data)
	if err != nil {
		return Instruction{}, 0, fmt.Errorf("insts: at offset %d: %w", offset, err)
	}
	return inst, size, nil
}

// classify dispatches data[0] to the matching family decoder, checking
// longer/more specific bit-prefixes before shorter ones wherever two
// patterns could otherwise both match the same byte.
func classify(data []byte) (Instruction, int, error) {
	b0 := data[0]

	switch {
	case b0 == 0xF4:
		return decodeHalt(data)

	// MOV, segment-register forms (exact byte match).
	case b0 == 0x8E || b0 == 0x8C:
		return decodeMovSegReg(data)

	// MOV reg/mem <-> reg: 100010dw
	case bitField(b0, 2, 6) == 0b100010:
		return decodeMovRegMemToReg(data)

	// MOV reg/mem, immediate: 1100011w
	case bitField(b0, 1, 7) == 0b1100011:
		return decodeMovImmToRegMem(data)

	// MOV reg, immediate: 1011wrrr
	case bitField(b0, 4, 4) == 0b1011:
		return decodeMovImmToReg(data)

	// MOV acc <-> mem: 101000dw
	case bitField(b0, 2, 6) == 0b101000:
		return decodeMovAcc(data)

	// Arithmetic immediate-to-reg/mem: 100000sw
	case bitField(b0, 2, 6) == 0b100000:
		return decodeArithImmToRegMem(data)

	// Arithmetic reg/mem <-> reg, one family per 6-bit prefix.
	case bitField(b0, 2, 6) == 0b000000:
		return decodeArithRegMem(data, ArithAdd)
	case bitField(b0, 2, 6) == 0b000100:
		return decodeArithRegMem(data, ArithAdc)
	case bitField(b0, 2, 6) == 0b001010:
		return decodeArithRegMem(data, ArithSub)
	case bitField(b0, 2, 6) == 0b000110:
		return decodeArithRegMem(data, ArithSbb)
	case bitField(b0, 2, 6) == 0b001110:
		return decodeArithRegMem(data, ArithCmp)

	// Arithmetic immediate-to-accumulator, one family per 7-bit prefix.
	case bitField(b0, 1, 7) == 0b0000010:
		return decodeArithImmToAcc(data, ArithAdd)
	case bitField(b0, 1, 7) == 0b0001010:
		return decodeArithImmToAcc(data, ArithAdc)
	case bitField(b0, 1, 7) == 0b0010110:
		return decodeArithImmToAcc(data, ArithSub)
	case bitField(b0, 1, 7) == 0b0001110:
		return decodeArithImmToAcc(data, ArithSbb)
	case bitField(b0, 1, 7) == 0b0011110:
		return decodeArithImmToAcc(data, ArithCmp)

	// Conditional jumps: 0111cccc
	case bitField(b0, 4, 4) == 0b0111:
		return decodeCondJump(data)

	// LOOP/LOOPZ/LOOPNZ/JCXZ: 111000xx
	case bitField(b0, 2, 6) == 0b111000:
		return decodeLoop(data)

	// PUSH/POP of reg/mem.
	case b0 == 0xFF:
		return decodePushRegMem(data)
	case b0 == 0x8F:
		return decodePopRegMem(data)

	// PUSH/POP of a general register: 01010rrr / 01011rrr
	case bitField(b0, 3, 5) == 0b01010:
		return decodePushReg(data)
	case bitField(b0, 3, 5) == 0b01011:
		return decodePopReg(data)

	// PUSH/POP of a segment register: 000 sr 110 / 000 sr 111
	case bitField(b0, 5, 3) == 0b000 && bitField(b0, 0, 3) == 0b110:
		return decodePushSegReg(data)
	case bitField(b0, 5, 3) == 0b000 && bitField(b0, 0, 3) == 0b111:
		return decodePopSegReg(data)

	default:
		return Instruction{}, 0, errUnknownOpcode(0, b0)
	}
}
