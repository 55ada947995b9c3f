package insts

// condTable maps the 4-bit tttn condition field of a Jcc opcode (0111cccc)
// to its CondCode, in tttn order.
var condTable = [16]CondCode{
	CondJO, CondJNO, CondJB, CondJNB,
	CondJE, CondJNE, CondJBE, CondJA,
	CondJS, CondJNS, CondJP, CondJNP,
	CondJL, CondJNL, CondJLE, CondJG,
}

// decodeCondJump decodes a short conditional jump: 0111cccc disp8.
func decodeCondJump(data []byte) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	cond := condTable[bitField(data[0], 0, 4)]
	offset := int8(data[1])
	return Instruction{Family: FamilyCondJump, Cond: cond, Offset: offset}, 2, nil
}

// decodeLoop decodes LOOP, LOOPZ, LOOPNZ, and JCXZ (0xE0-0xE3): op disp8.
func decodeLoop(data []byte) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	var cond CondCode
	switch data[0] {
	case 0xE0:
		cond = CondLoopNZ
	case 0xE1:
		cond = CondLoopZ
	case 0xE2:
		cond = CondLoop
	default: // 0xE3
		cond = CondJCXZ
	}
	offset := int8(data[1])
	return Instruction{Family: FamilyCondJump, Cond: cond, Offset: offset}, 2, nil
}
