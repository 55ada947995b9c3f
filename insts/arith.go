package insts

// arithOpFromExt maps the ModR/M REG field used as an opcode extension in
// the immediate-to-reg/mem arithmetic form to its ArithOp. Extension codes
// 001 (OR), 100 (AND), and 110 (XOR) are logical ops outside this decoder's
// scope and are rejected.
func arithOpFromExt(ext uint8) (ArithOp, bool) {
	switch ext {
	case 0b000:
		return ArithAdd, true
	case 0b010:
		return ArithAdc, true
	case 0b101:
		return ArithSub, true
	case 0b011:
		return ArithSbb, true
	case 0b111:
		return ArithCmp, true
	}
	return 0, false
}

// decodeArithRegMem decodes the reg/mem<->reg form shared by ADD, ADC, SUB,
// SBB, and CMP: ......dw modrm [disp].
func decodeArithRegMem(data []byte, op ArithOp) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	b0 := data[0]
	w := wBit(b0)
	d := dBit(b0)
	pair, err := decodeModRM(w, data[1], data[2:])
	if err != nil {
		return Instruction{}, 0, err
	}
	src, dst := orderBySrcDst(pair, d)
	size := 2 + pair.Consumed
	return Instruction{Family: FamilyArith, Arith: op, Width: w, Src: src, Dst: dst}, size, nil
}

// decodeArithImmToRegMem decodes "op reg/mem, immediate": 100000sw modrm
// [disp] data [data-if-w&!s].
func decodeArithImmToRegMem(data []byte) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	b0 := data[0]
	s := sBit(b0)
	w := wBit(b0)
	modrm := data[1]
	op, ok := arithOpFromExt(regField(modrm))
	if !ok {
		return Instruction{}, 0, errUnknownOpcode(0, b0)
	}
	regMem, n, err := decodeRegMemOperand(w, modField(modrm), rmField(modrm), data[2:])
	if err != nil {
		return Instruction{}, 0, err
	}
	pos := 2 + n
	imm, immSize, err := readImmediate(data, pos, w, s)
	if err != nil {
		return Instruction{}, 0, err
	}
	size := pos + immSize
	return Instruction{Family: FamilyArith, Arith: op, Width: w, Src: ImmOperand(imm), Dst: regMem}, size, nil
}

// decodeArithImmToAcc decodes "op acc, immediate": .......w data [data-if-w=1].
func decodeArithImmToAcc(data []byte, op ArithOp) (Instruction, int, error) {
	b0 := data[0]
	w := wBit(b0)
	imm, immSize, err := readImmediate(data, 1, w, NoSignExtend)
	if err != nil {
		return Instruction{}, 0, err
	}
	acc := RegOperand(DecodeGeneralRegister(0, w))
	size := 1 + immSize
	return Instruction{Family: FamilyArith, Arith: op, Width: w, Src: ImmOperand(imm), Dst: acc}, size, nil
}
