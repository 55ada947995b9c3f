package insts

// decodeMovRegMemToReg decodes the "MOV reg/mem, reg" form: 100010dw modrm
// [disp-lo] [disp-hi].
func decodeMovRegMemToReg(data []byte) (Instruction, int, error) {
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
	return Instruction{Family: FamilyMove, Width: w, Src: src, Dst: dst}, size, nil
}

// decodeMovImmToRegMem decodes "MOV reg/mem, immediate": 1100011w modrm
// [disp] data [data-if-w=1].
func decodeMovImmToRegMem(data []byte) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	b0 := data[0]
	w := wBit(b0)
	modrm := data[1]
	regMem, n, err := decodeRegMemOperand(w, modField(modrm), rmField(modrm), data[2:])
	if err != nil {
		return Instruction{}, 0, err
	}
	pos := 2 + n
	imm, immSize, err := readImmediate(data, pos, w, NoSignExtend)
	if err != nil {
		return Instruction{}, 0, err
	}
	size := pos + immSize
	return Instruction{Family: FamilyMove, Width: w, Src: ImmOperand(imm), Dst: regMem}, size, nil
}

// decodeMovImmToReg decodes "MOV reg, immediate": 1011wrrr data [data-if-w=1].
func decodeMovImmToReg(data []byte) (Instruction, int, error) {
	b0 := data[0]
	w := Byte
	if bitField(b0, 3, 1) == 1 {
		w = Word
	}
	reg := DecodeGeneralRegister(bitField(b0, 0, 3), w)
	imm, immSize, err := readImmediate(data, 1, w, NoSignExtend)
	if err != nil {
		return Instruction{}, 0, err
	}
	size := 1 + immSize
	return Instruction{Family: FamilyMove, Width: w, Src: ImmOperand(imm), Dst: RegOperand(reg)}, size, nil
}

// decodeMovAcc decodes "MOV acc, mem" / "MOV mem, acc": 101000dw addr-lo
// addr-hi. The address is always a 16-bit direct address regardless of w.
func decodeMovAcc(data []byte) (Instruction, int, error) {
	if len(data) < 3 {
		return Instruction{}, 0, errTruncated(0, 3, len(data))
	}
	b0 := data[0]
	w := wBit(b0)
	accToMem := bitField(b0, 1, 1) == 1
	addr := le16(data[1:])
	mem := MemOperand(EffectiveAddress{Kind: EADirect, Addr: addr})
	acc := RegOperand(DecodeGeneralRegister(0, w))
	if accToMem {
		return Instruction{Family: FamilyMove, Width: w, Src: acc, Dst: mem}, 3, nil
	}
	return Instruction{Family: FamilyMove, Width: w, Src: mem, Dst: acc}, 3, nil
}

// decodeMovSegReg decodes "MOV segreg, reg/mem" (0x8E) and "MOV reg/mem,
// segreg" (0x8C), both always word-width.
func decodeMovSegReg(data []byte) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	toSeg := data[0] == 0x8E
	modrm := data[1]
	sreg, err := DecodeSegmentRegister(sregField(modrm))
	if err != nil {
		return Instruction{}, 0, err
	}
	regMem, n, err := decodeRegMemOperand(Word, modField(modrm), rmField(modrm), data[2:])
	if err != nil {
		return Instruction{}, 0, err
	}
	size := 2 + n
	seg := SegOperand(sreg)
	if toSeg {
		return Instruction{Family: FamilyMove, Width: Word, Src: regMem, Dst: seg}, size, nil
	}
	return Instruction{Family: FamilyMove, Width: Word, Src: seg, Dst: regMem}, size, nil
}

// readImmediate reads an immediate value starting at data[pos]. When
// extend is SignExtendImm and w is Word, only one byte is consumed and it
// is sign-extended to a word value.
func readImmediate(data []byte, pos int, w Width, extend SignExtend) (Value, int, error) {
	size := 1
	if w == Word && extend == NoSignExtend {
		size = 2
	}
	if len(data) < pos+size {
		return Value{}, 0, errTruncated(pos, size, len(data)-pos)
	}
	if size == 2 {
		return Value{Width: Word, Word: int16(le16(data[pos:]))}, 2, nil
	}
	b := int8(data[pos])
	if w == Word {
		return Value{Width: Word, Word: int16(b)}, 1, nil
	}
	return Value{Width: Byte, Byte: b}, 1, nil
}
