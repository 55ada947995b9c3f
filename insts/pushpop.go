package insts

// requireWordOperand enforces the decision that PUSH/POP never operate on a
// byte-sized operand (the real ISA has no byte-width stack transfer).
func requireWordOperand(op Operand) error {
	if op.Kind == OperandRegister && op.Reg.IsByte() {
		return errStackOperandWidth()
	}
	return nil
}

// decodePushRegMem decodes "PUSH reg/mem" (0xFF /6): modrm [disp].
func decodePushRegMem(data []byte) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	modrm := data[1]
	if regField(modrm) != 0b110 {
		return Instruction{}, 0, errUnknownOpcode(0, data[0])
	}
	regMem, n, err := decodeRegMemOperand(Word, modField(modrm), rmField(modrm), data[2:])
	if err != nil {
		return Instruction{}, 0, err
	}
	if err := requireWordOperand(regMem); err != nil {
		return Instruction{}, 0, err
	}
	return Instruction{Family: FamilyPush, Width: Word, Dst: regMem}, 2 + n, nil
}

// decodePopRegMem decodes "POP reg/mem" (0x8F /0): modrm [disp].
func decodePopRegMem(data []byte) (Instruction, int, error) {
	if len(data) < 2 {
		return Instruction{}, 0, errTruncated(0, 2, len(data))
	}
	modrm := data[1]
	if regField(modrm) != 0b000 {
		return Instruction{}, 0, errUnknownOpcode(0, data[0])
	}
	regMem, n, err := decodeRegMemOperand(Word, modField(modrm), rmField(modrm), data[2:])
	if err != nil {
		return Instruction{}, 0, err
	}
	if err := requireWordOperand(regMem); err != nil {
		return Instruction{}, 0, err
	}
	return Instruction{Family: FamilyPop, Width: Word, Dst: regMem}, 2 + n, nil
}

// decodePushReg decodes "PUSH reg" (01010rrr).
func decodePushReg(data []byte) (Instruction, int, error) {
	reg := DecodeGeneralRegister(bitField(data[0], 0, 3), Word)
	return Instruction{Family: FamilyPush, Width: Word, Dst: RegOperand(reg)}, 1, nil
}

// decodePopReg decodes "POP reg" (01011rrr).
func decodePopReg(data []byte) (Instruction, int, error) {
	reg := DecodeGeneralRegister(bitField(data[0], 0, 3), Word)
	return Instruction{Family: FamilyPop, Width: Word, Dst: RegOperand(reg)}, 1, nil
}

// decodePushSegReg decodes PUSH of a segment register (000 sr 110).
func decodePushSegReg(data []byte) (Instruction, int, error) {
	sreg, err := DecodeSegmentRegister(bitField(data[0], 3, 2))
	if err != nil {
		return Instruction{}, 0, err
	}
	return Instruction{Family: FamilyPush, Width: Word, Dst: SegOperand(sreg)}, 1, nil
}

// decodePopSegReg decodes POP of a segment register (000 sr 111).
func decodePopSegReg(data []byte) (Instruction, int, error) {
	sreg, err := DecodeSegmentRegister(bitField(data[0], 3, 2))
	if err != nil {
		return Instruction{}, 0, err
	}
	return Instruction{Family: FamilyPop, Width: Word, Dst: SegOperand(sreg)}, 1, nil
}
