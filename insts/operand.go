package insts

// decodeRegMemOperand decodes the R/M-field operand that follows a ModR/M
// byte: a register operand when mode is ModeReg, otherwise a memory operand
// built from the displacement bytes in rest. Returns the operand and the
// number of displacement bytes consumed from rest.
func decodeRegMemOperand(w Width, mode Mode, rm uint8, rest []byte) (Operand, int, error) {
	if mode == ModeReg {
		return RegOperand(DecodeGeneralRegister(rm, w)), 0, nil
	}
	disp, n, err := readDisplacement(mode, rm, rest)
	if err != nil {
		return Operand{}, 0, err
	}
	ea := buildEffectiveAddress(rm, disp)
	return MemOperand(ea), n, nil
}

// modRMPair is the pair of operands described by a ModR/M byte: the
// register named by the REG field, and the operand named by MOD/R-M.
type modRMPair struct {
	Reg      Operand
	RegMem   Operand
	Consumed int // bytes consumed after the ModR/M byte itself
}

// decodeModRM decodes a ModR/M byte (modrm) plus its following displacement
// bytes (rest) into a modRMPair.
func decodeModRM(w Width, modrm byte, rest []byte) (modRMPair, error) {
	mode := modField(modrm)
	rm := rmField(modrm)
	regMem, n, err := decodeRegMemOperand(w, mode, rm, rest)
	if err != nil {
		return modRMPair{}, err
	}
	reg := RegOperand(DecodeGeneralRegister(regField(modrm), w))
	return modRMPair{Reg: reg, RegMem: regMem, Consumed: n}, nil
}

// orderBySrcDst orders a decoded ModR/M pair into (src, dst) per the D bit.
func orderBySrcDst(p modRMPair, d Direction) (src, dst Operand) {
	if d == RegIsDestination {
		return p.RegMem, p.Reg
	}
	return p.Reg, p.RegMem
}
