package insts

// readDisplacement reads the displacement bytes that follow a ModR/M byte,
// per mode and R/M field. rest is the buffer starting immediately after the
// ModR/M byte; it returns the displacement, the number of bytes consumed
// from rest, and an error if rest is too short or mode is ModeReg.
func readDisplacement(mode Mode, rm uint8, rest []byte) (Displacement, int, error) {
	switch mode {
	case ModeReg:
		return Displacement{}, 0, errDispInRegMode()
	case ModeMemNoDisp:
		if rm == 0b110 {
			if len(rest) < 2 {
				return Displacement{}, 0, errTruncated(0, 2, len(rest))
			}
			return Displacement{Kind: DispDirect, Value: int16(le16(rest))}, 2, nil
		}
		return Displacement{Kind: DispNone}, 0, nil
	case ModeMem8:
		if len(rest) < 1 {
			return Displacement{}, 0, errTruncated(0, 1, len(rest))
		}
		return Displacement{Kind: Disp8, Value: int16(int8(rest[0]))}, 1, nil
	case ModeMem16:
		if len(rest) < 2 {
			return Displacement{}, 0, errTruncated(0, 2, len(rest))
		}
		return Displacement{Kind: Disp16, Value: int16(le16(rest))}, 2, nil
	default:
		return Displacement{}, 0, errDispInRegMode()
	}
}

// eaBaseIndexTable maps R/M codes 0-3 to their fixed base+index register
// pair, per the real 8086 addressing-mode table.
var eaBaseIndexTable = [4]struct{ Base, Index GeneralRegister }{
	{BX, SI},
	{BX, DI},
	{BP, SI},
	{BP, DI},
}

// buildEffectiveAddress constructs the EffectiveAddress described by an R/M
// field and its already-decoded displacement, per the fixed 8086 R/M table.
func buildEffectiveAddress(rm uint8, disp Displacement) EffectiveAddress {
	switch rm {
	case 0, 1, 2, 3:
		pair := eaBaseIndexTable[rm]
		return EffectiveAddress{Kind: EABaseIndex, Base: pair.Base, Index: pair.Index, Disp: disp}
	case 4:
		return EffectiveAddress{Kind: EABase, Base: SI, Disp: disp}
	case 5:
		return EffectiveAddress{Kind: EABase, Base: DI, Disp: disp}
	case 6:
		if disp.Kind == DispDirect {
			return EffectiveAddress{Kind: EADirect, Addr: uint16(disp.Value)}
		}
		return EffectiveAddress{Kind: EABase, Base: BP, Disp: disp}
	default: // 7
		return EffectiveAddress{Kind: EABase, Base: BX, Disp: disp}
	}
}
