package insts

import "fmt"

func errTruncated(offset, need, have int) error {
	return fmt.Errorf("insts: truncated instruction at offset %d: need %d bytes, have %d", offset, need, have)
}

func errUnknownOpcode(offset int, b byte) error {
	return fmt.Errorf("insts: unknown opcode 0x%02X at offset %d", b, offset)
}

func errInvalidSegReg(code uint8) error {
	return fmt.Errorf("insts: invalid segment register code %d", code)
}

func errDispInRegMode() error {
	return fmt.Errorf("insts: displacement not applicable in register mode")
}

func errStackOperandWidth() error {
	return fmt.Errorf("insts: push/pop operand must be word-sized")
}
