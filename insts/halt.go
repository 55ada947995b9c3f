package insts

// decodeHalt decodes the single-byte halt sentinel (0xF4).
func decodeHalt(data []byte) (Instruction, int, error) {
	return Instruction{Family: FamilyHalt}, 1, nil
}
