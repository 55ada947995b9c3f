package insts

import "sort"

// Program is a decoded instruction stream: every instruction reachable by
// linearly decoding from offset 0, each tagged with the buffer offset it
// was found at (§4.7).
type Program struct {
	Entries []Decoded
}

// DecodeProgram decodes every instruction in data, starting at offset 0 and
// advancing by each instruction's size until data is exhausted. It stops
// and returns an error on the first decode failure, per the first-error
// abort policy (§7).
func DecodeProgram(data []byte) (*Program, error) {
	dec := NewDecoder()
	var entries []Decoded
	offset := 0
	for offset < len(data) {
		inst, size, err := dec.Decode(data[offset:], offset)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Decoded{Inst: inst, Size: size, Offset: offset})
		offset += size
	}
	entries = append(entries, Decoded{Inst: Instruction{Family: FamilyHalt}, Size: 0, Offset: offset})
	return &Program{Entries: entries}, nil
}

// At returns the instruction decoded at exactly the given offset, if any.
func (p *Program) At(offset int) (Decoded, bool) {
	i := sort.Search(len(p.Entries), func(i int) bool {
		return p.Entries[i].Offset >= offset
	})
	if i < len(p.Entries) && p.Entries[i].Offset == offset {
		return p.Entries[i], true
	}
	return Decoded{}, false
}
