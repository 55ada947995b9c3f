// Package loader turns an input file into initialized emulator memory
// (§4.14, [EXPANSION]). Unlike the teacher's ELF loader, this format has no
// header or segments — it is the raw code bytes, loaded at a single base
// offset.
package loader

import (
	"fmt"
	"os"

	"github.com/nkasanin/sim8086/emu"
)

// haltSentinel is appended after the loaded program so execution always
// terminates even if the input omits a trailing halt instruction.
const haltSentinel = 0xF4

// Load reads the raw program bytes at path.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return data, nil
}

// LoadIntoMemory copies program into mem at codeSegment, appending the
// halt sentinel byte immediately after it, and returns the offset of that
// sentinel.
func LoadIntoMemory(mem *emu.Memory, codeSegment uint16, program []byte) (uint16, error) {
	if len(program)+1 > emu.MemorySize {
		return 0, fmt.Errorf("loader: program of %d bytes plus halt sentinel exceeds %d-byte memory", len(program), emu.MemorySize)
	}
	mem.Load(codeSegment, program)
	sentinelAt := codeSegment + uint16(len(program))
	mem.Write8(sentinelAt, haltSentinel)
	return sentinelAt, nil
}
