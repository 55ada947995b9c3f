package emu

// MemorySize is the fixed size of the flat address space this simulator
// models: the full 16-bit 8086 offset range.
const MemorySize = 1 << 16

// Memory is a flat 64 KiB byte-addressable store with little-endian
// multi-byte access, matching the 8086's unsegmented view of its own
// code/data space as far as this simulator models it.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns a zeroed 64 KiB memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Read8 reads one byte at addr.
func (m *Memory) Read8(addr uint16) uint8 {
	return m.data[addr]
}

// Write8 writes one byte at addr.
func (m *Memory) Write8(addr uint16, value uint8) {
	m.data[addr] = value
}

// Read16 reads a little-endian word at addr. addr+1 wraps around the
// 64 KiB address space, consistent with real 8086 segment-offset
// addressing.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := m.data[addr]
	hi := m.data[addr+1]
	return uint16(lo) | uint16(hi)<<8
}

// Write16 writes a little-endian word at addr.
func (m *Memory) Write16(addr uint16, value uint16) {
	m.data[addr] = byte(value)
	m.data[addr+1] = byte(value >> 8)
}

// Load copies program into memory starting at offset at. It is the
// caller's responsibility to ensure program fits before the end of the
// address space.
func (m *Memory) Load(at uint16, program []byte) {
	copy(m.data[at:], program)
}

// Bytes returns the whole address space as a slice, for dumping to a file.
func (m *Memory) Bytes() []byte {
	return m.data[:]
}
