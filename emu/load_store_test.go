package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nkasanin/sim8086/insts"

	. "github.com/nkasanin/sim8086/emu"
)

var _ = Describe("Memory", func() {
	It("reads and writes little-endian words", func() {
		mem := NewMemory()
		mem.Write16(0x100, 0x1234)
		Expect(mem.Read8(0x100)).To(Equal(uint8(0x34)))
		Expect(mem.Read8(0x101)).To(Equal(uint8(0x12)))
		Expect(mem.Read16(0x100)).To(Equal(uint16(0x1234)))
	})

	It("loads a program at an arbitrary offset", func() {
		mem := NewMemory()
		mem.Load(0x50, []byte{0xAA, 0xBB, 0xCC})
		Expect(mem.Read8(0x50)).To(Equal(uint8(0xAA)))
		Expect(mem.Read8(0x52)).To(Equal(uint8(0xCC)))
	})
})

var _ = Describe("ResolveAddress", func() {
	var regFile *RegFile

	BeforeEach(func() {
		regFile = &RegFile{}
	})

	It("returns a direct address unchanged", func() {
		ea := insts.EffectiveAddress{Kind: insts.EADirect, Addr: 0x1234}
		addr, err := ResolveAddress(regFile, ea)
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal(uint16(0x1234)))
	})

	It("adds a base register and signed displacement", func() {
		regFile.WriteWord(insts.BX, 10)
		ea := insts.EffectiveAddress{Kind: insts.EABase, Base: insts.BX, Disp: insts.Displacement{Kind: insts.Disp8, Value: -3}}
		addr, err := ResolveAddress(regFile, ea)
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal(uint16(7)))
	})

	It("adds base plus index plus displacement", func() {
		regFile.WriteWord(insts.BX, 100)
		regFile.WriteWord(insts.SI, 5)
		ea := insts.EffectiveAddress{Kind: insts.EABaseIndex, Base: insts.BX, Index: insts.SI, Disp: insts.Displacement{Kind: insts.Disp16, Value: 20}}
		addr, err := ResolveAddress(regFile, ea)
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal(uint16(125)))
	})

	It("wraps a base+index sum modulo 2^16 without error", func() {
		regFile.WriteWord(insts.BX, 0xFFF0)
		regFile.WriteWord(insts.SI, 0x0020)
		ea := insts.EffectiveAddress{Kind: insts.EABaseIndex, Base: insts.BX, Index: insts.SI}
		addr, err := ResolveAddress(regFile, ea)
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal(uint16(0x0010)))
	})

	It("errors rather than wraps when a displacement overflows the 16-bit space", func() {
		regFile.WriteWord(insts.BX, 0xFFFE)
		ea := insts.EffectiveAddress{Kind: insts.EABase, Base: insts.BX, Disp: insts.Displacement{Kind: insts.Disp8, Value: 5}}
		_, err := ResolveAddress(regFile, ea)
		Expect(err).To(HaveOccurred())
	})

	It("errors when a negative displacement would underflow below zero", func() {
		regFile.WriteWord(insts.BX, 2)
		ea := insts.EffectiveAddress{Kind: insts.EABase, Base: insts.BX, Disp: insts.Displacement{Kind: insts.Disp8, Value: -5}}
		_, err := ResolveAddress(regFile, ea)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("LoadStoreUnit", func() {
	var (
		regFile *RegFile
		memory  *Memory
		lsu     *LoadStoreUnit
	)

	BeforeEach(func() {
		regFile = &RegFile{}
		memory = NewMemory()
		lsu = NewLoadStoreUnit(regFile, memory)
	})

	It("reads and writes a register operand", func() {
		op := insts.RegOperand(insts.AX)
		Expect(lsu.WriteOperand(op, insts.Word, 0xBEEF)).NotTo(HaveOccurred())
		value, err := lsu.ReadOperand(op, insts.Word)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(uint16(0xBEEF)))
		Expect(regFile.ReadWord(insts.AX)).To(Equal(uint16(0xBEEF)))
	})

	It("reads an immediate operand without touching state", func() {
		op := insts.ImmOperand(insts.Value{Width: insts.Byte, Byte: -5})
		value, err := lsu.ReadOperand(op, insts.Byte)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(uint16(0xFFFB)))
	})

	It("reads and writes a memory operand at a resolved address", func() {
		op := insts.MemOperand(insts.EffectiveAddress{Kind: insts.EADirect, Addr: 0x200})
		Expect(lsu.WriteOperand(op, insts.Word, 0x55AA)).NotTo(HaveOccurred())
		Expect(memory.Read16(0x200)).To(Equal(uint16(0x55AA)))

		value, err := lsu.ReadOperand(op, insts.Word)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(uint16(0x55AA)))
	})

	It("rejects a word-width access to a byte-half register", func() {
		_, err := lsu.ReadOperand(insts.RegOperand(insts.AL), insts.Word)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a byte-width access to a word-only register", func() {
		_, err := lsu.ReadOperand(insts.RegOperand(insts.SP), insts.Byte)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a byte-width access to a segment register", func() {
		_, err := lsu.ReadOperand(insts.SegOperand(insts.DS), insts.Byte)
		Expect(err).To(HaveOccurred())
	})

	It("pushes and pops with the stack growing downward", func() {
		regFile.SP = 0x1000
		lsu.Push(0x1111)
		Expect(regFile.SP).To(Equal(uint16(0x0FFE)))
		lsu.Push(0x2222)
		Expect(regFile.SP).To(Equal(uint16(0x0FFC)))

		Expect(lsu.Pop()).To(Equal(uint16(0x2222)))
		Expect(regFile.SP).To(Equal(uint16(0x0FFE)))
		Expect(lsu.Pop()).To(Equal(uint16(0x1111)))
		Expect(regFile.SP).To(Equal(uint16(0x1000)))
	})
})
