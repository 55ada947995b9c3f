package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nkasanin/sim8086/insts"

	. "github.com/nkasanin/sim8086/emu"
)

var _ = Describe("RegFile", func() {
	var regFile *RegFile

	BeforeEach(func() {
		regFile = &RegFile{}
	})

	It("aliases AL/AH onto the low/high bytes of AX", func() {
		regFile.WriteWord(insts.AX, 0x1234)
		Expect(regFile.ReadByte(insts.AL)).To(Equal(uint8(0x34)))
		Expect(regFile.ReadByte(insts.AH)).To(Equal(uint8(0x12)))
	})

	It("writing a byte half leaves the other half untouched", func() {
		regFile.WriteWord(insts.BX, 0xAABB)
		regFile.WriteByte(insts.BL, 0x11)
		Expect(regFile.ReadWord(insts.BX)).To(Equal(uint16(0xAA11)))

		regFile.WriteByte(insts.BH, 0x22)
		Expect(regFile.ReadWord(insts.BX)).To(Equal(uint16(0x2211)))
	})

	It("ReadGeneral zero-extends a byte register and passes a word register through", func() {
		regFile.WriteWord(insts.CX, 0x12FF)
		Expect(regFile.ReadGeneral(insts.CL)).To(Equal(uint16(0x00FF)))
		Expect(regFile.ReadGeneral(insts.CX)).To(Equal(uint16(0x12FF)))
	})

	It("WriteGeneral truncates for a byte-half register", func() {
		regFile.WriteWord(insts.DX, 0xFFFF)
		regFile.WriteGeneral(insts.DL, 0x00AB)
		Expect(regFile.ReadWord(insts.DX)).To(Equal(uint16(0xFFAB)))
	})

	It("reads and writes all four segment registers independently", func() {
		regFile.WriteSeg(insts.ES, 0x1000)
		regFile.WriteSeg(insts.CS, 0x2000)
		regFile.WriteSeg(insts.SS, 0x3000)
		regFile.WriteSeg(insts.DS, 0x4000)

		Expect(regFile.ReadSeg(insts.ES)).To(Equal(uint16(0x1000)))
		Expect(regFile.ReadSeg(insts.CS)).To(Equal(uint16(0x2000)))
		Expect(regFile.ReadSeg(insts.SS)).To(Equal(uint16(0x3000)))
		Expect(regFile.ReadSeg(insts.DS)).To(Equal(uint16(0x4000)))
	})
})
