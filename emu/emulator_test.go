package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/nkasanin/sim8086/emu"
)

// These programs are raw 8086-class machine code, each ending in the 0xF4
// halt byte, hand-assembled and traced against the decoder/ALU/branch-unit
// semantics exercised elsewhere in this package.
var _ = Describe("Emulator end-to-end", func() {
	var emulator *Emulator

	BeforeEach(func() {
		var err error
		emulator, err = NewEmulator()
		Expect(err).NotTo(HaveOccurred())
	})

	It("runs mov+add and halts with the summed value in ax", func() {
		// mov ax, 5 ; add ax, 10 ; hlt
		program := []byte{0xB8, 0x05, 0x00, 0x05, 0x0A, 0x00, 0xF4}
		emulator.LoadProgram(program)

		Expect(emulator.Run()).NotTo(HaveOccurred())
		Expect(emulator.RegFile().AX).To(Equal(uint16(15)))
		Expect(emulator.InstructionCount()).To(Equal(uint64(3)))
		// IP halts at the hlt byte's own offset (6), not one past it (§4.12 step 4).
		Expect(emulator.RegFile().IP).To(Equal(uint16(6)))
	})

	It("round-trips a value through push and pop", func() {
		// mov ax, 0x1234 ; push ax ; mov ax, 0 ; pop bx ; hlt
		program := []byte{0xB8, 0x34, 0x12, 0x50, 0xB8, 0x00, 0x00, 0x5B, 0xF4}
		emulator.LoadProgram(program)

		Expect(emulator.Run()).NotTo(HaveOccurred())
		Expect(emulator.RegFile().BX).To(Equal(uint16(0x1234)))
		Expect(emulator.RegFile().AX).To(Equal(uint16(0)))
		Expect(emulator.RegFile().SP).To(Equal(uint16(0)))
		Expect(emulator.RegFile().IP).To(Equal(uint16(8)))
	})

	It("sums 3+2+1 via LOOP decrementing cx", func() {
		// mov cx, 3 ; mov ax, 0
		// label: add ax, cx ; loop label
		// hlt
		program := []byte{
			0xB9, 0x03, 0x00, // mov cx, 3
			0xB8, 0x00, 0x00, // mov ax, 0
			0x03, 0xC1, // add ax, cx
			0xE2, 0xFC, // loop label (-4)
			0xF4, // hlt
		}
		emulator.LoadProgram(program)

		Expect(emulator.Run()).NotTo(HaveOccurred())
		Expect(emulator.RegFile().AX).To(Equal(uint16(6)))
		Expect(emulator.RegFile().CX).To(Equal(uint16(0)))
		Expect(emulator.RegFile().IP).To(Equal(uint16(10)))
	})

	It("takes a conditional jump when the compared values are equal", func() {
		// mov ax, 5 ; cmp ax, 5 ; je skip ; mov bx, 1 ; skip: mov bx, 2 ; hlt
		program := []byte{
			0xB8, 0x05, 0x00, // mov ax, 5
			0x3D, 0x05, 0x00, // cmp ax, 5
			0x74, 0x03, // je +3
			0xBB, 0x01, 0x00, // mov bx, 1 (skipped)
			0xBB, 0x02, 0x00, // mov bx, 2
			0xF4,
		}
		emulator.LoadProgram(program)

		Expect(emulator.Run()).NotTo(HaveOccurred())
		Expect(emulator.RegFile().BX).To(Equal(uint16(2)))
		Expect(emulator.RegFile().Flags.ZF).To(BeTrue())
		Expect(emulator.RegFile().IP).To(Equal(uint16(14)))
	})

	It("falls through a conditional jump when the condition is false", func() {
		// mov ax, 5 ; cmp ax, 6 ; je skip ; mov bx, 1 ; skip: mov bx, 2 ; hlt
		program := []byte{
			0xB8, 0x05, 0x00,
			0x3D, 0x06, 0x00,
			0x74, 0x03,
			0xBB, 0x01, 0x00,
			0xBB, 0x02, 0x00,
			0xF4,
		}
		emulator.LoadProgram(program)

		Expect(emulator.Run()).NotTo(HaveOccurred())
		Expect(emulator.RegFile().BX).To(Equal(uint16(2)))
		Expect(emulator.RegFile().Flags.ZF).To(BeFalse())
		Expect(emulator.RegFile().IP).To(Equal(uint16(14)))
	})

	It("writes and reads back a direct memory operand", func() {
		// mov word [0x0200], 0x00FF ; mov ax, [0x0200] ; hlt
		program := []byte{
			0xC7, 0x06, 0x00, 0x02, 0xFF, 0x00,
			0xA1, 0x00, 0x02,
			0xF4,
		}
		emulator.LoadProgram(program)

		Expect(emulator.Run()).NotTo(HaveOccurred())
		Expect(emulator.RegFile().AX).To(Equal(uint16(0x00FF)))
		Expect(emulator.Memory().Read16(0x0200)).To(Equal(uint16(0x00FF)))
		Expect(emulator.RegFile().IP).To(Equal(uint16(9)))
	})

	It("reports a memory-offset error rather than wrapping past the 16-bit space", func() {
		// mov bx, 0xfffe ; mov byte [bx + 5], 1 ; hlt
		program := []byte{
			0xBB, 0xFE, 0xFF,
			0xC6, 0x47, 0x05, 0x01,
			0xF4,
		}
		emulator.LoadProgram(program)

		err := emulator.Run()
		Expect(err).To(HaveOccurred())
	})

	It("reports an instruction-pointer error rather than wrapping a jump past zero", func() {
		// jmp-style: jnz with a large negative offset from near the start of memory
		program := []byte{0x75, 0xF0, 0xF4} // jne $-14 (taken, since ZF starts false)
		emulator.LoadProgram(program)

		err := emulator.Run()
		Expect(err).To(HaveOccurred())
	})

	It("stops at WithMaxInstructions and reports an error", func() {
		emulator2, err := NewEmulator(WithMaxInstructions(1))
		Expect(err).NotTo(HaveOccurred())
		// mov ax, 1 ; mov bx, 2 ; hlt -- only the first mov should execute
		program := []byte{0xB8, 0x01, 0x00, 0xBB, 0x02, 0x00, 0xF4}
		emulator2.LoadProgram(program)

		err = emulator2.Run()
		Expect(err).To(HaveOccurred())
		Expect(emulator2.RegFile().AX).To(Equal(uint16(1)))
		Expect(emulator2.RegFile().BX).To(Equal(uint16(0)))
	})

	It("rejects a memory size other than the fixed 64 KiB address space", func() {
		_, err := NewEmulator(WithMemorySize(1024))
		Expect(err).To(HaveOccurred())
	})
})
