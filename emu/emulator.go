package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/nkasanin/sim8086/insts"
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true once the halt instruction has executed.
	Halted bool

	// Err is set if a decode or execute error occurred.
	Err error
}

// Emulator executes 8086 instructions functionally, fetching from and
// writing to a single flat 64 KiB memory (§4.12).
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder

	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	stdout io.Writer
	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit

	memorySizeErr error // set by WithMemorySize if given a size other than MemorySize
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stdout = w
	}
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stderr = w
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// WithCodeSegment sets the initial CS register, the base offset code
// fetches are relative to.
func WithCodeSegment(cs uint16) EmulatorOption {
	return func(e *Emulator) {
		e.regFile.CS = cs
	}
}

// WithMemorySize is accepted for symmetry with the teacher's option
// surface, but this simulator's address space is always the full 64 KiB
// range (§3); any other value is rejected at NewEmulator time.
func WithMemorySize(size int) EmulatorOption {
	return func(e *Emulator) {
		if size != MemorySize {
			e.memorySizeErr = fmt.Errorf("emu: memory size must be %d, got %d", MemorySize, size)
		}
	}
}

// NewEmulator creates a new 8086 emulator with memory and registers zeroed,
// IP at 0, applying opts in order.
func NewEmulator(opts ...EmulatorOption) (*Emulator, error) {
	regFile := &RegFile{}
	memory := NewMemory()

	e := &Emulator{
		regFile: regFile,
		memory:  memory,
		decoder: insts.NewDecoder(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.memorySizeErr != nil {
		return nil, e.memorySizeErr
	}

	e.alu = NewALU(regFile)
	e.lsu = NewLoadStoreUnit(regFile, memory)
	e.branchUnit = NewBranchUnit(regFile)

	return e, nil
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadProgram copies program into memory at CS and resets IP to 0.
func (e *Emulator) LoadProgram(program []byte) {
	e.memory.Load(e.regFile.CS, program)
	e.regFile.IP = 0
}

// Step fetches, decodes, and executes the instruction at CS+IP.
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: errMaxInstructions()}
	}

	addr := e.regFile.CS + e.regFile.IP
	inst, size, err := e.decoder.Decode(e.memory.Bytes()[addr:], int(addr))
	if err != nil {
		return StepResult{Err: err}
	}
	e.regFile.IP += uint16(size)

	result := e.execute(inst)
	e.instructionCount++
	return result
}

// Run steps the emulator until it halts or hits an error, printing any
// error to stderr before returning it.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Err != nil {
			fmt.Fprintf(e.stderr, "execution error: %v\n", result.Err)
			return result.Err
		}
		if result.Halted {
			return nil
		}
	}
}

// execute dispatches a decoded instruction to its family handler.
func (e *Emulator) execute(inst insts.Instruction) StepResult {
	switch inst.Family {
	case insts.FamilyHalt:
		// Step already advanced IP past this 1-byte instruction; leave IP
		// at the halt's own address on exit (§4.12 step 4).
		e.regFile.IP--
		return StepResult{Halted: true}
	case insts.FamilyMove:
		return e.executeMove(inst)
	case insts.FamilyArith:
		return e.executeArith(inst)
	case insts.FamilyPush:
		return e.executePush(inst)
	case insts.FamilyPop:
		return e.executePop(inst)
	case insts.FamilyCondJump:
		return e.executeCondJump(inst)
	default:
		return StepResult{Err: errUnimplementedFamily(int(inst.Family), e.regFile.IP)}
	}
}

func (e *Emulator) executeMove(inst insts.Instruction) StepResult {
	value, err := e.lsu.ReadOperand(inst.Src, inst.Width)
	if err != nil {
		return StepResult{Err: err}
	}
	if err := e.lsu.WriteOperand(inst.Dst, inst.Width, value); err != nil {
		return StepResult{Err: err}
	}
	return StepResult{}
}

func (e *Emulator) executeArith(inst insts.Instruction) StepResult {
	src, err := e.lsu.ReadOperand(inst.Src, inst.Width)
	if err != nil {
		return StepResult{Err: err}
	}
	dst, err := e.lsu.ReadOperand(inst.Dst, inst.Width)
	if err != nil {
		return StepResult{Err: err}
	}
	result := e.alu.Exec(inst.Arith, inst.Width, dst, src)
	if inst.Arith == insts.ArithCmp {
		return StepResult{}
	}
	if err := e.lsu.WriteOperand(inst.Dst, inst.Width, result); err != nil {
		return StepResult{Err: err}
	}
	return StepResult{}
}

func (e *Emulator) executePush(inst insts.Instruction) StepResult {
	value, err := e.lsu.ReadOperand(inst.Dst, insts.Word)
	if err != nil {
		return StepResult{Err: err}
	}
	e.lsu.Push(value)
	return StepResult{}
}

func (e *Emulator) executePop(inst insts.Instruction) StepResult {
	value := e.lsu.Pop()
	if err := e.lsu.WriteOperand(inst.Dst, insts.Word, value); err != nil {
		return StepResult{Err: err}
	}
	return StepResult{}
}

func (e *Emulator) executeCondJump(inst insts.Instruction) StepResult {
	if e.branchUnit.ShouldJump(inst.Cond) {
		if err := e.branchUnit.Jump(inst.Offset); err != nil {
			return StepResult{Err: err}
		}
	}
	return StepResult{}
}
