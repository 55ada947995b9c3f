// Package main provides the sim8086 command-line front end: decode a raw
// 8086 binary to assembly text, or execute it and report final CPU state.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nkasanin/sim8086/disasm"
	"github.com/nkasanin/sim8086/emu"
	"github.com/nkasanin/sim8086/insts"
	"github.com/nkasanin/sim8086/loader"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "decode":
		err = runDecode(os.Args[2:])
	case "execute":
		err = runExecute(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "sim8086: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: sim8086 <decode|execute> <path> [-o <out>]\n")
}

// runDecode disassembles path's raw instruction stream to assembly text.
func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	out := fs.String("o", "", "write disassembly text to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("decode: missing <path>")
	}

	data, err := loader.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	program, err := insts.DecodeProgram(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	text := disasm.RenderProgram(program.Entries)

	if *out == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(*out, []byte(text), 0o644)
}

// runExecute loads path as a program, runs it to completion, and reports
// final register and flag state. With -o, also dumps the full 64 KiB
// memory image to a file.
func runExecute(args []string) error {
	fs := flag.NewFlagSet("execute", flag.ExitOnError)
	out := fs.String("o", "", "dump final memory image to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("execute: missing <path>")
	}

	data, err := loader.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	emulator, err := emu.NewEmulator()
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	if _, err := loader.LoadIntoMemory(emulator.Memory(), emulator.RegFile().CS, data); err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	if err := emulator.Run(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	printState(emulator.RegFile())

	if *out != "" {
		if err := os.WriteFile(*out, emulator.Memory().Bytes(), 0o644); err != nil {
			return fmt.Errorf("execute: dumping memory: %w", err)
		}
	}
	return nil
}

func printState(r *emu.RegFile) {
	fmt.Printf("ax: 0x%04x\n", r.AX)
	fmt.Printf("bx: 0x%04x\n", r.BX)
	fmt.Printf("cx: 0x%04x\n", r.CX)
	fmt.Printf("dx: 0x%04x\n", r.DX)
	fmt.Printf("sp: 0x%04x\n", r.SP)
	fmt.Printf("bp: 0x%04x\n", r.BP)
	fmt.Printf("si: 0x%04x\n", r.SI)
	fmt.Printf("di: 0x%04x\n", r.DI)
	fmt.Printf("es: 0x%04x\n", r.ES)
	fmt.Printf("cs: 0x%04x\n", r.CS)
	fmt.Printf("ss: 0x%04x\n", r.SS)
	fmt.Printf("ds: 0x%04x\n", r.DS)
	fmt.Printf("ip: 0x%04x\n", r.IP)
	fmt.Printf("flags: CF=%t PF=%t AF=%t ZF=%t SF=%t OF=%t\n",
		r.Flags.CF, r.Flags.PF, r.Flags.AF, r.Flags.ZF, r.Flags.SF, r.Flags.OF)
}
