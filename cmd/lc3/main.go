package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"lc3vm/console"
	"lc3vm/cpu"
	"lc3vm/emulator"
)

func main() {
	var entry uint
	var verbose bool

	flag.UintVar(&entry, "e", uint(cpu.PC_START), "Entry address")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %v [image-file1] ...\n", os.Args[0])
		os.Exit(2)
	}

	if entry >= cpu.MEM_MAX {
		fmt.Fprintf(os.Stderr, "entry address 0x%x is outside the 16-bit address space\n", entry)
		os.Exit(2)
	}

	term := console.NewTerminal()
	emu := emulator.NewEmulator(term)
	emu.Verbose = verbose

	for _, path := range flag.Args() {
		if err := emu.LoadImageFile(path); err != nil {
			log.Fatalf("%v", err)
		}
	}

	emu.PC = uint16(entry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.Raw(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	err := emu.Run(ctx)
	term.Restore()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		fmt.Println()
		os.Exit(130)
	default:
		if verbose {
			log.Print("\n" + emu.Cpu.String())
		}
		log.Fatalf("%v", err)
	}
}
