// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command charis assembles and disassembles CHARIS (CHania Reduced
// Instruction Set) programs.
//
// Usage:
//
//	charis -a prog.asm    # assemble to rom.data
//	charis -d rom.data    # disassemble to rom.data.dis
//	charis -l             # list the instruction set
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/charis/isa"
	"github.com/ezrec/charis/rom"
)

func main() {
	stdout := registerHandlers(os.Stdout)

	err := run(os.Args[1:], stdout)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	atexit.Exit(0)
}

// registerHandlers buffers the listing, and flushes it on every atexit
// exit path so that progress lines printed before a fatal error are kept.
func registerHandlers(stdout io.Writer) (buffered *bufio.Writer) {
	buffered = bufio.NewWriter(stdout)
	atexit.Register(func() {
		buffered.Flush()
	})
	return
}

// run executes one command line, writing the progress listing to stdout.
func run(args []string, stdout io.Writer) (err error) {
	var assemble bool
	var disassemble bool
	var output string
	var lines int
	var summary bool
	var verbose bool
	var list bool

	flags := flag.NewFlagSet("charis", flag.ContinueOnError)
	flags.BoolVar(&assemble, "a", false, "Assemble .asm file")
	flags.BoolVar(&disassemble, "d", false, "Disassemble .rom file")
	flags.StringVar(&output, "o", "", "Output file (default "+rom.IMAGE_NAME+" or <file>"+rom.DISASSEMBLY_EXT+")")
	flags.IntVar(&lines, "n", rom.LINES, "Total words in an assembled image")
	flags.BoolVar(&summary, "s", false, "Print a summary table")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.BoolVar(&list, "l", false, "List supported instructions and exit")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), f("usage: charis [-a] OR [-d] file"))
		flags.PrintDefaults()
	}

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if list {
		listMnemonics(stdout)
		return
	}

	switch {
	case assemble && disassemble:
		err = ErrModeConflict
		return
	case !assemble && !disassemble:
		err = ErrModeMissing
		return
	case flags.NArg() != 1:
		err = ErrArguments
		return
	}

	input := flags.Arg(0)
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	bld := &rom.Builder{
		Lines:   lines,
		Verbose: verbose,
		Listing: stdout,
	}

	var report rom.Report
	if assemble {
		if len(output) == 0 {
			output = rom.IMAGE_NAME
		}
		report, err = assembleFile(bld, inf, output)
	} else {
		if len(output) == 0 {
			output = input + rom.DISASSEMBLY_EXT
		}
		report, err = disassembleFile(bld, inf, output)
	}
	if err != nil {
		return
	}

	if summary {
		report.Render(stdout)
	}

	return
}

// assembleFile writes the image even when some lines failed to assemble.
func assembleFile(bld *rom.Builder, inf io.Reader, output string) (report rom.Report, err error) {
	img, report, err := bld.Assemble(inf)
	if err != nil {
		return
	}

	ouf, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = img.Marshal(ouf)
	return
}

func disassembleFile(bld *rom.Builder, inf io.Reader, output string) (report rom.Report, err error) {
	ouf, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	report, err = bld.Disassemble(inf, ouf)
	return
}

// listMnemonics prints every instruction with its class and operand shape.
func listMnemonics(stdout io.Writer) {
	for name, class := range isa.Mnemonics() {
		form, _ := isa.FormOf(name)
		fmt.Fprintf(stdout, "%-6v %v %v\n", name, class, form)
	}
}
