package rom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/charis/isa"
)

// PLACEHOLDER stands in for a word that has no disassembly, keeping the
// listing aligned one line per word.
const PLACEHOLDER = "; undecodable %v"

// Builder sequences the encoder and decoder over line oriented files.
type Builder struct {
	Lines   int       // Words in an assembled image. LINES if zero.
	Verbose bool      // If set, logs every input line.
	Listing io.Writer // Progress listing. Discarded if nil.
}

func (bld *Builder) lines() int {
	if bld.Lines <= 0 {
		return LINES
	}
	return bld.Lines
}

func (bld *Builder) listing() io.Writer {
	if bld.Listing == nil {
		return io.Discard
	}
	return bld.Listing
}

// fail records a line failure in the report and the listing.
func (bld *Builder) fail(report *Report, lineno int, line string, err error) {
	failure := ErrLine{LineNo: lineno, Line: line, Err: err}
	report.Failures = append(report.Failures, failure)
	fmt.Fprintln(bld.listing(), f("error: %v", failure))
}

// Assemble encodes source lines into an image.
//
// Input ends at the first blank line or end of file. Lines that fail to
// encode are reported and skipped, and do not consume an address.
func (bld *Builder) Assemble(input io.Reader) (img *Image, report Report, err error) {
	img = &Image{Lines: bld.lines()}

	scanner := bufio.NewScanner(input)
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if bld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		if len(strings.TrimSpace(text)) == 0 {
			break
		}

		source, _, _ := strings.Cut(text, ";")
		source = strings.TrimSpace(source)

		bits, lerr := isa.Encode(text)
		if errors.Is(lerr, isa.ErrInstructionMissing) {
			continue
		}
		if lerr != nil {
			bld.fail(&report, lineno, source, lerr)
			continue
		}

		if len(img.Instructions) >= img.Lines {
			err = ErrLine{LineNo: lineno, Line: source, Err: ErrImageFull}
			return
		}

		addr := uint32(len(img.Instructions) * WORD_SIZE)
		img.Instructions = append(img.Instructions, Instruction{
			LineNo:  lineno,
			Address: addr,
			Source:  source,
			Bits:    bits,
		})
		fmt.Fprintf(bld.listing(), "%#x: %v ----------------> %v\n", addr, source, isa.Hex(bits))
	}

	report.Words = len(img.Instructions)
	err = scanner.Err()
	return
}

// Disassemble decodes an image into source lines, one line per word.
//
// Input ends at the first blank line or end of file. Words that fail to
// decode are reported, and written as a PLACEHOLDER comment.
func (bld *Builder) Disassemble(input io.Reader, output io.Writer) (report Report, err error) {
	w := bufio.NewWriter(output)

	scanner := bufio.NewScanner(input)
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if bld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		word := strings.TrimSpace(text)
		if len(word) == 0 {
			break
		}

		addr := uint32((lineno - 1) * WORD_SIZE)
		line, lerr := isa.Decode(word)
		if lerr != nil {
			bld.fail(&report, lineno, word, lerr)
			line = fmt.Sprintf(PLACEHOLDER, word)
		} else {
			report.Words += 1
		}

		fmt.Fprintf(bld.listing(), "%#x: %v ------------> %v\n", addr, isa.Hex(word), line)
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	err = w.Flush()
	return
}
