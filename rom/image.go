package rom

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/charis/internal"
	"github.com/ezrec/charis/isa"
)

const (
	LINES           = 1024       // Default number of words in an image.
	WORD_SIZE       = 4          // Bytes addressed by each word.
	IMAGE_NAME      = "rom.data" // Default assembled image file.
	DISASSEMBLY_EXT = ".dis"     // Suffix of a disassembled listing.
)

// ZERO_WORD fills an image past its last instruction.
var ZERO_WORD = strings.Repeat("0", isa.WORD_BITS)

// Instruction is an assembled line of source.
type Instruction struct {
	LineNo  int    // Source line number.
	Address uint32 // Byte address of the word.
	Source  string // Source text, without comments.
	Bits    string // Encoded word.
}

// Image is an assembled program padded to a fixed number of words.
type Image struct {
	Lines        int
	Instructions []Instruction
}

// Words iterates over every word of the image by address, including padding.
func (img *Image) Words() iter.Seq2[uint32, string] {
	return internal.Concat2(img.assembled(), internal.Fill(len(img.Instructions), img.Lines, WORD_SIZE, ZERO_WORD))
}

func (img *Image) assembled() iter.Seq2[uint32, string] {
	return func(yield func(addr uint32, bits string) bool) {
		for _, inst := range img.Instructions {
			if !yield(inst.Address, inst.Bits) {
				return
			}
		}
	}
}

// Marshal writes the image, one word per line.
func (img *Image) Marshal(output io.Writer) (err error) {
	w := bufio.NewWriter(output)
	for _, bits := range img.Words() {
		_, err = fmt.Fprintln(w, bits)
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}
