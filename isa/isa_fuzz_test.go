package isa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xffffffff))
	f.Add(uint32(0xe0040013))
	f.Add(uint32(0x80832830))
	f.Add(uint32(0x3cc40005))

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		bits := fmt.Sprintf("%032b", word)
		text, err := Decode(bits)
		if err != nil {
			assert.ErrorIs(err, ErrUndecodableWord)
			return
		}

		again, err := Encode(text)
		assert.NoError(err, text)
		assert.Len(again, WORD_BITS)

		retext, err := Decode(again)
		assert.NoError(err, again)
		assert.Equal(text, retext)
	})
}
