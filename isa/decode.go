// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strings"
)

// Fields is the positional split of an encoded word. Every word is split the
// same way regardless of its class.
type Fields struct {
	Opcode    Code
	Rs        uint64
	Rd        uint64
	Rt        uint64
	Function  Code
	Immediate string // Hexadecimal rendering of the low 16 bits.
}

// Split extracts the fields of a 32-bit word.
func Split(bits string) (fields Fields, err error) {
	if len(bits) != WORD_BITS || strings.Trim(bits, "01") != "" {
		err = ErrWordFormat
		return
	}

	opcode, _ := DecodeUnsigned(bits[0:6])
	fields.Opcode = Code(opcode)
	fields.Rs, _ = DecodeUnsigned(bits[6:11])
	fields.Rd, _ = DecodeUnsigned(bits[11:16])
	fields.Rt, _ = DecodeUnsigned(bits[16:21])
	function, _ := DecodeUnsigned(bits[26:32])
	fields.Function = Code(function)
	fields.Immediate, _ = DecodeImmediateHex(bits[16:32])

	return
}

// Decode disassembles a 32-bit word into a line of source.
//
// Immediates are always rendered in hexadecimal, so decoding does not recover
// the decimal form an immediate may have been written in.
func Decode(bits string) (line string, err error) {
	fields, err := Split(bits)
	if err != nil {
		return
	}

	mnemonic, ok := OpcodeMnemonic(fields.Opcode)
	if !ok {
		err = ErrUndecodable(bits)
		return
	}

	if mnemonic == MARKER_R {
		mnemonic, ok = FunctionMnemonic(fields.Function)
		if !ok {
			err = ErrUndecodable(bits)
			return
		}
	}

	form, _ := FormOf(mnemonic)
	switch form {
	case FORM_REG_REG_REG:
		line = fmt.Sprintf("%v r%d, r%d, r%d", mnemonic, fields.Rd, fields.Rs, fields.Rt)
	case FORM_REG_REG:
		line = fmt.Sprintf("%v r%d, r%d", mnemonic, fields.Rd, fields.Rs)
	case FORM_REG_IMM:
		line = fmt.Sprintf("%v r%d, %v", mnemonic, fields.Rd, fields.Immediate)
	case FORM_IMM:
		line = fmt.Sprintf("%v %v", mnemonic, fields.Immediate)
	case FORM_REG_REG_IMM:
		line = fmt.Sprintf("%v r%d, r%d, %v", mnemonic, fields.Rd, fields.Rs, fields.Immediate)
	case FORM_REG_MEM:
		line = fmt.Sprintf("%v r%d, %v(r%d)", mnemonic, fields.Rd, fields.Immediate, fields.Rs)
	default:
		err = ErrUndecodable(bits)
	}

	return
}

// Hex renders a 32-bit word as eight hexadecimal digits for listings.
func Hex(bits string) string {
	value, err := DecodeUnsigned(bits)
	if err != nil {
		return "0x????????"
	}
	return fmt.Sprintf("0x%08x", value)
}
