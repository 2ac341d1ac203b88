// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"strconv"
	"strings"
)

const REGISTER_PREFIX = "r"

// splitOperands separates operand tokens on spaces, tabs and commas.
func splitOperands(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// encodeRegister encodes an rN token as a 5-bit field.
func encodeRegister(token string) (bits string, err error) {
	index, ok := strings.CutPrefix(token, REGISTER_PREFIX)
	if !ok {
		err = ErrOperand{Operand: token, Err: ErrMalformedOperand}
		return
	}

	value, perr := strconv.ParseUint(index, 10, 64)
	if perr != nil {
		err = ErrOperand{Operand: token, Err: ErrMalformedOperand}
		return
	}

	bits, err = EncodeUnsigned(value, REGISTER_BITS)
	if err != nil {
		err = ErrOperand{Operand: token, Err: err}
		return
	}

	return
}

// encodeImmediate encodes an immediate token as a 16-bit field.
func encodeImmediate(token string) (bits string, err error) {
	bits, err = EncodeSigned16(token)
	if err != nil {
		err = ErrOperand{Operand: token, Err: err}
		return
	}
	return
}

// encodeMemory encodes an immed(rN) token into its immediate and register fields.
func encodeMemory(token string) (immed, rs string, err error) {
	offset, base, ok := strings.Cut(token, "(")
	if !ok || !strings.HasSuffix(base, ")") {
		err = ErrOperand{Operand: token, Err: ErrMalformedOperand}
		return
	}

	rs, err = encodeRegister(strings.TrimSuffix(base, ")"))
	if err != nil {
		return
	}

	immed, err = encodeImmediate(offset)
	if err != nil {
		return
	}

	return
}

// encodeCode encodes an opcode or function field.
func encodeCode(code Code) string {
	bits, _ := EncodeUnsigned(uint64(code), CODE_BITS)
	return bits
}

// Encode assembles a single line of source into a 32-bit word.
//
// Text after a ';' is a comment. Any $(...) in the line is evaluated as a
// Starlark expression before the operands are parsed.
func Encode(line string) (bits string, err error) {
	line, _, _ = strings.Cut(line, ";")
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		err = ErrInstructionMissing
		return
	}

	line, err = expandExpressions(line)
	if err != nil {
		return
	}

	mnemonic, rest, _ := strings.Cut(strings.ReplaceAll(line, "\t", " "), " ")
	args := splitOperands(rest)

	form, ok := FormOf(mnemonic)
	if !ok || len(args) > form.Fields() {
		err = ErrUnsupported(line)
		return
	}

	if function, ok := RegisterFunction(mnemonic); ok {
		bits, err = encodeRegisterFormat(line, mnemonic, function, args)
	} else if opcode, ok := ImmediateOpcode(mnemonic); ok {
		bits, err = encodeImmediateFormat(line, form, opcode, args)
	}
	if err != nil {
		bits = ""
		return
	}

	if len(bits) != WORD_BITS {
		bits = ""
		err = ErrWordWidth
		return
	}

	return
}

// encodeRegisterFormat lays out [opcode][rs][rd][rt][shamt][function].
func encodeRegisterFormat(line string, mnemonic string, function Code, args []string) (bits string, err error) {
	var rd, rs, rt string

	switch {
	case len(args) == 3 && !IsSingleOperand(mnemonic):
		// add r3, r4, r5
		if rd, err = encodeRegister(args[0]); err != nil {
			return
		}
		if rs, err = encodeRegister(args[1]); err != nil {
			return
		}
		if rt, err = encodeRegister(args[2]); err != nil {
			return
		}
	case len(args) == 2 && IsSingleOperand(mnemonic):
		// not r4, r5
		if rd, err = encodeRegister(args[0]); err != nil {
			return
		}
		if rs, err = encodeRegister(args[1]); err != nil {
			return
		}
		rt = "00000"
	default:
		err = ErrUnsupported(line)
		return
	}

	bits = encodeCode(OPCODE_R) + rs + rd + rt + SHAMT + encodeCode(function)
	return
}

// encodeImmediateFormat lays out [opcode][rs][rd][immediate].
func encodeImmediateFormat(line string, form Form, opcode Code, args []string) (bits string, err error) {
	rs := "00000"
	rd := "00000"
	var immed string

	switch len(args) {
	case 1:
		// b -2
		if immed, err = encodeImmediate(args[0]); err != nil {
			return
		}
	case 2:
		if rd, err = encodeRegister(args[0]); err != nil {
			return
		}
		if form == FORM_REG_MEM {
			// lw r4, 5(r6)
			immed, rs, err = encodeMemory(args[1])
		} else {
			// li r4, 19
			immed, err = encodeImmediate(args[1])
		}
		if err != nil {
			return
		}
	case 3:
		// addi r4, r5, 139
		if rd, err = encodeRegister(args[0]); err != nil {
			return
		}
		if rs, err = encodeRegister(args[1]); err != nil {
			return
		}
		if immed, err = encodeImmediate(args[2]); err != nil {
			return
		}
	default:
		err = ErrUnsupported(line)
		return
	}

	bits = encodeCode(opcode) + rs + rd + immed
	return
}
