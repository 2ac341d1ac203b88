package isa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		bits string
	}{
		{"li r4, 19", "11100000000001000000000000010011"},
		{"add r3, r4, r5", "10000000100000110010100000110000"},
		{"not r4, r5", "10000000101001000000000000110100"},
		{"ror r7, r8", "10000001000001110000000000111101"},
		{"nor r1, r2, r3", "10000000010000010001100000110110"},
		{"lw r4, 5(r6)", "00111100110001000000000000000101"},
		{"sw r31, -1(r0)", "01111100000111111111111111111111"},
		{"b -2", "11111100000000001111111111111110"},
		{"addi r4, r5, 139", "11000000101001000000000010001011"},
		{"lui r1, 0x7fff", "11100100000000010111111111111111"},
		{"beq r1, r2, 0x0013", "00000000010000010000000000010011"},
		{"add r3,r4,r5", "10000000100000110010100000110000"},
		{"add\tr3, r4 r5", "10000000100000110010100000110000"},
		{"  li r4, 19   ; load nineteen", "11100000000001000000000000010011"},
	}

	for _, entry := range table {
		bits, err := Encode(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.bits, bits, entry.line)
	}
}

func TestEncodeFields(t *testing.T) {
	assert := assert.New(t)

	bits, err := Encode("add r3, r4, r5")
	assert.NoError(err)
	assert.Equal("100000", bits[0:6])  // opcode
	assert.Equal("00100", bits[6:11])  // rs
	assert.Equal("00011", bits[11:16]) // rd
	assert.Equal("00101", bits[16:21]) // rt
	assert.Equal(SHAMT, bits[21:26])
	assert.Equal("110000", bits[26:32]) // function

	bits, err = Encode("not r4, r5")
	assert.NoError(err)
	assert.Equal("00101", bits[6:11])
	assert.Equal("00100", bits[11:16])
	assert.Equal("00000", bits[16:21])

	bits, err = Encode("li r4, 19")
	assert.NoError(err)
	assert.Equal("111000", bits[0:6])
	assert.Equal("00000", bits[6:11])
	assert.Equal("00100", bits[11:16])
	assert.Equal("0000000000010011", bits[16:32])

	bits, err = Encode("b 7")
	assert.NoError(err)
	assert.Equal("0000000000", bits[6:16])
}

func TestEncodeWidth(t *testing.T) {
	assert := assert.New(t)

	for name, class := range Mnemonics() {
		var lines []string
		form, _ := FormOf(name)
		switch form {
		case FORM_REG_REG_REG:
			lines = append(lines, name+" r31, r0, r17")
		case FORM_REG_REG:
			lines = append(lines, name+" r31, r1")
		case FORM_REG_IMM:
			lines = append(lines, name+" r9, -32768", name+" r9, 0xffff")
		case FORM_IMM:
			lines = append(lines, name+" 32767")
		case FORM_REG_REG_IMM:
			lines = append(lines, name+" r1, r2, -7")
		case FORM_REG_MEM:
			lines = append(lines, name+" r1, 0x10(r2)")
		}
		for _, line := range lines {
			bits, err := Encode(line)
			assert.NoError(err, line)
			assert.Len(bits, WORD_BITS, line)
			assert.Empty(strings.Trim(bits, "01"), line)
			if class == CLASS_REGISTER {
				assert.Equal("100000", bits[0:6], line)
			}
		}
	}
}

func TestEncodeHexMatchesDecimal(t *testing.T) {
	assert := assert.New(t)

	hex, err := Encode("li r4, 0x0013")
	assert.NoError(err)
	dec, err := Encode("li r4, 19")
	assert.NoError(err)
	assert.Equal(dec, hex)
}

func TestEncodeExpression(t *testing.T) {
	assert := assert.New(t)

	expr, err := Encode("li r4, $(16 + 3)")
	assert.NoError(err)
	dec, err := Encode("li r4, 19")
	assert.NoError(err)
	assert.Equal(dec, expr)

	expr, err = Encode("lw r4, $((2 + 3) * 1)(r6)")
	assert.NoError(err)
	dec, err = Encode("lw r4, 5(r6)")
	assert.NoError(err)
	assert.Equal(dec, expr)

	expr, err = Encode("b $(-1 - 1)")
	assert.NoError(err)
	assert.Equal("11111100000000001111111111111110", expr)

	_, err = Encode("li r4, $(1 +)")
	assert.ErrorIs(err, ErrExpression)

	_, err = Encode(`li r4, $("a")`)
	assert.ErrorIs(err, ErrExpression)

	_, err = Encode("li r4, $(1 << 20)")
	assert.ErrorIs(err, ErrRange)
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		err  error
	}{
		{"", ErrInstructionMissing},
		{"   ; just a comment", ErrInstructionMissing},
		{"mul r1, r2, r3", ErrUnsupportedInstruction},
		{"add r1, r2", ErrUnsupportedInstruction},
		{"add r1", ErrUnsupportedInstruction},
		{"not r1", ErrUnsupportedInstruction},
		{"add r1, r2, r3, r4", ErrUnsupportedInstruction},
		{"li", ErrUnsupportedInstruction},
		{"addi r1, r2, 3, 4", ErrUnsupportedInstruction},
		{"not r1, r2, r3", ErrUnsupportedInstruction},
		{"rol r1, r2, r3", ErrUnsupportedInstruction},
		{"b r1, 5", ErrUnsupportedInstruction},
		{"b r1, r2, 5", ErrUnsupportedInstruction},
		{"li r1, r2, 5", ErrUnsupportedInstruction},
		{"lui r1, r2, 5", ErrUnsupportedInstruction},
		{"add r1, r2, x3", ErrMalformedOperand},
		{"add r1, r2, r", ErrMalformedOperand},
		{"add r1, r2, r-1", ErrMalformedOperand},
		{"add r1, r2, r32", ErrOverflow},
		{"li r4, nineteen", ErrMalformedOperand},
		{"li r4, 32768", ErrRange},
		{"li r4, 0x10000", ErrFormat},
		{"lw r4, 5", ErrMalformedOperand},
		{"lw r4, 5(r6", ErrMalformedOperand},
		{"lw r4, 5(x6)", ErrMalformedOperand},
		{"lw r4, 5(r40)", ErrOverflow},
		{"lw r4, (r6)", ErrMalformedOperand},
	}

	for _, entry := range table {
		bits, err := Encode(entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
		assert.Empty(bits, entry.line)
	}
}

func TestEncodeOperandError(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode("add r1, r2, r99")
	var operand ErrOperand
	assert.ErrorAs(err, &operand)
	assert.Equal("r99", operand.Operand)
	assert.ErrorIs(operand.Err, ErrOverflow)
}

func TestEncodeUnsupportedSource(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"add r1, r2",
		"not r1, r2, r3",
		"b r1, r2, 5",
		"li",
		"mul r1, r2, r3",
	}

	for _, line := range table {
		_, err := Encode(line + " ; trailing comment")
		var unsupported ErrUnsupported
		assert.ErrorAs(err, &unsupported, line)
		assert.Equal(ErrUnsupported(line), unsupported, line)
	}
}
