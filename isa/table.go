package isa

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/charis/internal"
)

// Code is a 6-bit opcode or function field value.
type Code uint8

const (
	WORD_BITS     = 32             // Width of an encoded instruction.
	CODE_BITS     = 6              // Width of an opcode or function field.
	REGISTER_BITS = 5              // Width of a register field.
	SHAMT         = "00000"        // Shift amount field, always zero.
	OPCODE_R      = Code(0b100000) // Opcode shared by all R-format instructions.
	MARKER_R      = "R"            // Opcode mnemonic meaning 'see function field'.
)

// Class is an instruction encoding class.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_REGISTER  = Class(0) // R
	CLASS_IMMEDIATE = Class(1) // I
)

// Form is the textual operand shape of an instruction.
type Form int

//go:generate go tool stringer -linecomment -type=Form
const (
	FORM_REG_REG_REG = Form(0) // rd, rs, rt
	FORM_REG_REG     = Form(1) // rd, rs
	FORM_REG_IMM     = Form(2) // rd, immed
	FORM_IMM         = Form(3) // immed
	FORM_REG_REG_IMM = Form(4) // rd, rs, immed
	FORM_REG_MEM     = Form(5) // rd, immed(rs)
)

// Fields is the number of rd, rs, rt and immediate fields the form carries.
// Encoding more operands than this would lose the extras on decode.
func (form Form) Fields() int {
	switch form {
	case FORM_IMM:
		return 1
	case FORM_REG_REG, FORM_REG_IMM:
		return 2
	default:
		return 3
	}
}

// rTypeMap maps R-format mnemonics to function codes.
var rTypeMap = map[string]Code{
	"add":  0b110000,
	"sub":  0b110001,
	"and":  0b110010,
	"or":   0b110011,
	"not":  0b110100,
	"nand": 0b110101,
	"nor":  0b110110,
	"sra":  0b111000,
	"srl":  0b111001,
	"sll":  0b111010,
	"rol":  0b111100,
	"ror":  0b111101,
}

// iTypeMap maps I-format mnemonics to opcodes.
var iTypeMap = map[string]Code{
	"li":    0b111000,
	"lui":   0b111001,
	"addi":  0b110000,
	"nandi": 0b110010,
	"ori":   0b110011,
	"b":     0b111111,
	"beq":   0b000000,
	"bne":   0b000001,
	"lb":    0b000011,
	"sb":    0b000111,
	"lw":    0b001111,
	"sw":    0b011111,
}

// singleRegister is the set of R-format mnemonics taking one source register.
var singleRegister = map[string]bool{
	"not": true,
	"rol": true,
	"ror": true,
	"sra": true,
	"srl": true,
	"sll": true,
}

// iFormMap is the operand shape of each I-format mnemonic.
var iFormMap = map[string]Form{
	"li":    FORM_REG_IMM,
	"lui":   FORM_REG_IMM,
	"b":     FORM_IMM,
	"beq":   FORM_REG_REG_IMM,
	"bne":   FORM_REG_REG_IMM,
	"ori":   FORM_REG_REG_IMM,
	"addi":  FORM_REG_REG_IMM,
	"nandi": FORM_REG_REG_IMM,
	"lw":    FORM_REG_MEM,
	"sw":    FORM_REG_MEM,
	"sb":    FORM_REG_MEM,
	"lb":    FORM_REG_MEM,
}

// Inverse tables, keyed by field value.
var (
	opcodeMap   = map[Code]string{OPCODE_R: MARKER_R}
	functionMap = map[Code]string{}
)

func init() {
	for name, code := range iTypeMap {
		opcodeMap[code] = name
	}
	for name, code := range rTypeMap {
		functionMap[code] = name
	}
}

// RegisterFunction returns the function code of an R-format mnemonic.
func RegisterFunction(mnemonic string) (code Code, ok bool) {
	code, ok = rTypeMap[mnemonic]
	return
}

// ImmediateOpcode returns the opcode of an I-format mnemonic.
func ImmediateOpcode(mnemonic string) (code Code, ok bool) {
	code, ok = iTypeMap[mnemonic]
	return
}

// OpcodeMnemonic returns the I-format mnemonic for an opcode, or MARKER_R for
// the shared R-format opcode.
func OpcodeMnemonic(code Code) (mnemonic string, ok bool) {
	mnemonic, ok = opcodeMap[code]
	return
}

// FunctionMnemonic returns the R-format mnemonic for a function code.
func FunctionMnemonic(code Code) (mnemonic string, ok bool) {
	mnemonic, ok = functionMap[code]
	return
}

// IsSingleOperand is true for the unary R-format mnemonics.
func IsSingleOperand(mnemonic string) bool {
	return singleRegister[mnemonic]
}

// FormOf returns the operand shape the decoder renders for a mnemonic.
func FormOf(mnemonic string) (form Form, ok bool) {
	if _, is_r := rTypeMap[mnemonic]; is_r {
		form = FORM_REG_REG_REG
		if IsSingleOperand(mnemonic) {
			form = FORM_REG_REG
		}
		ok = true
		return
	}

	form, ok = iFormMap[mnemonic]
	return
}

// Mnemonics iterates over all supported mnemonics in sorted order.
func Mnemonics() iter.Seq2[string, Class] {
	return func(yield func(mnemonic string, class Class) bool) {
		names := slices.Sorted(internal.Concat(maps.Keys(rTypeMap), maps.Keys(iTypeMap)))
		for _, name := range names {
			class := CLASS_IMMEDIATE
			if _, is_r := rTypeMap[name]; is_r {
				class = CLASS_REGISTER
			}
			if !yield(name, class) {
				return
			}
		}
	}
}
