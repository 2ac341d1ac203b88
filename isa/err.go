package isa

import (
	"errors"

	"github.com/ezrec/charis/translate"
)

var f = translate.From

var (
	// Field codec errors
	ErrOverflow         = errors.New(f("field overflow"))
	ErrRange            = errors.New(f("immediate out of range"))
	ErrFormat           = errors.New(f("hexadecimal literal too wide"))
	ErrBitString        = errors.New(f("not a bit string"))
	ErrMalformedOperand = errors.New(f("malformed operand"))
	ErrExpression       = errors.New(f("invalid expression"))

	// Encoder errors
	ErrInstructionMissing     = errors.New(f("instruction missing"))
	ErrUnsupportedInstruction = errors.New(f("unsupported instruction"))
	ErrWordWidth              = errors.New(f("encoding is not 32 bits"))

	// Decoder errors
	ErrWordFormat      = errors.New(f("word is not 32 bits of 0 or 1"))
	ErrUndecodableWord = errors.New(f("undecodable word"))
)

// ErrFieldOverflow is returned when a value does not fit its bit field.
type ErrFieldOverflow struct {
	Value uint64
	Width int
}

func (err ErrFieldOverflow) Error() string {
	return f("%v does not fit in %v bits", err.Value, err.Width)
}

func (err ErrFieldOverflow) Unwrap() error {
	return ErrOverflow
}

// ErrOperand locates the operand that failed to encode.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err ErrOperand) Error() string {
	return f("operand '%v' %v", err.Operand, err.Err)
}

func (err ErrOperand) Unwrap() error {
	return err.Err
}

type ErrUnsupported string

func (err ErrUnsupported) Error() string {
	return f("'%v' %v", string(err), ErrUnsupportedInstruction)
}

func (err ErrUnsupported) Is(target error) bool {
	return target == ErrUnsupportedInstruction
}

type ErrUndecodable string

func (err ErrUndecodable) Error() string {
	return f("%v %v", ErrUndecodableWord, string(err))
}

func (err ErrUndecodable) Is(target error) bool {
	return target == ErrUndecodableWord
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrExpression
}
