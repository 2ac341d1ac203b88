package isa

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	IMMEDIATE_BITS = 16   // Width of an immediate field.
	HEX_PREFIX     = "0x" // Marks an immediate as a raw bit pattern.
)

// EncodeUnsigned encodes value as a zero padded field of width bits.
func EncodeUnsigned(value uint64, width int) (bits string, err error) {
	if width < 64 && value >= (uint64(1)<<width) {
		err = ErrFieldOverflow{Value: value, Width: width}
		return
	}

	bits = strconv.FormatUint(value, 2)
	if len(bits) < width {
		bits = strings.Repeat("0", width-len(bits)) + bits
	}

	return
}

// EncodeSigned16 encodes an immediate token as a 16-bit field.
//
// A token starting with 0x is a bit pattern of up to four hex digits; anything
// else is a decimal integer stored as 16-bit two's complement.
func EncodeSigned16(token string) (bits string, err error) {
	if digits, ok := strings.CutPrefix(token, HEX_PREFIX); ok {
		return encodeHex16(digits)
	}

	value, perr := strconv.ParseInt(token, 10, 64)
	if perr != nil {
		err = ErrMalformedOperand
		return
	}

	if value < -0x8000 || value > 0x7fff {
		err = ErrRange
		return
	}

	bits = fmt.Sprintf("%016b", uint16(int16(value)))
	return
}

// encodeHex16 expands each hex digit into four bits.
func encodeHex16(digits string) (bits string, err error) {
	if len(digits) == 0 {
		err = ErrMalformedOperand
		return
	}

	var sb strings.Builder
	for _, digit := range digits {
		nibble, perr := strconv.ParseUint(string(digit), 16, 4)
		if perr != nil {
			err = ErrMalformedOperand
			return
		}
		fmt.Fprintf(&sb, "%04b", nibble)
	}

	bits = sb.String()
	if len(bits) > IMMEDIATE_BITS {
		bits = ""
		err = ErrFormat
		return
	}

	bits = strings.Repeat("0", IMMEDIATE_BITS-len(bits)) + bits
	return
}

// DecodeUnsigned interprets a bit string as an unsigned integer.
func DecodeUnsigned(bits string) (value uint64, err error) {
	if len(bits) == 0 {
		err = ErrBitString
		return
	}

	value, err = strconv.ParseUint(bits, 2, 64)
	if err != nil {
		err = ErrBitString
		return
	}

	return
}

// DecodeImmediateHex renders an immediate field as unsigned hexadecimal.
func DecodeImmediateHex(bits string) (hex string, err error) {
	value, err := DecodeUnsigned(bits)
	if err != nil {
		return
	}

	hex = fmt.Sprintf("%#x", value)
	return
}
