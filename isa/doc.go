// Package isa implements the encoder and decoder for the CHARIS instruction set.
//
// Every instruction is a 32-bit word. Register-format (R) instructions share a
// single opcode and select the operation with a trailing function field, while
// immediate-format (I) instructions are selected by their leading opcode and
// carry a 16-bit immediate. Words are handled as strings of '0' and '1' symbols,
// most significant bit first, which is also the on-disk image format.
package isa
