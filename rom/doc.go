// Package rom builds CHARIS memory images from source listings, and listings
// from memory images.
//
// An image is a text file of fixed length. Each line holds one 32-bit word
// written as '0' and '1' characters, at an implicit address of four bytes per
// line starting from zero. Lines past the assembled program are zero words.
package rom
