// Package wire owns the scalar primitives of the DIS binary encoding.
//
// Ownership boundary:
// - big-endian (network order) fixed-width integers and IEEE-754 floats
// - fixed-width octet runs
// - underrun detection on read
//
// Nothing here inserts alignment padding; padding is always an explicit field.
package wire
