// Package checksum implements the CRC-32 integrity engine for the checked
// (v2) wire format.
//
// The engine uses the standard IEEE 802.3 CRC-32 (reversed polynomial
// 0xEDB88320, initial value 0xFFFFFFFF, final complement) so checksums can
// be cross-checked with any external CRC-32 tool. The lookup table is an
// explicit immutable value built once by NewTable and shared by the codec's
// owner; there is no ambient global table.
//
// On the wire the 32-bit checksum occupies exactly 16 symbols: the four
// big-endian bytes each split into 2-bit groups, most significant group
// first, mapped through the shared alphabet.
package checksum
