package codec

import (
	"github.com/lookalike-codec/lookalike"
	"github.com/lookalike-codec/lookalike/checksum"
)

// Version identifies a wire format variant.
type Version string

const (
	// VersionV1 is the legacy format: a pure symbol sequence with no
	// integrity metadata.
	VersionV1 Version = "v1"
	// VersionV2 is the current format: a main cipher followed by a
	// 16-symbol CRC-32 suffix.
	VersionV2 Version = "v2"
	// VersionEmpty is reported by Decode for empty input.
	VersionEmpty Version = "empty"
	// VersionUnknown is reported when the length fits no known shape.
	VersionUnknown Version = "unknown"
)

// FormatInfo describes the detected wire shape of a ciphertext.
type FormatInfo struct {
	Version        Version
	HasChecksum    bool
	MainLength     int
	ChecksumLength int
	Valid          bool
}

// DetectFormat infers the format from length alone; there is no version
// tag in the wire data. v2 wins whenever len > 16 and (len-16) is a
// multiple of 4, v1 only when that fails but len is a positive multiple
// of 4. The ambiguity for lengths satisfying both shapes is documented
// and preserved: changing the precedence would break existing v1
// ciphertexts. Never fails.
func (c *Codec) DetectFormat(ciphertext string) FormatInfo {
	n := len(ciphertext)

	if n > checksum.SymbolLen && (n-checksum.SymbolLen)%lookalike.SymbolsPerByte == 0 {
		return FormatInfo{
			Version:        VersionV2,
			HasChecksum:    true,
			MainLength:     n - checksum.SymbolLen,
			ChecksumLength: checksum.SymbolLen,
			Valid:          true,
		}
	}

	if n > 0 && n%lookalike.SymbolsPerByte == 0 {
		return FormatInfo{
			Version:    VersionV1,
			MainLength: n,
			Valid:      true,
		}
	}

	return FormatInfo{Version: VersionUnknown}
}
