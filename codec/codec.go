package codec

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lookalike-codec/lookalike"
	"github.com/lookalike-codec/lookalike/checksum"
	"github.com/lookalike-codec/lookalike/errors"
	"github.com/lookalike-codec/lookalike/validate"
)

// Codec performs the reversible bit-packing transform between UTF-8 text
// and the 4-symbol alphabet. It holds only the immutable CRC-32 table and
// is safe for concurrent use.
type Codec struct {
	table *checksum.Table
}

// New creates a Codec with a freshly built CRC-32 table.
func New() *Codec {
	return &Codec{table: checksum.NewTable()}
}

// NewWithTable creates a Codec sharing an existing table. Useful when the
// owner constructs the table once and hands it to several components.
func NewWithTable(t *checksum.Table) *Codec {
	return &Codec{table: t}
}

// DecodeResult is the outcome of a successful Decode. It is a value type;
// the codec retains nothing between calls.
type DecodeResult struct {
	Plaintext        string
	ChecksumVerified bool
	FormatVersion    Version
}

// Encode maps plaintext to its checked (v2) ciphertext: every UTF-8 byte
// becomes four symbols, followed by the 16-symbol CRC-32 suffix. Empty
// input yields empty output. v2 is the sole output format; v1 exists only
// as a decode target.
func (c *Codec) Encode(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	if !utf8.ValidString(plaintext) {
		return "", errors.InvalidUTF8(errors.PhaseEncode, []byte(plaintext))
	}

	data := []byte(plaintext)
	buf := make([]byte, 0, len(data)*lookalike.SymbolsPerByte+checksum.SymbolLen)
	for _, b := range data {
		buf = lookalike.AppendByte(buf, b)
	}

	sum := c.table.Sum(data)
	return string(buf) + checksum.Symbols(sum), nil
}

// Decode recovers the plaintext from a v1 or v2 ciphertext. The format is
// detected from length alone; for v2 the CRC-32 suffix is verified and a
// mismatch is a hard failure. Empty input yields an empty result with
// FormatVersion VersionEmpty and no checksum claim.
func (c *Codec) Decode(ciphertext string) (DecodeResult, error) {
	if ciphertext == "" {
		return DecodeResult{FormatVersion: VersionEmpty}, nil
	}

	info := c.DetectFormat(ciphertext)
	if !info.Valid {
		err := errors.Format(errors.PhaseDecode, len(ciphertext))
		Logger().Debug("decode failed", zap.Error(err))
		return DecodeResult{}, err
	}
	Logger().Debug("format detected",
		zap.String("version", string(info.Version)),
		zap.Int("main_length", info.MainLength))

	if pos, r, found := validate.FirstInvalid(ciphertext); found {
		return DecodeResult{}, errors.InvalidSymbol(errors.PhaseDecode, pos, r)
	}

	var want uint32
	if info.HasChecksum {
		var err error
		want, err = checksum.ParseSymbols(ciphertext[info.MainLength:])
		if err != nil {
			return DecodeResult{}, err
		}
	}

	data, err := BytesFromSymbols(ciphertext[:info.MainLength])
	if err != nil {
		return DecodeResult{}, err
	}
	if !utf8.Valid(data) {
		return DecodeResult{}, errors.InvalidUTF8(errors.PhaseDecode, data)
	}

	verified := false
	if info.HasChecksum {
		got := c.table.Sum(data)
		if got != want {
			err := errors.ChecksumMismatch(want, got)
			Logger().Debug("decode failed", zap.Error(err))
			return DecodeResult{}, err
		}
		verified = true
	}

	return DecodeResult{
		Plaintext:        string(data),
		ChecksumVerified: verified,
		FormatVersion:    info.Version,
	}, nil
}

// Table exposes the codec's CRC-32 table for callers that need to compute
// checksums consistently with Encode, such as the stats summary.
func (c *Codec) Table() *checksum.Table {
	return c.table
}
