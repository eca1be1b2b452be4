package trace

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lookalike-codec/lookalike/checksum"
	"github.com/lookalike-codec/lookalike/codec"
	"github.com/lookalike-codec/lookalike/errors"
)

// StageKind tags what a stage describes. Indices are assigned when the
// trace is built, so a format variant that skips a stage (v1 has no
// checksum verification) never produces index gaps.
type StageKind string

const (
	StageBytes    StageKind = "bytes"    // text ↔ UTF-8 bytes
	StageChecksum StageKind = "checksum" // CRC-32 computation
	StageBits     StageKind = "bits"     // byte ↔ bit expansion
	StageGroups   StageKind = "groups"   // bit string ↔ 2-bit groups
	StageSymbols  StageKind = "symbols"  // groups ↔ alphabet symbols
	StageAssemble StageKind = "assemble" // main cipher + checksum suffix
	StageSplit    StageKind = "split"    // format detection and suffix split
	StageText     StageKind = "text"     // bytes → recovered text
	StageVerify   StageKind = "verify"   // checksum verification outcome
	StageFailure  StageKind = "failure"  // the error that ended the trace
)

// Stage is one step of a transform trace. Produced fresh per call and
// owned by the caller; the codec keeps no trace state.
type Stage struct {
	Kind        StageKind
	Index       int
	Title       string
	Description string
	Input       string
	Output      string
	Technical   string
}

type builder struct {
	stages []Stage
}

func (b *builder) add(kind StageKind, title, description, input, output, technical string) {
	b.stages = append(b.stages, Stage{
		Kind:        kind,
		Index:       len(b.stages),
		Title:       title,
		Description: description,
		Input:       input,
		Output:      output,
		Technical:   technical,
	})
}

// failure returns the single-element trace produced when any step fails:
// index 0, the error message as output. Callers always get something
// renderable.
func failure(err error) []Stage {
	return []Stage{{
		Kind:        StageFailure,
		Index:       0,
		Title:       "Transform failed",
		Description: "The transform could not be completed.",
		Output:      err.Error(),
	}}
}

// Encoding produces the ordered stage trace for encoding plaintext. It
// reuses the codec's own transform helpers, so the trace cannot drift
// from what Encode actually does. Never fails; errors become a single
// failure stage.
func Encoding(c *codec.Codec, plaintext string) []Stage {
	if plaintext == "" {
		return failure(errors.InvalidInput(errors.PhaseEncode, "nothing to encode: plaintext is empty"))
	}
	if !utf8.ValidString(plaintext) {
		return failure(errors.InvalidUTF8(errors.PhaseEncode, []byte(plaintext)))
	}

	data := []byte(plaintext)
	sum := c.Table().Sum(data)
	sumSymbols := checksum.Symbols(sum)
	bits := codec.BitString(data)
	groups := codec.Groups(bits)
	main := codec.SymbolsFromBits(bits)

	var b builder
	b.add(StageBytes,
		"Text to bytes",
		"The plaintext is encoded as UTF-8, one or more bytes per character.",
		plaintext,
		fmt.Sprint(data),
		fmt.Sprintf("%d characters → %d bytes", utf8.RuneCountInString(plaintext), len(data)))
	b.add(StageChecksum,
		"Checksum",
		"A CRC-32 checksum of the bytes protects the result against transcription errors.",
		fmt.Sprint(data),
		fmt.Sprintf("0x%08X → %s", sum, sumSymbols),
		"IEEE 802.3 polynomial 0xEDB88320, 16-symbol wire form")
	b.add(StageBits,
		"Bytes to bits",
		"Each byte becomes its 8-bit binary form, most significant bit first.",
		fmt.Sprint(data),
		bits,
		fmt.Sprintf("%d bytes → %d bits", len(data), len(bits)))
	b.add(StageGroups,
		"Bit grouping",
		"The bit string is split into 2-bit groups, left to right.",
		bits,
		strings.Join(groups, " "),
		fmt.Sprintf("%d groups", len(groups)))
	b.add(StageSymbols,
		"Symbol mapping",
		"Every 2-bit group maps to one symbol: 00→O, 01→0, 10→I, 11→l.",
		strings.Join(groups, " "),
		main,
		"4 symbols per input byte")
	b.add(StageAssemble,
		"Assemble ciphertext",
		"The checksum symbols are appended to the main cipher.",
		main+" + "+sumSymbols,
		main+sumSymbols,
		fmt.Sprintf("main %d + checksum %d = %d symbols", len(main), len(sumSymbols), len(main)+len(sumSymbols)))
	return b.stages
}

// Decoding produces the ordered stage trace for decoding ciphertext.
// The verification stage appears only for the checked (v2) format. Never
// fails; errors become a single failure stage.
func Decoding(c *codec.Codec, ciphertext string) []Stage {
	if ciphertext == "" {
		return failure(errors.InvalidInput(errors.PhaseDecode, "nothing to decode: ciphertext is empty"))
	}

	info := c.DetectFormat(ciphertext)
	if !info.Valid {
		return failure(errors.Format(errors.PhaseDecode, len(ciphertext)))
	}

	main := ciphertext[:info.MainLength]
	suffix := ciphertext[info.MainLength:]

	var want uint32
	if info.HasChecksum {
		var err error
		want, err = checksum.ParseSymbols(suffix)
		if err != nil {
			return failure(err)
		}
	}

	data, err := codec.BytesFromSymbols(main)
	if err != nil {
		return failure(err)
	}
	if !utf8.Valid(data) {
		return failure(errors.InvalidUTF8(errors.PhaseDecode, data))
	}
	bits := codec.BitString(data)
	groups := codec.Groups(bits)

	var b builder
	splitOut := fmt.Sprintf("format %s, main cipher %d symbols", info.Version, info.MainLength)
	if info.HasChecksum {
		splitOut += fmt.Sprintf(", checksum %d symbols", info.ChecksumLength)
	}
	b.add(StageSplit,
		"Format detection",
		"The wire format is inferred from the length alone and any checksum suffix is split off.",
		ciphertext,
		splitOut,
		"v2 preferred whenever length > 16 and (length-16) is a multiple of 4")
	b.add(StageGroups,
		"Symbols to groups",
		"Every symbol maps back to its 2-bit group: O→00, 0→01, I→10, l→11.",
		main,
		strings.Join(groups, " "),
		fmt.Sprintf("%d symbols → %d groups", len(main), len(groups)))
	b.add(StageBits,
		"Groups to bits",
		"The groups concatenate back into a bit string.",
		strings.Join(groups, " "),
		bits,
		fmt.Sprintf("%d bits", len(bits)))
	b.add(StageBytes,
		"Bits to bytes",
		"The bit string is split into 8-bit bytes; an incomplete trailing group is dropped.",
		bits,
		fmt.Sprint(data),
		fmt.Sprintf("%d bytes", len(data)))
	b.add(StageText,
		"Bytes to text",
		"The bytes decode strictly as UTF-8.",
		fmt.Sprint(data),
		string(data),
		fmt.Sprintf("%d bytes → %d characters", len(data), utf8.RuneCount(data)))
	if info.HasChecksum {
		got := c.Table().Sum(data)
		outcome := fmt.Sprintf("verified: 0x%08X", got)
		if got != want {
			outcome = fmt.Sprintf("MISMATCH: expected 0x%08X, actual 0x%08X", want, got)
		}
		b.add(StageVerify,
			"Checksum verification",
			"The CRC-32 of the recovered bytes is compared against the transmitted checksum.",
			suffix,
			outcome,
			"a mismatch makes the decode a hard failure")
	}
	return b.stages
}
