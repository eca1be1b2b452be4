package codec

import (
	"fmt"
	"unicode/utf8"
)

// EncodingStats summarizes an encode for display purposes. Advisory only.
type EncodingStats struct {
	PlaintextChars   int
	PlaintextBytes   int
	CiphertextLength int
	MainLength       int
	ChecksumLength   int
	ExpansionRatio   float64
	Checksum         string             // hex, empty when plaintext is empty
	Distribution     map[string]float64 // percent of ciphertext per symbol
}

// Stats computes the length/ratio/checksum/distribution summary for a
// plaintext and its ciphertext. It never fails: inputs that do not belong
// together still produce a summary, they just will not add up.
func (c *Codec) Stats(plaintext, ciphertext string) EncodingStats {
	s := EncodingStats{
		PlaintextChars:   utf8.RuneCountInString(plaintext),
		PlaintextBytes:   len(plaintext),
		CiphertextLength: len(ciphertext),
		Distribution:     distribution(ciphertext),
	}

	info := c.DetectFormat(ciphertext)
	if info.Valid {
		s.MainLength = info.MainLength
		s.ChecksumLength = info.ChecksumLength
	}

	if len(plaintext) > 0 {
		s.ExpansionRatio = float64(len(ciphertext)) / float64(len(plaintext))
		s.Checksum = fmt.Sprintf("0x%08X", c.table.Sum([]byte(plaintext)))
	}

	return s
}

func distribution(ciphertext string) map[string]float64 {
	dist := map[string]float64{"O": 0, "0": 0, "I": 0, "l": 0}
	if len(ciphertext) == 0 {
		return dist
	}
	for i := 0; i < len(ciphertext); i++ {
		key := string(ciphertext[i])
		if _, ok := dist[key]; ok {
			dist[key]++
		}
	}
	for k := range dist {
		dist[k] = dist[k] / float64(len(ciphertext)) * 100
	}
	return dist
}
