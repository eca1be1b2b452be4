package validate

import (
	"fmt"
)

// Quality is an advisory score for a ciphertext. It never blocks encoding
// or decoding; only the formulas themselves are stable.
type Quality struct {
	Score           int // 0..100
	Issues          []string
	Recommendations []string
}

// Deductions applied by Assess.
const (
	varianceThreshold  = 300
	variancePenalty    = 20
	shortLength        = 8
	shortPenalty       = 10
	patternPenalty     = 15
	runLength          = 4
	alternatingMax     = 0.30
)

// Assess scores a ciphertext starting from 100: -20 when the per-symbol
// percentage variance exceeds 300, -10 when shorter than 8 symbols, -15
// when an obvious pattern shows (a run of four identical symbols, or
// alternating pairs covering more than 30% of the string).
func Assess(s string) Quality {
	q := Quality{Score: 100}
	if s == "" {
		return q
	}

	if v := distributionVariance(s); v > varianceThreshold {
		q.Score -= variancePenalty
		q.Issues = append(q.Issues, fmt.Sprintf("uneven symbol distribution (variance %.1f)", v))
		q.Recommendations = append(q.Recommendations,
			"a heavily skewed distribution usually means the ciphertext was truncated or edited")
	}

	if len(s) < shortLength {
		q.Score -= shortPenalty
		q.Issues = append(q.Issues, fmt.Sprintf("ciphertext is very short (%d symbols)", len(s)))
		q.Recommendations = append(q.Recommendations,
			"short ciphertexts are easy to mistranscribe; keep the checksum suffix intact")
	}

	if hasRun(s, runLength) || alternatingCoverage(s) > alternatingMax {
		q.Score -= patternPenalty
		q.Issues = append(q.Issues, "obvious repetition pattern detected")
		q.Recommendations = append(q.Recommendations,
			"repetitive ciphertext makes the visual confusion easier to see through")
	}

	return q
}

// distributionVariance computes the variance of the four symbol
// percentages over the whole string.
func distributionVariance(s string) float64 {
	var counts [4]int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'O':
			counts[0]++
		case '0':
			counts[1]++
		case 'I':
			counts[2]++
		case 'l':
			counts[3]++
		}
	}

	var pcts [4]float64
	mean := 0.0
	for i, n := range counts {
		pcts[i] = float64(n) / float64(len(s)) * 100
		mean += pcts[i]
	}
	mean /= 4

	variance := 0.0
	for _, p := range pcts {
		d := p - mean
		variance += d * d
	}
	return variance / 4
}

// hasRun reports a run of n or more identical consecutive symbols.
func hasRun(s string, n int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// alternatingCoverage returns the fraction of the string covered by
// ABAB-style windows (two distinct symbols alternating over four
// positions).
func alternatingCoverage(s string) float64 {
	if len(s) < 4 {
		return 0
	}
	covered := make([]bool, len(s))
	for i := 0; i+3 < len(s); i++ {
		if s[i] != s[i+1] && s[i] == s[i+2] && s[i+1] == s[i+3] {
			for j := i; j < i+4; j++ {
				covered[j] = true
			}
		}
	}
	n := 0
	for _, c := range covered {
		if c {
			n++
		}
	}
	return float64(n) / float64(len(s))
}
