// Package validate provides ciphertext sanity checks and advisory quality
// heuristics.
//
// Ciphertext performs the hard alphabet/emptiness check used before
// decoding. Assess produces a non-normative 0..100 quality score with
// human-readable issues and recommendations; it never blocks an encode or
// decode.
package validate
