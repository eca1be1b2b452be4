// Package lookalike implements a reversible text-obfuscation codec over the
// four visually confusable characters O, 0, I and l.
//
// The codec maps arbitrary UTF-8 text to a ciphertext drawn from that
// 4-symbol alphabet and back. It is not cryptography: it offers visual
// confusion plus an optional CRC-32 integrity suffix, nothing more.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	lookalike/        Root package with the symbol alphabet tables
//	├── checksum/     CRC-32 engine and its 16-symbol wire form
//	├── codec/        Bit-packing transform, format detection, decoding
//	├── validate/     Ciphertext alphabet checks and quality heuristics
//	├── trace/        Human-inspectable per-stage transform traces
//	└── errors/       Structured error types for diagnostics
//
// # Wire Formats
//
// One UTF-8 byte becomes four symbols (8 bits, 2 bits per symbol). Two
// formats share the alphabet:
//
//	v1 (legacy)   pure symbol sequence, length a positive multiple of 4
//	v2 (checked)  main cipher followed by 16 symbols holding a CRC-32
//
// Format is inferred from length alone. v2 is preferred whenever len > 16
// and (len-16) is a multiple of 4; the ambiguity this creates for some
// lengths is deliberate and kept for backward compatibility.
//
// # Quick Start
//
//	c := codec.New()
//
//	cipher, err := c.Encode("Hi")
//	// "0OIO0II0" followed by 16 checksum symbols
//
//	res, err := c.Decode(cipher)
//	fmt.Println(res.Plaintext)        // "Hi"
//	fmt.Println(res.ChecksumVerified) // true
//
// # Thread Safety
//
// The codec is stateless apart from its CRC-32 table, which is immutable
// after construction. All operations are safe for concurrent use without
// coordination.
package lookalike
