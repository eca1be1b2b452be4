package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lookalike-codec/lookalike/codec"
	"github.com/lookalike-codec/lookalike/trace"
	"github.com/lookalike-codec/lookalike/validate"
)

func main() {
	var (
		encodeText  = flag.String("encode", "", "Plaintext to encode")
		decodeText  = flag.String("decode", "", "Ciphertext to decode")
		checkText   = flag.String("check", "", "Ciphertext to validate")
		detectText  = flag.String("detect", "", "Ciphertext to run format detection on")
		showTrace   = flag.Bool("trace", false, "Print the per-stage transform trace")
		showStats   = flag.Bool("stats", false, "Print the encoding summary")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose codec logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		codec.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	c := codec.New()

	var err error
	switch {
	case *encodeText != "":
		err = runEncode(c, *encodeText, *showTrace, *showStats)
	case *decodeText != "":
		err = runDecode(c, *decodeText, *showTrace)
	case *checkText != "":
		runCheck(*checkText)
	case *detectText != "":
		runDetect(c, *detectText)
	default:
		fmt.Fprintln(os.Stderr, "Usage: lookalike -encode <text> [-trace] [-stats]")
		fmt.Fprintln(os.Stderr, "       lookalike -decode <ciphertext> [-trace]")
		fmt.Fprintln(os.Stderr, "       lookalike -check <ciphertext>")
		fmt.Fprintln(os.Stderr, "       lookalike -detect <ciphertext>")
		fmt.Fprintln(os.Stderr, "       lookalike -i  (interactive mode)")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runEncode(c *codec.Codec, plaintext string, withTrace, withStats bool) error {
	cipher, err := c.Encode(plaintext)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Println(cipher)

	if withTrace {
		fmt.Println()
		printTrace(trace.Encoding(c, plaintext))
	}
	if withStats {
		fmt.Println()
		printStats(c.Stats(plaintext, cipher))
	}
	return nil
}

func runDecode(c *codec.Codec, ciphertext string, withTrace bool) error {
	res, err := c.Decode(ciphertext)
	if err != nil {
		if withTrace {
			printTrace(trace.Decoding(c, ciphertext))
			fmt.Println()
		}
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Println(res.Plaintext)
	fmt.Printf("format: %s, checksum verified: %v\n", res.FormatVersion, res.ChecksumVerified)

	if withTrace {
		fmt.Println()
		printTrace(trace.Decoding(c, ciphertext))
	}
	return nil
}

func runCheck(ciphertext string) {
	r := validate.Ciphertext(ciphertext)
	if r.Valid {
		fmt.Println("valid")
	} else {
		fmt.Printf("invalid: %s\n", r.Message)
	}

	q := validate.Assess(ciphertext)
	fmt.Printf("quality: %d/100\n", q.Score)
	for _, issue := range q.Issues {
		fmt.Printf("  issue: %s\n", issue)
	}
	for _, rec := range q.Recommendations {
		fmt.Printf("  hint:  %s\n", rec)
	}
}

func runDetect(c *codec.Codec, ciphertext string) {
	info := c.DetectFormat(ciphertext)
	fmt.Printf("version: %s\n", info.Version)
	fmt.Printf("valid shape: %v\n", info.Valid)
	fmt.Printf("has checksum: %v\n", info.HasChecksum)
	fmt.Printf("main cipher: %d symbols, checksum: %d symbols\n", info.MainLength, info.ChecksumLength)
}

func printTrace(stages []trace.Stage) {
	for _, st := range stages {
		fmt.Printf("%d. %s\n", st.Index+1, st.Title)
		fmt.Printf("   %s\n", st.Description)
		if st.Input != "" {
			fmt.Printf("   in:  %s\n", st.Input)
		}
		if st.Output != "" {
			fmt.Printf("   out: %s\n", st.Output)
		}
		if st.Technical != "" {
			fmt.Printf("   (%s)\n", st.Technical)
		}
	}
}

func printStats(s codec.EncodingStats) {
	fmt.Printf("plaintext:  %d characters, %d bytes\n", s.PlaintextChars, s.PlaintextBytes)
	fmt.Printf("ciphertext: %d symbols (main %d + checksum %d)\n", s.CiphertextLength, s.MainLength, s.ChecksumLength)
	fmt.Printf("expansion:  %.1fx\n", s.ExpansionRatio)
	if s.Checksum != "" {
		fmt.Printf("checksum:   %s\n", s.Checksum)
	}
	fmt.Printf("distribution: O %.1f%%  0 %.1f%%  I %.1f%%  l %.1f%%\n",
		s.Distribution["O"], s.Distribution["0"], s.Distribution["I"], s.Distribution["l"])
}
