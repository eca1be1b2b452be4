package checksum

import (
	"errors"
	"hash/crc32"
	"strings"
	"testing"

	codecerrors "github.com/lookalike-codec/lookalike/errors"
)

func TestTable_MatchesStdlib(t *testing.T) {
	table := NewTable()

	inputs := [][]byte{
		nil,
		{},
		{0},
		{0xFF},
		[]byte("a"),
		[]byte("Hi"),
		[]byte("123456789"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		[]byte("こんにちは世界"),
		{0x00, 0x01, 0x02, 0xFD, 0xFE, 0xFF},
	}

	for _, in := range inputs {
		got := table.Sum(in)
		want := crc32.ChecksumIEEE(in)
		if got != want {
			t.Errorf("Sum(%q) = 0x%08X, want 0x%08X", in, got, want)
		}
	}
}

func TestTable_CheckVector(t *testing.T) {
	// Canonical CRC-32 check value.
	got := NewTable().Sum([]byte("123456789"))
	if got != 0xCBF43926 {
		t.Errorf("Sum(\"123456789\") = 0x%08X, want 0xCBF43926", got)
	}
}

func TestSymbols_RoundTrip(t *testing.T) {
	sums := []uint32{
		0x00000000,
		0xFFFFFFFF,
		0xCBF43926,
		0x12345678,
		0x80000001,
	}

	for _, sum := range sums {
		s := Symbols(sum)
		if len(s) != SymbolLen {
			t.Fatalf("Symbols(0x%08X) length = %d, want %d", sum, len(s), SymbolLen)
		}
		got, err := ParseSymbols(s)
		if err != nil {
			t.Fatalf("ParseSymbols(%q) error: %v", s, err)
		}
		if got != sum {
			t.Errorf("round trip 0x%08X -> %q -> 0x%08X", sum, s, got)
		}
	}
}

func TestSymbols_KnownValues(t *testing.T) {
	tests := []struct {
		sum  uint32
		want string
	}{
		// 0x00 -> OOOO per byte
		{0x00000000, "OOOOOOOOOOOOOOOO"},
		// 0xFF -> llll per byte
		{0xFFFFFFFF, "llllllllllllllll"},
		// 0x48 = 01 00 10 00 -> 0OIO, remaining bytes zero
		{0x48000000, "0OIOOOOOOOOOOOOO"},
		// byte order is big-endian
		{0x00000048, "OOOOOOOOOOOO0OIO"},
	}

	for _, tt := range tests {
		if got := Symbols(tt.sum); got != tt.want {
			t.Errorf("Symbols(0x%08X) = %q, want %q", tt.sum, got, tt.want)
		}
	}
}

func TestParseSymbols_BadLength(t *testing.T) {
	for _, s := range []string{"", "OOOO", strings.Repeat("O", 15), strings.Repeat("O", 17)} {
		_, err := ParseSymbols(s)
		if err == nil {
			t.Errorf("ParseSymbols(%q) expected error", s)
			continue
		}
		want := &codecerrors.Error{Phase: codecerrors.PhaseChecksum, Kind: codecerrors.KindBadLength}
		if !errors.Is(err, want) {
			t.Errorf("ParseSymbols(%q) error = %v, want bad_length", s, err)
		}
	}
}

func TestParseSymbols_InvalidSymbol(t *testing.T) {
	s := "OOOOOOOXOOOOOOOO" // X at position 8
	_, err := ParseSymbols(s)
	if err == nil {
		t.Fatal("expected error")
	}

	var ce *codecerrors.Error
	if !errors.As(err, &ce) {
		t.Fatalf("error type %T, want *errors.Error", err)
	}
	if ce.Kind != codecerrors.KindInvalidSymbol {
		t.Errorf("Kind = %q, want invalid_symbol", ce.Kind)
	}
	if ce.Position != 8 {
		t.Errorf("Position = %d, want 8", ce.Position)
	}
}
