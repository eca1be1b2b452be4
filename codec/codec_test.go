package codec

import (
	"errors"
	"hash/crc32"
	"strings"
	"testing"

	"github.com/lookalike-codec/lookalike/checksum"
	codecerrors "github.com/lookalike-codec/lookalike/errors"
)

func TestEncode_KnownVector(t *testing.T) {
	c := New()

	// "Hi" = [72 105] = 01001000 01101001
	//      = 01 00 10 00 01 10 10 01 = 0OIO0II0
	cipher, err := c.Encode("Hi")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	wantMain := "0OIO0II0"
	if !strings.HasPrefix(cipher, wantMain) {
		t.Errorf("main cipher = %q, want prefix %q", cipher, wantMain)
	}

	wantSuffix := checksum.Symbols(crc32.ChecksumIEEE([]byte("Hi")))
	if !strings.HasSuffix(cipher, wantSuffix) {
		t.Errorf("checksum suffix = %q, want %q", cipher[len(wantMain):], wantSuffix)
	}
	if len(cipher) != len(wantMain)+checksum.SymbolLen {
		t.Errorf("length = %d, want %d", len(cipher), len(wantMain)+checksum.SymbolLen)
	}
}

func TestEncode_Empty(t *testing.T) {
	cipher, err := New().Encode("")
	if err != nil {
		t.Fatalf("Encode(\"\") error: %v", err)
	}
	if cipher != "" {
		t.Errorf("Encode(\"\") = %q, want empty", cipher)
	}
}

func TestEncode_InvalidUTF8(t *testing.T) {
	_, err := New().Encode(string([]byte{0xFF, 0xFE}))
	if err == nil {
		t.Fatal("expected error for non-UTF-8 input")
	}
	want := &codecerrors.Error{Phase: codecerrors.PhaseEncode, Kind: codecerrors.KindInvalidUTF8}
	if !errors.Is(err, want) {
		t.Errorf("error = %v, want encode invalid_utf8", err)
	}
}

func TestEncode_AlphabetClosure(t *testing.T) {
	c := New()
	inputs := []string{"a", "Hello, World!", "こんにちは", "🎉🎊", "\x00\x01\x02", strings.Repeat("x", 200)}

	for _, in := range inputs {
		cipher, err := c.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", in, err)
		}
		for i := 0; i < len(cipher); i++ {
			if !strings.ContainsRune("O0Il", rune(cipher[i])) {
				t.Fatalf("Encode(%q) contains %q at %d", in, cipher[i], i)
			}
		}
	}
}

func TestEncode_LengthLaw(t *testing.T) {
	c := New()
	inputs := []string{"a", "Hi", "Hello", "日本語", "🎉", "mixed 日本 🎉 text"}

	for _, in := range inputs {
		cipher, err := c.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", in, err)
		}
		want := len(in)*4 + 16
		if len(cipher) != want {
			t.Errorf("len(Encode(%q)) = %d, want %d (utf-8 bytes %d)", in, len(cipher), want, len(in))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()
	inputs := []string{
		"a",
		"Hi",
		"Hello, World!",
		"line\nbreaks\tand spaces",
		"日本語のテキスト",
		"中文字符",
		"🎉 emoji 🚀 test 🌍",
		"mixed ASCII と 日本語 and 🎊",
		"\x00binary\x01ish\x7f",
		strings.Repeat("long input ", 50),
	}

	for _, in := range inputs {
		cipher, err := c.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", in, err)
		}
		res, err := c.Decode(cipher)
		if err != nil {
			t.Fatalf("Decode(Encode(%q)) error: %v", in, err)
		}
		if res.Plaintext != in {
			t.Errorf("round trip: got %q, want %q", res.Plaintext, in)
		}
		if !res.ChecksumVerified {
			t.Errorf("round trip %q: checksum not verified", in)
		}
		if res.FormatVersion != VersionV2 {
			t.Errorf("round trip %q: version = %q, want v2", in, res.FormatVersion)
		}
	}
}

func TestDecode_Empty(t *testing.T) {
	res, err := New().Decode("")
	if err != nil {
		t.Fatalf("Decode(\"\") error: %v", err)
	}
	if res.Plaintext != "" || res.ChecksumVerified || res.FormatVersion != VersionEmpty {
		t.Errorf("Decode(\"\") = %+v, want empty result with version %q", res, VersionEmpty)
	}
}

func TestDecode_V1BackwardCompat(t *testing.T) {
	c := New()

	// A bare main cipher with no checksum suffix is legacy v1.
	res, err := c.Decode("0OIO0II0")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if res.Plaintext != "Hi" {
		t.Errorf("Plaintext = %q, want %q", res.Plaintext, "Hi")
	}
	if res.ChecksumVerified {
		t.Error("v1 decode must report ChecksumVerified = false")
	}
	if res.FormatVersion != VersionV1 {
		t.Errorf("FormatVersion = %q, want v1", res.FormatVersion)
	}
}

func TestDecode_FormatError(t *testing.T) {
	c := New()
	want := &codecerrors.Error{Phase: codecerrors.PhaseDecode, Kind: codecerrors.KindFormat}

	for _, bad := range []string{"O", "OO", "OOO", "OOOOO", strings.Repeat("O", 17)} {
		_, err := c.Decode(bad)
		if err == nil {
			t.Errorf("Decode(%q) expected format error", bad)
			continue
		}
		if !errors.Is(err, want) {
			t.Errorf("Decode(%q) error = %v, want decode format", bad, err)
		}
	}
}

func TestDecode_InvalidSymbol(t *testing.T) {
	_, err := New().Decode("0OIX") // X at position 4
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
	if ce.Position != 4 {
		t.Errorf("Position = %d, want 4", ce.Position)
	}
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	c := New()
	cipher, err := c.Encode("Hi")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	// Flip the final main-cipher symbol 0 -> O: byte 105 ('i') becomes
	// 104 ('h'), still valid UTF-8, so the CRC check must catch it.
	corrupted := cipher[:7] + "O" + cipher[8:]
	_, err = c.Decode(corrupted)
	if err == nil {
		t.Fatal("expected checksum mismatch")
	}

	var ce *codecerrors.Error
	if !errors.As(err, &ce) {
		t.Fatalf("error type %T, want *errors.Error", err)
	}
	if ce.Kind != codecerrors.KindChecksumMismatch {
		t.Errorf("Kind = %q, want checksum_mismatch", ce.Kind)
	}
	if !strings.Contains(ce.Error(), "0x") {
		t.Errorf("message %q should carry hex checksum values", ce.Error())
	}
}

func TestDecode_SingleSymbolFlipsAlwaysFail(t *testing.T) {
	c := New()
	cipher, err := c.Encode("integrity")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	info := c.DetectFormat(cipher)
	for i := 0; i < info.MainLength; i++ {
		for _, alt := range []byte("O0Il") {
			if cipher[i] == alt {
				continue
			}
			mutated := cipher[:i] + string(alt) + cipher[i+1:]
			if _, err := c.Decode(mutated); err == nil {
				t.Errorf("flip at %d to %q decoded successfully", i, alt)
			}
		}
	}
}

func TestDecode_InvalidUTF8Diagnostics(t *testing.T) {
	// 0xFF = 11 11 11 11 = llll, an invalid UTF-8 byte on its own (v1).
	_, err := New().Decode("llll")
	if err == nil {
		t.Fatal("expected error")
	}

	var ce *codecerrors.Error
	if !errors.As(err, &ce) {
		t.Fatalf("error type %T, want *errors.Error", err)
	}
	if ce.Kind != codecerrors.KindInvalidUTF8 {
		t.Errorf("Kind = %q, want invalid_utf8", ce.Kind)
	}
	msg := ce.Error()
	if !strings.Contains(msg, "255") || !strings.Contains(msg, "ff") {
		t.Errorf("message %q should carry byte 255 in decimal and hex", msg)
	}
}

func TestDecode_ChecksumBeforePlaintextUnchanged(t *testing.T) {
	c := New()
	cipher, err := c.Encode("unchanged")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	// Corrupting the checksum suffix itself must also hard-fail.
	last := cipher[len(cipher)-1]
	var alt byte = 'O'
	if last == 'O' {
		alt = 'l'
	}
	corrupted := cipher[:len(cipher)-1] + string(alt)
	_, err = c.Decode(corrupted)
	if err == nil {
		t.Fatal("expected failure for corrupted checksum block")
	}
	want := &codecerrors.Error{Phase: codecerrors.PhaseDecode, Kind: codecerrors.KindChecksumMismatch}
	if !errors.Is(err, want) {
		t.Errorf("error = %v, want checksum_mismatch", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	c := New()
	done := make(chan error, 8)

	for g := 0; g < 8; g++ {
		go func(g int) {
			in := strings.Repeat("worker", g+1)
			for i := 0; i < 50; i++ {
				cipher, err := c.Encode(in)
				if err != nil {
					done <- err
					return
				}
				res, err := c.Decode(cipher)
				if err != nil {
					done <- err
					return
				}
				if res.Plaintext != in {
					done <- errors.New("round trip mismatch")
					return
				}
			}
			done <- nil
		}(g)
	}

	for g := 0; g < 8; g++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent use failed: %v", err)
		}
	}
}
