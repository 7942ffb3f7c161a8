package seal

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	// Any key length works; short keys are derived up to 32 bytes.
	if _, err := New([]byte("short")); err != nil {
		t.Fatalf("New with short key failed: %v", err)
	}
	if _, err := New([]byte("exactly-32-bytes-of-key-material")); err != nil {
		t.Fatalf("New with 32-byte key failed: %v", err)
	}
	if _, err := New([]byte("a much longer key than thirty-two bytes of material")); err != nil {
		t.Fatalf("New with long key failed: %v", err)
	}
	if _, err := New(nil); err != nil {
		t.Fatalf("New with nil key failed: %v", err)
	}
}

func TestSignedRoundTrip(t *testing.T) {
	s, err := New([]byte("test-key"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	original := map[string]string{
		"email":   "me@example.com",
		"message": "hello world",
		"empty":   "",
	}

	token, err := s.Sign(original)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if !strings.Contains(token, ".") {
		t.Errorf("signed token %q has no signature separator", token)
	}

	decoded, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if len(decoded) != len(original) {
		t.Fatalf("decoded %d values, want %d", len(decoded), len(original))
	}
	for k, want := range original {
		if decoded[k] != want {
			t.Errorf("decoded[%q] = %q, want %q", k, decoded[k], want)
		}
	}
}

func TestSealedRoundTrip(t *testing.T) {
	s, err := New([]byte("test-key"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	original := map[string]string{
		"name": "ünïcôde 日本語 🎉",
		"note": strings.Repeat("long value ", 50),
	}

	token, err := s.Seal(original)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if strings.Contains(token, ".") {
		t.Errorf("sealed token %q should not contain a separator", token)
	}

	decoded, err := s.Open(token)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for k, want := range original {
		if decoded[k] != want {
			t.Errorf("decoded[%q] = %q, want %q", k, decoded[k], want)
		}
	}
}

func TestEmptyMapRoundTrip(t *testing.T) {
	s, _ := New([]byte("test-key"))

	token, err := s.Sign(map[string]string{})
	if err != nil {
		t.Fatalf("Sign of empty map failed: %v", err)
	}
	decoded, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify of empty map failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("decoded %d values from empty map", len(decoded))
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	s, _ := New([]byte("test-key"))

	t1, _ := s.Sign(map[string]string{"v": "original"})
	t2, _ := s.Sign(map[string]string{"v": "forged"})

	body2 := strings.SplitN(t2, ".", 2)[0]
	sig1 := strings.SplitN(t1, ".", 2)[1]

	if _, err := s.Verify(body2 + "." + sig1); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Verify of forged body error = %v, want ErrSignatureInvalid", err)
	}
}

func TestVerifyRejectsBadFormat(t *testing.T) {
	s, _ := New([]byte("test-key"))

	tests := []struct {
		name  string
		token string
	}{
		{"no separator", "justonechunk"},
		{"bad body base64", "!!!.c2ln"},
		{"bad signature base64", "Ym9keQ.!!!"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Verify(tt.token); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Verify(%q) error = %v, want ErrInvalidFormat", tt.token, err)
			}
		})
	}
}

func TestOpenRejectsWrongKey(t *testing.T) {
	a, _ := New([]byte("key-a"))
	b, _ := New([]byte("key-b"))

	token, err := a.Seal(map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if _, err := b.Open(token); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("Open with wrong key error = %v, want ErrDecryptFailed", err)
	}
}

func TestOpenRejectsShortCiphertext(t *testing.T) {
	s, _ := New([]byte("test-key"))

	// Valid base64 but shorter than a GCM nonce.
	if _, err := s.Open("YWJj"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Open of short ciphertext error = %v, want ErrInvalidFormat", err)
	}
}

func TestCrossModeRejected(t *testing.T) {
	s, _ := New([]byte("test-key"))

	signed, _ := s.Sign(map[string]string{"k": "v"})
	if _, err := s.Open(signed); err == nil {
		t.Error("Open accepted a signed token")
	}

	sealed, _ := s.Seal(map[string]string{"k": "v"})
	if _, err := s.Verify(sealed); err == nil {
		t.Error("Verify accepted a sealed token")
	}
}

func TestSameKeySameSigner(t *testing.T) {
	// Two Sealers from the same key verify each other's tokens.
	a, _ := New([]byte("shared"))
	b, _ := New([]byte("shared"))

	token, _ := a.Sign(map[string]string{"k": "v"})
	decoded, err := b.Verify(token)
	if err != nil {
		t.Fatalf("cross-instance Verify failed: %v", err)
	}
	if decoded["k"] != "v" {
		t.Errorf("cross-instance decoded %v", decoded)
	}
}
