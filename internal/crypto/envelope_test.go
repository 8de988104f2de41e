package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormatParseEnvelope_RoundTrip(t *testing.T) {
	alicePriv, _ := mustKeyPair(t)
	_, bobPub := mustKeyPair(t)

	nonce, ciphertext, err := Encrypt([]byte("hello"), alicePriv, bobPub)
	if err != nil {
		t.Fatal(err)
	}

	s := FormatEnvelope(nonce, ciphertext)
	lines := strings.Split(s, "\n")
	if len(lines) != 2 || len(lines[0]) != 2*NonceSize {
		t.Fatalf("FormatEnvelope() = %q", s)
	}

	gotNonce, gotBox, err := ParseEnvelope(s + "\n")
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}
	if gotNonce != nonce {
		t.Error("nonce mismatch")
	}
	if !bytes.Equal(gotBox, ciphertext) {
		t.Error("box mismatch")
	}
}

func TestParseEnvelope_Invalid(t *testing.T) {
	validNonce := strings.Repeat("00", NonceSize)
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"one line", validNonce},
		{"three lines", validNonce + "\naa\nbb"},
		{"bad nonce hex", "zz\naabb"},
		{"short nonce", "0011\naabb"},
		{"bad box hex", validNonce + "\nxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseEnvelope(tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
