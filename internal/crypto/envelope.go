package crypto

import (
	"fmt"
	"strings"
)

// FormatEnvelope renders a nonce and box as "<nonce hex>\n<box hex>".
func FormatEnvelope(nonce Nonce, ciphertext []byte) string {
	return nonce.Hex() + "\n" + EncodeHex(ciphertext)
}

// ParseEnvelope reverses FormatEnvelope. Surrounding whitespace on each line
// is ignored.
func ParseEnvelope(s string) (Nonce, []byte, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 2 {
		return Nonce{}, nil, fmt.Errorf("%w: want 2 lines (nonce, box), got %d", ErrInvalidInput, len(lines))
	}

	rawNonce, err := DecodeHex(strings.TrimSpace(lines[0]))
	if err != nil {
		return Nonce{}, nil, fmt.Errorf("%w: decode nonce: %v", ErrInvalidInput, err)
	}
	if len(rawNonce) != NonceSize {
		return Nonce{}, nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrInvalidInput, len(rawNonce), NonceSize)
	}

	ciphertext, err := DecodeHex(strings.TrimSpace(lines[1]))
	if err != nil {
		return Nonce{}, nil, fmt.Errorf("%w: decode box: %v", ErrInvalidInput, err)
	}

	var nonce Nonce
	copy(nonce[:], rawNonce)
	return nonce, ciphertext, nil
}
