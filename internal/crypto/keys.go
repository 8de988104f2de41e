package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	"github.com/cloudflare/circl/dh/x25519"
)

// randReader is the random source used for keys, nonces and padding.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func random() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// PrivateKey is a Curve25519 secret scalar.
type PrivateKey [KeySize]byte

// PublicKey is a Curve25519 public point.
type PublicKey [KeySize]byte

// GenerateKeyPair creates a new random key pair.
func GenerateKeyPair() (PrivateKey, PublicKey, error) {
	var priv PrivateKey
	if _, err := io.ReadFull(random(), priv[:]); err != nil {
		return PrivateKey{}, PublicKey{}, fmt.Errorf("failed to read random key: %w", err)
	}
	return priv, priv.Public(), nil
}

// DerivePublicKey returns the public key belonging to the raw private key.
func DerivePublicKey(private []byte) (PublicKey, error) {
	priv, err := NewPrivateKey(private)
	if err != nil {
		return PublicKey{}, err
	}
	defer priv.Wipe()
	return priv.Public(), nil
}

// NewPrivateKey copies b into a PrivateKey.
func NewPrivateKey(b []byte) (PrivateKey, error) {
	var k PrivateKey
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: private key is %d bytes, want %d", ErrInvalidKey, len(b), KeySize)
	}
	copy(k[:], b)
	return k, nil
}

// NewPublicKey copies b into a PublicKey.
func NewPublicKey(b []byte) (PublicKey, error) {
	var k PublicKey
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidKey, len(b), KeySize)
	}
	copy(k[:], b)
	return k, nil
}

// Public derives the matching public key by scalar multiplication with the
// base point. The scalar is clamped internally; the stored bytes are not.
func (k PrivateKey) Public() PublicKey {
	secret := x25519.Key(k)
	var pub x25519.Key
	x25519.KeyGen(&pub, &secret)
	wipe(secret[:])
	return PublicKey(pub)
}

// Hex returns the lowercase hex encoding of the key.
func (k PrivateKey) Hex() string { return EncodeHex(k[:]) }

// String keeps key material out of logs and fmt output.
func (k PrivateKey) String() string { return "private:<redacted>" }

// Wipe zeroes the key. This is best-effort.
func (k *PrivateKey) Wipe() { wipe(k[:]) }

// Hex returns the lowercase hex encoding of the key.
func (k PublicKey) Hex() string { return EncodeHex(k[:]) }

func (k PublicKey) String() string { return k.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (k PublicKey) MarshalText() ([]byte, error) { return []byte(k.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	pub, err := DecodePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = pub
	return nil
}

// DecodePrivateKey parses a 64-character hex private key.
func DecodePrivateKey(s string) (PrivateKey, error) {
	b, err := decodeKeyHex(s)
	if err != nil {
		return PrivateKey{}, err
	}
	defer wipe(b)
	return NewPrivateKey(b)
}

// DecodePublicKey parses a 64-character hex public key.
func DecodePublicKey(s string) (PublicKey, error) {
	b, err := decodeKeyHex(s)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(b)
}

func decodeKeyHex(s string) ([]byte, error) {
	if len(s) != KeyHexLength {
		return nil, fmt.Errorf("%w: hex key is %d characters, want %d", ErrInvalidKey, len(s), KeyHexLength)
	}
	b, err := DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return b, nil
}

//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
