package gateway

import "github.com/threema-gateway/client-go/internal/crypto"

// PrivateKey is a Curve25519 private key. Its String method never reveals
// key material.
type PrivateKey = crypto.PrivateKey

// PublicKey is a Curve25519 public key.
type PublicKey = crypto.PublicKey

// Nonce is the 24-byte nonce of an encrypted box.
type Nonce = crypto.Nonce

// Key and box sizes.
const (
	KeySize   = crypto.KeySize
	NonceSize = crypto.NonceSize
	Overhead  = crypto.Overhead
)

// GenerateKeyPair creates a new random key pair.
func GenerateKeyPair() (PrivateKey, PublicKey, error) {
	return crypto.GenerateKeyPair()
}

// DerivePublicKey computes the public key belonging to a 32-byte private key.
func DerivePublicKey(private []byte) (PublicKey, error) {
	return crypto.DerivePublicKey(private)
}

// DecodePrivateKey parses a 64-character hex private key.
func DecodePrivateKey(s string) (PrivateKey, error) {
	return crypto.DecodePrivateKey(s)
}

// DecodePublicKey parses a 64-character hex public key.
func DecodePublicKey(s string) (PublicKey, error) {
	return crypto.DecodePublicKey(s)
}
