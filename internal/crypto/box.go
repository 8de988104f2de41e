package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"
)

// Nonce is the single-use value that accompanies every box.
type Nonce [NonceSize]byte

// Hex returns the lowercase hex encoding of the nonce.
func (n Nonce) Hex() string { return EncodeHex(n[:]) }

// NewNonce reads a fresh nonce from the random source.
func NewNonce() (Nonce, error) {
	var n Nonce
	if _, err := io.ReadFull(random(), n[:]); err != nil {
		return n, fmt.Errorf("failed to read random nonce: %w", err)
	}
	return n, nil
}

// Encrypt boxes plaintext from the sender to the recipient under a fresh
// random nonce. The box is len(plaintext) + Overhead bytes long.
func Encrypt(plaintext []byte, senderPrivate PrivateKey, recipientPublic PublicKey) (Nonce, []byte, error) {
	nonce, err := NewNonce()
	if err != nil {
		return Nonce{}, nil, err
	}
	return nonce, EncryptWithNonce(plaintext, nonce, senderPrivate, recipientPublic), nil
}

// EncryptWithNonce boxes plaintext under the given nonce. The caller must
// never reuse a nonce for the same key pair.
func EncryptWithNonce(plaintext []byte, nonce Nonce, senderPrivate PrivateKey, recipientPublic PublicKey) []byte {
	priv := [KeySize]byte(senderPrivate)
	pub := [KeySize]byte(recipientPublic)
	n := [NonceSize]byte(nonce)
	out := box.Seal(nil, plaintext, &n, &pub, &priv)
	wipe(priv[:])
	return out
}

// Decrypt opens a box with the recipient's private key and the sender's
// public key. Any authentication failure yields ErrDecryptionFailed alone.
func Decrypt(ciphertext, nonce []byte, recipientPrivate PrivateKey, senderPublic PublicKey) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrInvalidInput, len(nonce), NonceSize)
	}
	if len(ciphertext) < Overhead {
		return nil, fmt.Errorf("%w: box is %d bytes, want at least %d", ErrInvalidInput, len(ciphertext), Overhead)
	}

	var n [NonceSize]byte
	copy(n[:], nonce)
	priv := [KeySize]byte(recipientPrivate)
	pub := [KeySize]byte(senderPublic)
	defer wipe(priv[:])

	plaintext, ok := box.Open(nil, ciphertext, &n, &pub, &priv)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}
