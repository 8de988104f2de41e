package crypto

import "golang.org/x/crypto/nacl/box"

const (
	// KeySize is the size of a Curve25519 private or public key in bytes.
	KeySize = 32
	// KeyHexLength is the length of a hex-encoded key.
	KeyHexLength = 2 * KeySize

	// NonceSize is the size of a box nonce in bytes.
	NonceSize = 24
	// Overhead is the number of bytes the Poly1305 authenticator adds to a box.
	Overhead = box.Overhead

	// HashSize is the size of an identity hash digest in bytes.
	HashSize = 32

	// MaxPadding is the largest random padding appended to a framed payload.
	MaxPadding = 255
)

// Ciphersuite names the primitives used for end-to-end messages.
const Ciphersuite = "X25519:XSalsa20:Poly1305"

// EmailHashKey is the published HMAC-SHA256 key used to hash email addresses
// for identity lookups.
var EmailHashKey = [HashSize]byte{
	0x30, 0xa5, 0x50, 0x0f, 0xed, 0x97, 0x01, 0xfa,
	0x6d, 0xef, 0xdb, 0x61, 0x08, 0x41, 0x90, 0x0f,
	0xeb, 0xb8, 0xe4, 0x30, 0x88, 0x1f, 0x7a, 0xd8,
	0x16, 0x82, 0x62, 0x64, 0xec, 0x09, 0xba, 0xd7,
}

// PhoneHashKey is the published HMAC-SHA256 key used to hash phone numbers
// for identity lookups.
var PhoneHashKey = [HashSize]byte{
	0x85, 0xad, 0xf8, 0x22, 0x69, 0x53, 0xf3, 0xd9,
	0x6c, 0xfd, 0x5d, 0x09, 0xbf, 0x29, 0x55, 0x5e,
	0xb9, 0x55, 0xfc, 0xd8, 0xaa, 0x5e, 0xc4, 0xf9,
	0xfc, 0xd8, 0x69, 0xe2, 0x58, 0x37, 0x07, 0x23,
}
