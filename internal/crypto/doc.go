// Package crypto provides the cryptographic core of the Threema Gateway
// protocol: Curve25519 key pairs, authenticated public-key encryption of
// message payloads, and the keyed hashes used for identity lookups.
//
// # Algorithm Suite
//
//   - X25519 (RFC 7748): key agreement between the sender's private key and
//     the recipient's public key. Public keys are derived from private keys by
//     base-point multiplication.
//
//   - XSalsa20-Poly1305 box: authenticated encryption of the framed payload
//     under the shared key and a 24-byte random nonce. A box is
//     len(plaintext) + 16 bytes long.
//
//   - HMAC-SHA-256: one-way keyed digest of a normalized email address or
//     phone number, keyed with one of two published constants.
//
// # Security Notes
//
// Nonces MUST be unique for each encryption with the same key pair. [Encrypt]
// draws a fresh nonce from crypto/rand on every call; [EncryptWithNonce]
// leaves that duty to the caller.
//
// [Decrypt] reports every authentication failure as [ErrDecryptionFailed]
// without saying whether the box, the nonce or a key was wrong. Do not wrap
// it with more detail.
//
// # Payload Framing
//
// Encrypted payloads are framed as a type byte, the body, and 1-255 bytes of
// PKCS#7-style padding (see [PackPayload]). Only text messages are built in;
// other types plug in through [RegisterPayloadType].
//
// # Key Encoding
//
// Keys travel as 64 lowercase hex characters ([PublicKey.Hex],
// [DecodePublicKey], [DecodePrivateKey]). Nonces and boxes travel as hex,
// joined by a newline when piped between processes ([FormatEnvelope]).
//
// All functions are safe for concurrent use.
package crypto
