package crypto

import "errors"

var (
	// ErrInvalidKey is returned when key bytes or key text are malformed.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidInput is returned when a nonce or box has the wrong length.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecryptionFailed is returned when a box fails authentication.
	// It never says whether the box, the nonce or the keys were at fault.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncoding is returned when an authenticated payload is not valid UTF-8.
	ErrEncoding = errors.New("invalid text encoding")

	// ErrInvalidArgument is returned when a caller selects zero or several
	// mutually exclusive options.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPayload is returned when a decrypted payload has broken
	// framing or padding.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUnknownMessageType is returned for a payload type byte with no
	// registered decoder.
	ErrUnknownMessageType = errors.New("unknown message type")
)
