package crypto

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"
)

// MessageType is the type byte that prefixes every framed payload.
type MessageType byte

const (
	// MessageTypeText identifies a UTF-8 text message.
	MessageTypeText MessageType = 0x01
)

// MinPaddedSize is the smallest framed payload length produced by
// PackPayload. Short messages are padded up to it so their length leaks less.
const MinPaddedSize = 32

// Payload is a typed message body that can be framed for encryption.
type Payload interface {
	Type() MessageType
	MarshalBody() ([]byte, error)
}

// PayloadDecoder parses the body of a framed payload of one message type.
type PayloadDecoder func(body []byte) (Payload, error)

var (
	decodersMu sync.RWMutex
	decoders   = map[MessageType]PayloadDecoder{
		MessageTypeText: decodeTextPayload,
	}
)

// RegisterPayloadType installs the decoder for a message type, replacing any
// existing one. It is meant to be called from init functions.
func RegisterPayloadType(t MessageType, dec PayloadDecoder) {
	decodersMu.Lock()
	defer decodersMu.Unlock()
	decoders[t] = dec
}

func decoderFor(t MessageType) (PayloadDecoder, bool) {
	decodersMu.RLock()
	defer decodersMu.RUnlock()
	dec, ok := decoders[t]
	return dec, ok
}

// TextPayload is a plain text message.
type TextPayload struct {
	Text string
}

// Type implements Payload.
func (TextPayload) Type() MessageType { return MessageTypeText }

// MarshalBody implements Payload.
func (p TextPayload) MarshalBody() ([]byte, error) {
	if !utf8.ValidString(p.Text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrEncoding)
	}
	return []byte(p.Text), nil
}

func decodeTextPayload(body []byte) (Payload, error) {
	if !utf8.Valid(body) {
		return nil, ErrEncoding
	}
	return TextPayload{Text: string(body)}, nil
}

// PackPayload frames p as type byte || body || padding. The padding is
// 1 to MaxPadding bytes, each holding the padding length.
func PackPayload(p Payload) ([]byte, error) {
	body, err := p.MarshalBody()
	if err != nil {
		return nil, err
	}

	var r [1]byte
	if _, err := io.ReadFull(random(), r[:]); err != nil {
		return nil, fmt.Errorf("failed to read random padding: %w", err)
	}
	padLen := int(r[0])%MaxPadding + 1
	if n := 1 + len(body); n+padLen < MinPaddedSize {
		padLen = MinPaddedSize - n
	}

	out := make([]byte, 0, 1+len(body)+padLen)
	out = append(out, byte(p.Type()))
	out = append(out, body...)
	for i := 0; i < padLen; i++ {
		out = append(out, byte(padLen))
	}
	return out, nil
}

// UnpackPayload strips the padding from a framed payload and decodes it with
// the decoder registered for its type byte.
func UnpackPayload(data []byte) (Payload, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidPayload, len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > len(data)-1 {
		return nil, fmt.Errorf("%w: bad padding length %d", ErrInvalidPayload, padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent padding", ErrInvalidPayload)
		}
	}

	t := MessageType(data[0])
	dec, ok := decoderFor(t)
	if !ok {
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownMessageType, byte(t))
	}
	return dec(data[1 : len(data)-padLen])
}

// EncryptText frames and boxes a text message.
func EncryptText(text string, senderPrivate PrivateKey, recipientPublic PublicKey) (Nonce, []byte, error) {
	framed, err := PackPayload(TextPayload{Text: text})
	if err != nil {
		return Nonce{}, nil, err
	}
	return Encrypt(framed, senderPrivate, recipientPublic)
}

// DecryptText opens a box and returns the text message inside it.
func DecryptText(ciphertext, nonce []byte, recipientPrivate PrivateKey, senderPublic PublicKey) (string, error) {
	framed, err := Decrypt(ciphertext, nonce, recipientPrivate, senderPublic)
	if err != nil {
		return "", err
	}
	p, err := UnpackPayload(framed)
	if err != nil {
		return "", err
	}
	text, ok := p.(TextPayload)
	if !ok {
		return "", fmt.Errorf("%w: got type %#02x, want text", ErrInvalidPayload, byte(p.Type()))
	}
	return text.Text, nil
}
