package gateway

import (
	"context"

	"github.com/threema-gateway/client-go/internal/crypto"
)

// Payload is a message body framed by a type byte. TextPayload is the
// built-in case; RegisterPayloadType adds others.
type Payload = crypto.Payload

// PayloadDecoder parses the body of a registered payload type.
type PayloadDecoder = crypto.PayloadDecoder

// MessageType identifies a payload inside a box.
type MessageType = crypto.MessageType

// TextPayload is a UTF-8 text message.
type TextPayload = crypto.TextPayload

// MessageTypeText is the type byte of text messages.
const MessageTypeText = crypto.MessageTypeText

// RegisterPayloadType installs a decoder for a payload type.
func RegisterPayloadType(t MessageType, dec PayloadDecoder) {
	crypto.RegisterPayloadType(t, dec)
}

// PackPayload frames a payload with its type byte and random padding.
func PackPayload(p Payload) ([]byte, error) { return crypto.PackPayload(p) }

// UnpackPayload strips the framing and decodes the payload.
func UnpackPayload(data []byte) (Payload, error) { return crypto.UnpackPayload(data) }

// Encrypt boxes an already framed payload for the recipient under a fresh
// random nonce.
func Encrypt(plaintext []byte, senderPrivate PrivateKey, recipientPublic PublicKey) (Nonce, []byte, error) {
	return crypto.Encrypt(plaintext, senderPrivate, recipientPublic)
}

// Decrypt opens a box. Any authentication failure yields ErrDecryptionFailed.
func Decrypt(box, nonce []byte, recipientPrivate PrivateKey, senderPublic PublicKey) ([]byte, error) {
	return crypto.Decrypt(box, nonce, recipientPrivate, senderPublic)
}

// EncryptText frames and boxes a text message.
func EncryptText(text string, senderPrivate PrivateKey, recipientPublic PublicKey) (Nonce, []byte, error) {
	return crypto.EncryptText(text, senderPrivate, recipientPublic)
}

// FormatEnvelope renders a nonce and box as "<nonce hex>\n<box hex>".
func FormatEnvelope(nonce Nonce, box []byte) string { return crypto.FormatEnvelope(nonce, box) }

// ParseEnvelope parses the output of FormatEnvelope.
func ParseEnvelope(s string) (Nonce, []byte, error) { return crypto.ParseEnvelope(s) }

// SimpleTextMessage is a text the gateway encrypts for the recipient.
type SimpleTextMessage struct {
	Recipient Recipient
	Text      string
}

// NewSimpleTextMessage builds a message from recipient candidates of which
// exactly one must be non-empty.
func NewSimpleTextMessage(id, phone, email, text string) (SimpleTextMessage, error) {
	to, err := RecipientFromFlags(id, phone, email)
	if err != nil {
		return SimpleTextMessage{}, err
	}
	return SimpleTextMessage{Recipient: to, Text: text}, nil
}

// Validate checks that the message has a recipient and text.
func (m SimpleTextMessage) Validate() error {
	if err := m.Recipient.Validate(); err != nil {
		return err
	}
	if m.Text == "" {
		return &MessageError{Message: "text is required"}
	}
	return nil
}

// Send validates the message and submits it. Transport errors are returned
// unmodified.
func (m SimpleTextMessage) Send(ctx context.Context, t Transport) (string, error) {
	if t == nil {
		return "", &MessageError{Message: "transport is required"}
	}
	if err := m.Validate(); err != nil {
		return "", err
	}
	return t.Send(ctx, m.Recipient, SimplePayload{Text: m.Text})
}

// E2ETextMessage is a text encrypted by the client for a Threema ID.
type E2ETextMessage struct {
	ID   string
	Text string
	// RecipientKey is fetched from the transport when nil.
	RecipientKey *PublicKey
}

// Validate checks that the message has a recipient and text.
func (m E2ETextMessage) Validate() error {
	if m.ID == "" {
		return &MessageError{Message: "id is required"}
	}
	if m.Text == "" {
		return &MessageError{Message: "text is required"}
	}
	return nil
}

// Send resolves the recipient key if needed, encrypts the text with the
// sender's private key and submits the box. Encryption finishes before the
// message is handed to the transport.
func (m E2ETextMessage) Send(ctx context.Context, t Transport, senderPrivate PrivateKey) (string, error) {
	if t == nil {
		return "", &MessageError{Message: "transport is required"}
	}
	if err := m.Validate(); err != nil {
		return "", err
	}

	var recipientKey PublicKey
	if m.RecipientKey != nil {
		recipientKey = *m.RecipientKey
	} else {
		key, err := t.LookupPublicKey(ctx, m.ID)
		if err != nil {
			return "", err
		}
		recipientKey = key
	}

	nonce, box, err := crypto.EncryptText(m.Text, senderPrivate, recipientKey)
	if err != nil {
		return "", err
	}
	return t.Send(ctx, ToID(m.ID), E2EPayload{Nonce: nonce, Box: box})
}

// ReceiveText decrypts a text message. Nothing is returned unless the box
// authenticates and holds valid UTF-8 text.
func ReceiveText(nonce, box []byte, recipientPrivate PrivateKey, senderPublic PublicKey) (string, error) {
	return crypto.DecryptText(box, nonce, recipientPrivate, senderPublic)
}

// DecryptText is ReceiveText with the box argument first.
func DecryptText(box, nonce []byte, recipientPrivate PrivateKey, senderPublic PublicKey) (string, error) {
	return crypto.DecryptText(box, nonce, recipientPrivate, senderPublic)
}
