package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/threema-gateway/client-go/internal/crypto"
)

// RecipientField names the form field that addresses a simple-mode message.
type RecipientField string

const (
	// FieldTo addresses the recipient by Threema ID.
	FieldTo RecipientField = "to"
	// FieldPhone addresses the recipient by phone number (E.164 digits).
	FieldPhone RecipientField = "phone"
	// FieldEmail addresses the recipient by email address.
	FieldEmail RecipientField = "email"
)

// SendSimple submits a plaintext message that the gateway encrypts on the
// sender's behalf. It returns the message ID.
func (c *Client) SendSimple(ctx context.Context, field RecipientField, recipient, text string) (string, error) {
	switch field {
	case FieldTo, FieldPhone, FieldEmail:
	default:
		return "", fmt.Errorf("unknown recipient field %q", field)
	}
	params := url.Values{}
	params.Set(string(field), recipient)
	params.Set("text", text)
	return c.Do(ctx, http.MethodPost, "/send_simple", params)
}

// SendE2E submits a message that was already encrypted for the recipient.
// It returns the message ID.
func (c *Client) SendE2E(ctx context.Context, to string, nonce crypto.Nonce, box []byte) (string, error) {
	params := url.Values{}
	params.Set("to", to)
	params.Set("nonce", nonce.Hex())
	params.Set("box", crypto.EncodeHex(box))
	return c.Do(ctx, http.MethodPost, "/send_e2e", params)
}

// LookupPhoneHash resolves a phone number hash to a Threema ID.
func (c *Client) LookupPhoneHash(ctx context.Context, hash [crypto.HashSize]byte) (string, error) {
	return c.lookup(ctx, "phone_hash", crypto.EncodeHex(hash[:]))
}

// LookupEmailHash resolves an email address hash to a Threema ID.
func (c *Client) LookupEmailHash(ctx context.Context, hash [crypto.HashSize]byte) (string, error) {
	return c.lookup(ctx, "email_hash", crypto.EncodeHex(hash[:]))
}

func (c *Client) lookup(ctx context.Context, kind, value string) (string, error) {
	path := fmt.Sprintf("/lookups/%s/%s", kind, url.PathEscape(value))
	return c.Do(ctx, http.MethodGet, path, nil)
}

// PublicKey fetches the public key of a Threema ID.
func (c *Client) PublicKey(ctx context.Context, id string) (crypto.PublicKey, error) {
	path := fmt.Sprintf("/pubkeys/%s", url.PathEscape(id))
	text, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	pub, err := crypto.DecodePublicKey(text)
	if err != nil {
		return crypto.PublicKey{}, fmt.Errorf("failed to decode public key of %s: %w", id, err)
	}
	return pub, nil
}

// Capabilities lists the message types a Threema ID can receive.
func (c *Client) Capabilities(ctx context.Context, id string) ([]string, error) {
	path := fmt.Sprintf("/capabilities/%s", url.PathEscape(id))
	text, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return []string{}, nil
	}
	caps := strings.Split(text, ",")
	for i := range caps {
		caps[i] = strings.TrimSpace(caps[i])
	}
	return caps, nil
}

// Credits returns the number of credits left on the account.
func (c *Client) Credits(ctx context.Context) (int, error) {
	text, err := c.Do(ctx, http.MethodGet, "/credits", nil)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("failed to parse credits %q: %w", text, err)
	}
	return n, nil
}
