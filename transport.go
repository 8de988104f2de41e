package gateway

import (
	"context"
	"fmt"
)

// Transport submits messages to the gateway and resolves identities.
// *Client is the HTTP implementation; tests substitute their own.
type Transport interface {
	// Send submits a payload and returns the gateway's message ID.
	Send(ctx context.Context, to Recipient, payload OutboundPayload) (string, error)
	// LookupID resolves a criterion to a Threema ID.
	LookupID(ctx context.Context, criterion LookupCriterion) (string, error)
	// LookupPublicKey fetches the public key of a Threema ID.
	LookupPublicKey(ctx context.Context, id string) (PublicKey, error)
}

// Mode is the delivery mode of an outbound payload.
type Mode int

const (
	// ModeSimple lets the gateway encrypt the text.
	ModeSimple Mode = iota + 1
	// ModeE2E carries a box encrypted by the client.
	ModeE2E
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeE2E:
		return "e2e"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// OutboundPayload is a message body ready for submission. It is either
// SimplePayload or E2EPayload.
type OutboundPayload interface {
	Mode() Mode
	outbound()
}

// SimplePayload is plaintext for simple mode.
type SimplePayload struct {
	Text string
}

// Mode returns ModeSimple.
func (SimplePayload) Mode() Mode { return ModeSimple }
func (SimplePayload) outbound()  {}

// E2EPayload is a box encrypted for the recipient.
type E2EPayload struct {
	Nonce Nonce
	Box   []byte
}

// Mode returns ModeE2E.
func (E2EPayload) Mode() Mode { return ModeE2E }
func (E2EPayload) outbound()  {}
