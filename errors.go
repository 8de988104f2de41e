package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/threema-gateway/client-go/internal/api"
	"github.com/threema-gateway/client-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingIdentity is returned when no API identity is provided.
	ErrMissingIdentity = api.ErrMissingIdentity

	// ErrMissingSecret is returned when no API secret is provided.
	ErrMissingSecret = api.ErrMissingSecret

	// ErrMissingPrivateKey is returned when an end-to-end operation needs a
	// private key and the client has none.
	ErrMissingPrivateKey = errors.New("private key is required for end-to-end mode")

	// ErrInvalidKey is returned for malformed key bytes or key text.
	ErrInvalidKey = crypto.ErrInvalidKey

	// ErrInvalidInput is returned for a nonce or box of the wrong length.
	ErrInvalidInput = crypto.ErrInvalidInput

	// ErrDecryptionFailed is returned when a box fails authentication. It
	// deliberately carries no cause.
	ErrDecryptionFailed = crypto.ErrDecryptionFailed

	// ErrEncoding is returned when an authenticated payload is not valid UTF-8.
	ErrEncoding = crypto.ErrEncoding

	// ErrInvalidPayload is returned for decrypted payloads with broken framing.
	ErrInvalidPayload = crypto.ErrInvalidPayload

	// ErrUnknownMessageType is returned for unregistered payload types.
	ErrUnknownMessageType = crypto.ErrUnknownMessageType

	// ErrInvalidArgument is returned when a caller breaks a mutual-exclusivity
	// or required-field contract.
	ErrInvalidArgument = crypto.ErrInvalidArgument

	// ErrNoSelection is returned when none of a set of exclusive options is set.
	ErrNoSelection = errors.New("no option selected")

	// ErrMultipleSelections is returned when more than one exclusive option is set.
	ErrMultipleSelections = errors.New("multiple options selected")

	// ErrInvalidRecipient is returned for a 400 response.
	ErrInvalidRecipient = api.ErrInvalidRecipient

	// ErrUnauthorized is returned for a 401 response.
	ErrUnauthorized = api.ErrUnauthorized

	// ErrNoCredits is returned for a 402 response.
	ErrNoCredits = api.ErrNoCredits

	// ErrNotFound is returned when no identity matches a lookup or recipient.
	ErrNotFound = api.ErrNotFound

	// ErrMessageTooLong is returned for a 413 response.
	ErrMessageTooLong = api.ErrMessageTooLong

	// ErrServerError is returned for a 5xx response.
	ErrServerError = api.ErrServerError
)

// APIError is a non-success response from the gateway, carrying its status
// and body. It is returned unmodified from every gateway call.
type APIError = api.APIError

// NetworkError represents a network-level failure.
type NetworkError = api.NetworkError

// SelectorError reports a call that selected zero or several of a set of
// mutually exclusive options.
type SelectorError struct {
	// Selector names the option group, e.g. "recipient".
	Selector string
	// Options lists the allowed choices.
	Options []string
	// Selected lists the choices that were set.
	Selected []string
}

func (e *SelectorError) Error() string {
	if len(e.Selected) == 0 {
		return fmt.Sprintf("%s: none of %s selected", e.Selector, strings.Join(e.Options, ", "))
	}
	return fmt.Sprintf("%s: only one of %s may be selected, got %s",
		e.Selector, strings.Join(e.Options, ", "), strings.Join(e.Selected, ", "))
}

// Is implements errors.Is for sentinel error matching.
func (e *SelectorError) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return true
	case ErrNoSelection:
		return len(e.Selected) == 0
	case ErrMultipleSelections:
		return len(e.Selected) > 1
	}
	return false
}

// MessageError reports an incomplete message, such as a missing text or
// transport.
type MessageError struct {
	Message string
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("invalid message: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *MessageError) Is(target error) bool {
	return target == ErrInvalidArgument
}
