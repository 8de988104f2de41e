package gateway

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"
	"github.com/threema-gateway/client-go/internal/api"
)

// Client is the HTTP Transport for the Threema Gateway. It is safe for
// concurrent use.
type Client struct {
	apiClient  *api.Client
	keys       *lru.Cache // nil when caching is disabled
	logger     zerolog.Logger
	privateKey *PrivateKey
}

var _ Transport = (*Client)(nil)

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(identity, secret string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithLogger(cfg.logger),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}
	return api.New(identity, secret, apiOpts...)
}

// New creates a client authenticating as the API identity (e.g. "*MYAPIID")
// with its secret.
func New(identity, secret string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:      DefaultBaseURL,
		keyCacheSize: defaultKeyCacheSize,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(identity, secret, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiClient:  apiClient,
		logger:     cfg.logger,
		privateKey: cfg.privateKey,
	}
	if cfg.keyCacheSize > 0 {
		c.keys, err = lru.New(cfg.keyCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create key cache: %w", err)
		}
	}
	return c, nil
}

// Identity returns the API identity the client sends as.
func (c *Client) Identity() string {
	return c.apiClient.Identity()
}

// Send submits a payload. Simple payloads may address any recipient kind;
// end-to-end payloads need a Threema ID.
func (c *Client) Send(ctx context.Context, to Recipient, payload OutboundPayload) (string, error) {
	if err := to.Validate(); err != nil {
		return "", err
	}

	switch p := payload.(type) {
	case SimplePayload:
		var field api.RecipientField
		switch to.Kind {
		case RecipientID:
			field = api.FieldTo
		case RecipientPhone:
			field = api.FieldPhone
		case RecipientEmail:
			field = api.FieldEmail
		}
		return c.apiClient.SendSimple(ctx, field, to.Value, p.Text)
	case E2EPayload:
		if to.Kind != RecipientID {
			return "", &MessageError{Message: fmt.Sprintf("end-to-end messages need an id recipient, got %s", to.Kind)}
		}
		return c.apiClient.SendE2E(ctx, to.Value, p.Nonce, p.Box)
	case nil:
		return "", &MessageError{Message: "payload is required"}
	default:
		return "", &MessageError{Message: fmt.Sprintf("unsupported payload %T", payload)}
	}
}

// LookupID resolves a criterion to a Threema ID. Email addresses and phone
// numbers are hashed before they are sent.
func (c *Client) LookupID(ctx context.Context, criterion LookupCriterion) (string, error) {
	if err := criterion.Validate(); err != nil {
		return "", err
	}

	switch criterion.Kind {
	case LookupByID:
		if _, err := c.LookupPublicKey(ctx, criterion.Value); err != nil {
			return "", err
		}
		return criterion.Value, nil
	case LookupByEmail, LookupByEmailHash:
		return c.apiClient.LookupEmailHash(ctx, criterion.contactHash())
	default:
		return c.apiClient.LookupPhoneHash(ctx, criterion.contactHash())
	}
}

// LookupPublicKey fetches the public key of a Threema ID, consulting the
// key cache first.
func (c *Client) LookupPublicKey(ctx context.Context, id string) (PublicKey, error) {
	if id == "" {
		return PublicKey{}, &MessageError{Message: "id is required"}
	}
	if c.keys != nil {
		if v, ok := c.keys.Get(id); ok {
			c.logger.Debug().Str("id", id).Msg("public key cache hit")
			return v.(PublicKey), nil
		}
	}

	key, err := c.apiClient.PublicKey(ctx, id)
	if err != nil {
		return PublicKey{}, err
	}
	if c.keys != nil {
		c.keys.Add(id, key)
	}
	return key, nil
}

// Capabilities lists the message types a Threema ID can receive, such as
// "text" or "image".
func (c *Client) Capabilities(ctx context.Context, id string) ([]string, error) {
	if id == "" {
		return nil, &MessageError{Message: "id is required"}
	}
	return c.apiClient.Capabilities(ctx, id)
}

// Credits returns the number of credits left on the account.
func (c *Client) Credits(ctx context.Context) (int, error) {
	return c.apiClient.Credits(ctx)
}

// SendSimpleText sends text in simple mode.
func (c *Client) SendSimpleText(ctx context.Context, to Recipient, text string) (string, error) {
	return SimpleTextMessage{Recipient: to, Text: text}.Send(ctx, c)
}

// SendE2EText encrypts text for id with the configured private key and
// sends it. It returns ErrMissingPrivateKey if none was configured.
func (c *Client) SendE2EText(ctx context.Context, id, text string) (string, error) {
	if c.privateKey == nil {
		return "", ErrMissingPrivateKey
	}
	return E2ETextMessage{ID: id, Text: text}.Send(ctx, c, *c.privateKey)
}
