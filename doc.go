// Package gateway is a Go client for the Threema Gateway.
//
// It sends text messages in simple mode, where the gateway encrypts on the
// sender's behalf, and in end-to-end mode, where the client encrypts with
// NaCl box (Curve25519, XSalsa20, Poly1305) before anything leaves the
// process. It also resolves Threema IDs from email addresses and phone
// numbers, which are hashed locally first.
//
// Basic usage:
//
//	client, err := gateway.New("*MYAPIID", "secret",
//	    gateway.WithPrivateKey(privateKey))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Simple mode
//	id, err := client.SendSimpleText(ctx, gateway.ToPhone("41791234567"), "Hello")
//
//	// End-to-end mode
//	id, err = client.SendE2EText(ctx, "ECHOECHO", "Hello")
//
// Errors from the gateway are *APIError values that match sentinels such
// as ErrNotFound or ErrNoCredits with errors.Is.
package gateway
