// Package api provides the HTTP client for the Threema Gateway API. It
// handles authentication, form encoding and the mapping of gateway status
// codes to errors.
//
// # Authentication
//
// Every request carries the API identity and secret as the "from" and
// "secret" parameters: in the query string for GET, in the form-encoded body
// for POST. Errors never include the request URL so the secret cannot leak
// into logs.
//
// # Endpoints
//
//   - POST /send_simple: plaintext message, encrypted by the gateway.
//   - POST /send_e2e: pre-encrypted nonce and box.
//   - GET /lookups/{phone_hash,email_hash}/{hash}: ID lookup. Raw email
//     addresses and phone numbers are never sent.
//   - GET /pubkeys/{id}: public key of an ID.
//   - GET /capabilities/{id}: supported message types of an ID.
//   - GET /credits: remaining credits.
//
// Responses are text/plain. Requests are never retried.
//
// # Error Handling
//
// Non-200 responses come back as [*APIError] carrying status and body. Use
// errors.Is with the sentinels to branch on the status:
//
//   - [ErrInvalidRecipient]: 400
//   - [ErrUnauthorized]: 401
//   - [ErrNoCredits]: 402
//   - [ErrNotFound]: 404
//   - [ErrMessageTooLong]: 413
//   - [ErrServerError]: 5xx
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use.
package api
