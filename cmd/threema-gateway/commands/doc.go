// Package commands defines the threema-gateway CLI.
//
// Commands
//
//   - generate      Create a key pair and write it to two files
//   - derive        Print the public key of a private key file
//   - encrypt       Encrypt stdin for a recipient, print "nonce\nbox"
//   - decrypt       Read "nonce\nbox" from stdin, print the text
//   - hash          Print the identity hash of an email or phone number
//   - send_simple   Send stdin as a simple-mode text message
//   - send_e2e      Encrypt stdin and send it as an end-to-end message
//   - lookup        Resolve a Threema ID by id, email or phone
//   - capabilities  List the capabilities of a Threema ID
//   - credits       Print the remaining credits
//   - version       Print the client version
//
// # Credentials
//
// Gateway commands read the API identity and secret from --from and
// --secret, falling back to THREEMA_GATEWAY_ID and THREEMA_GATEWAY_SECRET.
// Those variables may also come from a .env file (see --env-file).
//
// Exclusive selectors (--email/--phone for hash, --id/--email/--phone for
// lookup, --to/--email/--phone for send_simple) are checked before any key
// is read or request is made.
package commands
