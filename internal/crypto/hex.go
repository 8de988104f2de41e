package crypto

import "encoding/hex"

// EncodeHex encodes bytes as lowercase hex.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex decodes hex in either case.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
