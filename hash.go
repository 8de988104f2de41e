package gateway

import "github.com/threema-gateway/client-go/internal/crypto"

// HashType selects the email or phone hash key.
type HashType = crypto.HashType

// Hash types.
const (
	HashEmail = crypto.HashEmail
	HashPhone = crypto.HashPhone
)

// HashSelector names exactly one contact to hash.
type HashSelector struct {
	Type  HashType
	Value string
}

// HashFromFlags builds a HashSelector from an email address and a phone
// number of which exactly one must be non-empty.
func HashFromFlags(email, phone string) (HashSelector, error) {
	c, err := pickOne("hash",
		choice{name: "email", value: email},
		choice{name: "phone", value: phone},
	)
	if err != nil {
		return HashSelector{}, err
	}
	if c.name == "email" {
		return HashSelector{Type: HashEmail, Value: c.value}, nil
	}
	return HashSelector{Type: HashPhone, Value: c.value}, nil
}

// Sum returns the identity hash of the selected contact.
func (s HashSelector) Sum() ([32]byte, error) {
	return crypto.Hash(s.Value, s.Type)
}

// Hex returns the identity hash as lowercase hex.
func (s HashSelector) Hex() (string, error) {
	sum, err := s.Sum()
	if err != nil {
		return "", err
	}
	return crypto.EncodeHex(sum[:]), nil
}

// Hash computes the HMAC-SHA256 identity hash of an email address or phone
// number after normalizing it.
func Hash(message string, t HashType) ([32]byte, error) {
	return crypto.Hash(message, t)
}

// HashEmailAddress returns the identity hash of an email address.
func HashEmailAddress(email string) [32]byte {
	return crypto.HashEmailAddress(email)
}

// HashPhoneNumber returns the identity hash of a phone number.
func HashPhoneNumber(phone string) [32]byte {
	return crypto.HashPhoneNumber(phone)
}
