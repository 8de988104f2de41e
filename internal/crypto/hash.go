package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strings"
)

// HashType selects which published HMAC key an identity hash uses.
type HashType int

const (
	// HashEmail hashes a normalized email address.
	HashEmail HashType = iota + 1
	// HashPhone hashes a normalized phone number.
	HashPhone
)

func (t HashType) String() string {
	switch t {
	case HashEmail:
		return "email"
	case HashPhone:
		return "phone"
	default:
		return fmt.Sprintf("HashType(%d)", int(t))
	}
}

// NormalizeEmail lowercases the address and trims surrounding whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone keeps only the ASCII digits of a phone number, which yields
// E.164 digits without the leading '+'.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for i := 0; i < len(phone); i++ {
		if c := phone[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// HashEmailAddress returns the lookup hash of an email address.
func HashEmailAddress(email string) [HashSize]byte {
	return keyedHash(EmailHashKey, NormalizeEmail(email))
}

// HashPhoneNumber returns the lookup hash of a phone number.
func HashPhoneNumber(phone string) [HashSize]byte {
	return keyedHash(PhoneHashKey, NormalizePhone(phone))
}

// Hash normalizes message for t and returns its lookup hash.
func Hash(message string, t HashType) ([HashSize]byte, error) {
	switch t {
	case HashEmail:
		return HashEmailAddress(message), nil
	case HashPhone:
		return HashPhoneNumber(message), nil
	default:
		return [HashSize]byte{}, fmt.Errorf("%w: unsupported hash type %v", ErrInvalidArgument, t)
	}
}

func keyedHash(key [HashSize]byte, message string) [HashSize]byte {
	mac := hmac.New(sha256.New, key[:])
	mac.Write([]byte(message))
	var out [HashSize]byte
	copy(out[:], mac.Sum(nil))
	return out
}
