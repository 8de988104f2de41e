package gateway

import "fmt"

// RecipientKind says how a recipient is addressed.
type RecipientKind int

const (
	// RecipientID addresses a Threema ID.
	RecipientID RecipientKind = iota + 1
	// RecipientPhone addresses a phone number.
	RecipientPhone
	// RecipientEmail addresses an email address.
	RecipientEmail
)

func (k RecipientKind) String() string {
	switch k {
	case RecipientID:
		return "id"
	case RecipientPhone:
		return "phone"
	case RecipientEmail:
		return "email"
	default:
		return fmt.Sprintf("RecipientKind(%d)", int(k))
	}
}

// Recipient addresses a message by exactly one of ID, phone or email.
// The zero value is invalid.
type Recipient struct {
	Kind  RecipientKind
	Value string
}

// ToID addresses a Threema ID.
func ToID(id string) Recipient { return Recipient{Kind: RecipientID, Value: id} }

// ToPhone addresses a phone number.
func ToPhone(phone string) Recipient { return Recipient{Kind: RecipientPhone, Value: phone} }

// ToEmail addresses an email address.
func ToEmail(email string) Recipient { return Recipient{Kind: RecipientEmail, Value: email} }

// RecipientFromFlags builds a Recipient from candidates of which exactly one
// must be non-empty.
func RecipientFromFlags(id, phone, email string) (Recipient, error) {
	c, err := pickOne("recipient",
		choice{name: "id", value: id},
		choice{name: "phone", value: phone},
		choice{name: "email", value: email},
	)
	if err != nil {
		return Recipient{}, err
	}
	switch c.name {
	case "id":
		return ToID(c.value), nil
	case "phone":
		return ToPhone(c.value), nil
	default:
		return ToEmail(c.value), nil
	}
}

// Validate reports whether r names a recipient.
func (r Recipient) Validate() error {
	switch r.Kind {
	case RecipientID, RecipientPhone, RecipientEmail:
	default:
		return &SelectorError{Selector: "recipient", Options: []string{"id", "phone", "email"}}
	}
	if r.Value == "" {
		return &MessageError{Message: fmt.Sprintf("empty %s recipient", r.Kind)}
	}
	return nil
}

func (r Recipient) String() string {
	return r.Kind.String() + ":" + r.Value
}

// LookupKind says what a LookupCriterion matches on.
type LookupKind int

const (
	// LookupByID checks that a Threema ID exists.
	LookupByID LookupKind = iota + 1
	// LookupByEmail resolves an email address.
	LookupByEmail
	// LookupByPhone resolves a phone number.
	LookupByPhone
	// LookupByEmailHash resolves a precomputed email hash.
	LookupByEmailHash
	// LookupByPhoneHash resolves a precomputed phone hash.
	LookupByPhoneHash
)

func (k LookupKind) String() string {
	switch k {
	case LookupByID:
		return "id"
	case LookupByEmail:
		return "email"
	case LookupByPhone:
		return "phone"
	case LookupByEmailHash:
		return "email_hash"
	case LookupByPhoneHash:
		return "phone_hash"
	default:
		return fmt.Sprintf("LookupKind(%d)", int(k))
	}
}

// LookupCriterion selects exactly one way to resolve a Threema ID.
type LookupCriterion struct {
	Kind  LookupKind
	Value string
	Hash  [32]byte
}

// ByID checks that id exists.
func ByID(id string) LookupCriterion { return LookupCriterion{Kind: LookupByID, Value: id} }

// ByEmail resolves an email address. Only its hash is sent to the gateway.
func ByEmail(email string) LookupCriterion {
	return LookupCriterion{Kind: LookupByEmail, Value: email}
}

// ByPhone resolves a phone number. Only its hash is sent to the gateway.
func ByPhone(phone string) LookupCriterion {
	return LookupCriterion{Kind: LookupByPhone, Value: phone}
}

// ByEmailHash resolves a precomputed email hash.
func ByEmailHash(hash [32]byte) LookupCriterion {
	return LookupCriterion{Kind: LookupByEmailHash, Hash: hash}
}

// ByPhoneHash resolves a precomputed phone hash.
func ByPhoneHash(hash [32]byte) LookupCriterion {
	return LookupCriterion{Kind: LookupByPhoneHash, Hash: hash}
}

// LookupFromFlags builds a LookupCriterion from candidates of which exactly
// one must be non-empty.
func LookupFromFlags(id, email, phone string) (LookupCriterion, error) {
	c, err := pickOne("lookup",
		choice{name: "id", value: id},
		choice{name: "email", value: email},
		choice{name: "phone", value: phone},
	)
	if err != nil {
		return LookupCriterion{}, err
	}
	switch c.name {
	case "id":
		return ByID(c.value), nil
	case "email":
		return ByEmail(c.value), nil
	default:
		return ByPhone(c.value), nil
	}
}

// Validate reports whether c names a lookup.
func (c LookupCriterion) Validate() error {
	switch c.Kind {
	case LookupByID, LookupByEmail, LookupByPhone:
		if c.Value == "" {
			return &MessageError{Message: fmt.Sprintf("empty %s lookup", c.Kind)}
		}
	case LookupByEmailHash, LookupByPhoneHash:
		if c.Hash == ([32]byte{}) {
			return &MessageError{Message: fmt.Sprintf("empty %s lookup", c.Kind)}
		}
	default:
		return &SelectorError{Selector: "lookup", Options: []string{"id", "email", "phone"}}
	}
	return nil
}

// contactHash returns the hash sent to the gateway for hashed lookups.
func (c LookupCriterion) contactHash() [32]byte {
	switch c.Kind {
	case LookupByEmail:
		return HashEmailAddress(c.Value)
	case LookupByPhone:
		return HashPhoneNumber(c.Value)
	default:
		return c.Hash
	}
}
