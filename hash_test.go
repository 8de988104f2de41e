package gateway

import (
	"errors"
	"testing"
)

func TestHashFromFlags(t *testing.T) {
	tests := []struct {
		name         string
		email, phone string
		want         string
	}{
		{"email", "test@threema.ch", "", "1ea093239cc5f0e1b6ec81b866265b921f26dc4033025410063309f4d1a8ee2c"},
		{"phone", "", "41791234567", "ad398f4d7ebe63c6550a486cc6e07f9baa09bd9d8b3d8cb9d9be106d35a7fdbc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := HashFromFlags(tt.email, tt.phone)
			if err != nil {
				t.Fatalf("HashFromFlags() error = %v", err)
			}
			got, err := sel.Hex()
			if err != nil {
				t.Fatalf("Hex() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHashFromFlags_Exclusive(t *testing.T) {
	if _, err := HashFromFlags("", ""); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}
	if _, err := HashFromFlags("a@b.c", "123"); !errors.Is(err, ErrMultipleSelections) {
		t.Errorf("expected ErrMultipleSelections, got %v", err)
	}
}

func TestHash_Normalization(t *testing.T) {
	a, _ := Hash(" Foo@Bar.com ", HashEmail)
	b, _ := Hash("foo@bar.com", HashEmail)
	if a != b {
		t.Error("email hash is not normalized")
	}

	c, _ := Hash("+1 (555) 123-4567", HashPhone)
	d, _ := Hash("15551234567", HashPhone)
	if c != d {
		t.Error("phone hash is not normalized")
	}

	if _, err := Hash("x", HashType(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
