package arraygen

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by ParseKind for an unrecognised generator name.
var ErrUnknownKind = errors.New("arraygen: unknown array kind")

// Kind selects the shape of a generated array.
type Kind uint8

const (
	// Random draws uniform integers in [0, 100000).
	Random Kind = iota
	// Reversed is the strictly descending sequence n..1.
	Reversed
	// Nearly is almost sorted noise with a few local swaps.
	Nearly
	// FewUnique samples from a tiny pool of values (heavy duplicates).
	FewUnique
)

var kindNames = [...]string{
	Random:    "random",
	Reversed:  "reversed",
	Nearly:    "nearly",
	FewUnique: "fewunique",
}

// String returns the canonical lower-case name; it is also the token used
// when hashing the generator seed.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Random, Reversed, Nearly, FewUnique}
}

// ParseKind maps a canonical name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return Random, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler so kinds round-trip through
// YAML and JSON configs by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
