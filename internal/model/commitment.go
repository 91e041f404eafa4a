package model

import (
	"encoding/hex"
	"fmt"
)

// CommitmentSize is the digest length in bytes
const CommitmentSize = 32

// Commitment is a fixed-size one-way binding of a (choice, salt) pair.
// It is opaque: only the commitment engine produces and checks these.
type Commitment [CommitmentSize]byte

// ParseCommitment decodes a hex-encoded commitment digest
func ParseCommitment(s string) (Commitment, error) {
	var c Commitment
	b, err := hex.DecodeString(s)
	if err != nil {
		return Commitment{}, fmt.Errorf("%w: %s", ErrInvalidCommitment, err)
	}
	if len(b) != CommitmentSize {
		return Commitment{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidCommitment, len(b), CommitmentSize)
	}
	copy(c[:], b)
	return c, nil
}

// String returns the lowercase hex encoding of the digest
func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

// IsZero reports whether no commitment has been set
func (c Commitment) IsZero() bool {
	return c == Commitment{}
}

// MarshalText encodes the commitment as hex for JSON/storage
func (c Commitment) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a hex commitment
func (c *Commitment) UnmarshalText(text []byte) error {
	parsed, err := ParseCommitment(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
