// Package commitment implements the commit-reveal scheme at the heart of the
// game: a player locks in a choice by publishing a BLAKE3 digest of the
// choice and a fresh salt, and later proves the choice by disclosing both.
//
// The salt exists because the choice domain is tiny: without it, the three
// possible digests could simply be precomputed. Salt freshness is the
// caller's responsibility; the engine itself is a pure function of its
// inputs.
package commitment

import (
	"lukechampine.com/blake3"

	"github.com/rpsgame/rpsgame-go/internal/model"
)

// Commit derives the commitment digest for a (choice, salt) pair.
// The digest is BLAKE3-256 over the choice bytes followed by the salt bytes.
// Deterministic: the same inputs always produce the same digest.
func Commit(choice, salt string) model.Commitment {
	h := blake3.New(model.CommitmentSize, nil)
	_, _ = h.Write([]byte(choice))
	_, _ = h.Write([]byte(salt))

	var c model.Commitment
	copy(c[:], h.Sum(nil))
	return c
}

// Verify reports whether (choice, salt) hashes to exactly the given
// commitment. The comparison is byte-exact; there is no partial credit.
// The choice string is compared as supplied, so the caller must validate
// it against the game's domain separately.
func Verify(c model.Commitment, choice, salt string) bool {
	return Commit(choice, salt) == c
}
