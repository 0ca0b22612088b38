package puzzle

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SeedSize is the length of a board seed in bytes.
const SeedSize = 32

// Seed is an opaque 32-byte value that deterministically drives board
// generation. Identical seed and shape always reproduce the same board,
// so an encoded seed is enough to share a puzzle.
type Seed [SeedSize]byte

// NewSeed draws a fresh seed from the system entropy source.
func NewSeed() (Seed, error) {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		return Seed{}, fmt.Errorf("puzzle: cannot read entropy: %w", err)
	}
	return s, nil
}

// String encodes the seed with the URL-safe base64 alphabet, unpadded.
func (s Seed) String() string {
	return base64.RawURLEncoding.EncodeToString(s[:])
}

// ParseSeed decodes a seed produced by Seed.String. Padded input is
// accepted too, so seeds copied from older encoders still round-trip.
func ParseSeed(encoded string) (Seed, error) {
	raw, err := base64.RawURLEncoding.DecodeString(trimPadding(encoded))
	if err != nil {
		return Seed{}, fmt.Errorf("puzzle: invalid seed encoding: %w", err)
	}
	if len(raw) != SeedSize {
		return Seed{}, fmt.Errorf("puzzle: seed is %d bytes, want %d", len(raw), SeedSize)
	}
	var s Seed
	copy(s[:], raw)
	return s, nil
}

func trimPadding(s string) string {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}
	return s
}
