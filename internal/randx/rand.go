// Package randx provides helpers for generating the random identifiers
// used throughout ListShare: short slugs that serve as entity IDs and
// longer opaque hex strings that serve as bearer tokens.
package randx

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// SlugMinLen and SlugMaxLen bound the length of generated slugs.
	SlugMinLen = 7
	SlugMaxLen = 10

	// TokenByteLen is the number of random bytes in a bearer token.
	// The resulting hex string is twice as long.
	TokenByteLen = 16
)

// MakeRandHexString generates a random hexadecimal string of the given
// size in bytes. The final string length is twice the size, since each
// byte expands to two hex characters.
//
// It returns an error if the random number generator fails.
func MakeRandHexString(size int) (string, error) {

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// NewToken generates an opaque bearer token.
func NewToken() (string, error) {
	return MakeRandHexString(TokenByteLen)
}

// NewSlug generates a short random identifier of SlugMinLen to
// SlugMaxLen lowercase alphanumeric characters.
//
// The per-character modulo introduces a slight bias towards the start
// of the alphabet; this is acceptable for identifiers, which only need
// to be unlikely to collide, not uniformly distributed.
func NewSlug() (string, error) {

	b := make([]byte, SlugMaxLen+1)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	n := SlugMinLen + int(b[0])%(SlugMaxLen-SlugMinLen+1)

	b = b[1 : n+1]
	for i := range b {
		b[i] = slugAlphabet[int(b[i])%len(slugAlphabet)]
	}

	return string(b), nil
}
