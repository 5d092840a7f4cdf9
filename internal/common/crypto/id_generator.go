package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/constants"
)

type IDGenerator interface {
	NewID() (string, error)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ShortIDGenerator produces compact opaque tokens for entity ids.
// Uniqueness is probabilistic: 36^7 values per token.
type ShortIDGenerator struct {
	length int
}

func NewShortIDGenerator() *ShortIDGenerator {
	return &ShortIDGenerator{length: constants.GeneratedIDLength}
}

func (g *ShortIDGenerator) NewID() (string, error) {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf), nil
}
