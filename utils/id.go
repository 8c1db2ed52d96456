package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateAuctionCode returns a human-readable auction code of the form
// BID-YYYYMM-XXXXXXXX. The random suffix is not guaranteed unique; callers
// must check the store for collisions and regenerate.
func GenerateAuctionCode(now time.Time) string {
	var suffix strings.Builder
	for i := 0; i < 8; i++ {
		suffix.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return fmt.Sprintf("BID-%04d%02d-%s", now.Year(), int(now.Month()), suffix.String())
}
