// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	alphanumeric     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
)

func randomFromCharset(length int, charset string) (string, error) {
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

func GenerateRandomString(length int) (string, error) {
	return randomFromCharset(length, alphanumeric)
}

// GenerateMeetCode returns a code shaped like a Google Meet room id (xxx-xxxx-xxx).
func GenerateMeetCode() (string, error) {
	parts := make([]string, 0, 3)
	for _, n := range []int{3, 4, 3} {
		part, err := randomFromCharset(n, lowercaseLetters)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "-"), nil
}

// GenerateOrderNumber returns a human-readable, collision-resistant order reference.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "SO-" + now.UTC().Format("20060102") + "-" + suffix
}
