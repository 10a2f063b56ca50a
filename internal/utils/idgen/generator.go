package idgen

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// rejectionLimit is the largest multiple of len(idAlphabet) below 256.
// Bytes at or above it are discarded to keep the character distribution uniform.
const rejectionLimit = 252

// GenerateSecureID returns an identifier of the form "<prefix>_<suffix>" where
// the suffix consists of length characters drawn from [0-9a-z] using crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("prefix cannot be empty")
	}
	if length <= 0 {
		return "", fmt.Errorf("length must be positive, got %d", length)
	}

	suffix := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(suffix) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= rejectionLimit {
				continue
			}
			suffix = append(suffix, idAlphabet[int(b)%len(idAlphabet)])
			if len(suffix) == length {
				break
			}
		}
	}

	return prefix + "_" + string(suffix), nil
}

// ValidateIDFormat reports whether id has the expected prefix followed by an
// underscore and a non-empty [0-9a-z] suffix.
func ValidateIDFormat(id string, expectedPrefix string) bool {
	if id == "" || expectedPrefix == "" {
		return false
	}

	head := expectedPrefix + "_"
	if !strings.HasPrefix(id, head) {
		return false
	}

	suffix := id[len(head):]
	if suffix == "" {
		return false
	}
	for _, char := range suffix {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
			return false
		}
	}

	return true
}

// HashKey256 returns the hex-encoded HMAC-SHA256 of key under secret.
// It is used to fingerprint credentials in logs without storing them.
func HashKey256(key string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}
