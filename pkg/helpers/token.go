package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

// Opaque bearer tokens travel as "<token-id>|<secret>". Only the sha256
// of the secret half is stored, so a leaked token table cannot be
// replayed against the API.

var ErrMalformedToken = errors.New("malformed token")

// RandomHex returns n random bytes hex-encoded (2n characters).
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewTokenSecret returns a random secret and its stored hash.
func NewTokenSecret() (secret, hash string, err error) {
	secret, err = RandomHex(20)
	if err != nil {
		return "", "", err
	}
	return secret, HashTokenSecret(secret), nil
}

func HashTokenSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// ComposeToken builds the plaintext form shown once to the caller.
func ComposeToken(id, secret string) string {
	return id + "|" + secret
}

// SplitToken breaks a bearer credential back into id and secret.
func SplitToken(plain string) (id, secret string, err error) {
	id, secret, ok := strings.Cut(plain, "|")
	if !ok || id == "" || secret == "" {
		return "", "", ErrMalformedToken
	}
	return id, secret, nil
}

// VerifyTokenSecret compares in constant time against the stored hash.
func VerifyTokenSecret(storedHash, secret string) bool {
	candidate := HashTokenSecret(secret)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}
