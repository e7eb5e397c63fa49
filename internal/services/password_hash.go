package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordBytes = 72

var legacyDigestPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword accepts bcrypt hashes and the unsalted SHA-256 hex digests
// found in spreadsheets exported by the first version of the tracker.
func VerifyPassword(storedHash string, password string) bool {
	if legacyDigestPattern.MatchString(storedHash) {
		digest := LegacyPasswordDigest(password)
		return subtle.ConstantTimeCompare([]byte(digest), []byte(storedHash)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

func LegacyPasswordDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
