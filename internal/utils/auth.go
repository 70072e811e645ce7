package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// AnonymizeUserID produces a stable, non-reversible pseudonym for aggregate
// reports so organizational analytics never expose raw user identifiers.
func AnonymizeUserID(userID uuid.UUID, salt string) string {
	if len(salt) > 16 {
		salt = salt[:16]
	}
	sum := sha256.Sum256([]byte(userID.String() + salt))
	return hex.EncodeToString(sum[:])[:16]
}
