package utils

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor for account passwords. Hashing only
// happens on register and login, never on a hot path.
const HashCost = 14

// HashPassword derives a bcrypt hash for storage; the plaintext is never
// persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
