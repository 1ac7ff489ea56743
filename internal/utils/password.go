package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPasscode hashes a plaintext passcode using bcrypt.
func HashPasscode(passcode string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasscodeHash compares a plaintext passcode with a bcrypt hash.
func CheckPasscodeHash(passcode, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
