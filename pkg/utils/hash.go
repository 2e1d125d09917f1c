package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashOTP hashes an OTP code before it is stored. Codes are short-lived but
// still secrets; they never hit the database in plaintext.
func HashOTP(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckOTPHash compares a submitted code against the stored hash
func CheckOTPHash(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
