package entity

import (
	"time"
)

// OTP is a one-time login code for a phone number. Only the bcrypt hash of
// the code is stored.
type OTP struct {
	BaseSimple
	Phone     string    `db:"phone"`
	OTPHash   string    `db:"otp_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
}
