package response

import "time"

// LoginResponse acknowledges the OTP send. OTP is only populated in debug
// mode; production delivery goes through an SMS gateway instead.
type LoginResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
