package request

type LoginRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
	OTP   string `json:"otp" validate:"required,len=6"`
}
