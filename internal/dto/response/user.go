package response

import (
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"
)

type UserResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             *string   `json:"email,omitempty"`
	PreferredLanguage string    `json:"preferred_language"`
	WalletBalance     float64   `json:"wallet_balance"`
	CreatedAt         time.Time `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		Name:              user.Name,
		Phone:             user.Phone,
		Email:             user.Email,
		PreferredLanguage: user.PreferredLanguage,
		WalletBalance:     user.WalletBalance,
		CreatedAt:         user.CreatedAt,
	}
}
