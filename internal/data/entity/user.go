package entity

type User struct {
	Base
	Name              string  `db:"name"`
	Phone             string  `db:"phone"`
	Email             *string `db:"email"`
	PreferredLanguage string  `db:"preferred_language"`
	WalletBalance     float64 `db:"wallet_balance"`
}
