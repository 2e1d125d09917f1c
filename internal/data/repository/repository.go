package repository

import (
	"github.com/TejaVeta/Service-app/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	OTP      OTPRepository
	Category CategoryRepository
	Service  ServiceRepository
	Cart     CartRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		OTP:      NewOTPRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Service:  NewServiceRepository(db, log),
		Cart:     NewCartRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
