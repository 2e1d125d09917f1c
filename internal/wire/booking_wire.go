package wire

import (
	"github.com/TejaVeta/Service-app/internal/adaptor"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/pkg/middleware"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/booking - Create a booking from the submitted services
		r.Post("/api/booking", bookingHandler.CreateBooking)

		// GET /api/booking/{id} - Booking detail (own bookings only)
		r.Get("/api/booking/{id}", bookingHandler.GetBooking)

		// GET /api/user/bookings - Booking history, newest first
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})
}
