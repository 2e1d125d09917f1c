package adaptor

import (
	"github.com/TejaVeta/Service-app/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Cart    *CartHandler
	Booking *BookingHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, service.User, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Cart:    NewCartHandler(service.Cart, log),
		Booking: NewBookingHandler(service.Booking, log),
		User:    NewUserHandler(service.User, log),
	}
}
