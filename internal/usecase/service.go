package usecase

import (
	"github.com/TejaVeta/Service-app/internal/data/cache"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every usecase behind one constructor so the wiring layer
// takes a single dependency.
type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Cart    CartService
	Booking BookingService
	User    UserService
}

func NewService(repo *repository.Repository, catalogCache cache.CatalogCache, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo, catalogCache, log),
		Cart:    NewCartService(repo, log),
		Booking: NewBookingService(repo, config, log),
		User:    NewUserService(repo, log),
	}
}
