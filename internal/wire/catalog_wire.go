package wire

import (
	"github.com/TejaVeta/Service-app/internal/adaptor"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The catalog is browsable without logging in

	// GET /api/categories - List categories, optional ?type=home|commercial
	r.Get("/api/categories", catalogHandler.GetCategories)

	// GET /api/categories/{id}/services - List services in a category
	r.Get("/api/categories/{id}/services", catalogHandler.GetCategoryServices)

	// GET /api/services/{id} - Service detail
	r.Get("/api/services/{id}", catalogHandler.GetService)
}
