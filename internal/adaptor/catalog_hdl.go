package adaptor

import (
	"net/http"
	"strings"

	"github.com/TejaVeta/Service-app/internal/usecase"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCategories handles GET /api/categories?type=home|commercial (public)
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	typeFilter := r.URL.Query().Get("type")

	categories, err := h.service.GetCategories(r.Context(), typeFilter)
	if err != nil {
		h.handleServiceError(w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// GetCategoryServices handles GET /api/categories/{id}/services (public)
func (h *CatalogHandler) GetCategoryServices(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	services, err := h.service.GetServicesByCategory(r.Context(), categoryID)
	if err != nil {
		h.handleServiceError(w, err, "get category services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetService handles GET /api/services/{id} (public)
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	service, err := h.service.GetService(r.Context(), serviceID)
	if err != nil {
		h.handleServiceError(w, err, "get service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// handleServiceError maps service errors for catalog operations
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
