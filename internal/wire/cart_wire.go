package wire

import (
	"github.com/TejaVeta/Service-app/internal/adaptor"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/pkg/middleware"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Every cart route acts on the caller's own cart
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/cart/add - Add one unit of a service
		r.Post("/api/cart/add", cartHandler.AddToCart)

		// GET /api/cart - Current cart with derived total
		r.Get("/api/cart", cartHandler.GetCart)

		// POST /api/cart/remove - Remove a line entirely
		r.Post("/api/cart/remove", cartHandler.RemoveFromCart)

		// POST /api/cart/quantity - Set a line quantity exactly
		r.Post("/api/cart/quantity", cartHandler.UpdateQuantity)

		// DELETE /api/cart - Clear the whole cart
		r.Delete("/api/cart", cartHandler.ClearCart)
	})
}
