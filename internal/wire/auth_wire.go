package wire

import (
	"github.com/TejaVeta/Service-app/internal/adaptor"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/pkg/middleware"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/login - Request an OTP for a phone number
	r.Post("/api/auth/login", authHandler.Login)

	// POST /api/auth/verify-otp - Exchange the OTP for a session token
	r.Post("/api/auth/verify-otp", authHandler.VerifyOTP)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/auth/me - Current user profile
		r.Get("/api/auth/me", authHandler.Me)

		// POST /api/auth/logout - Revoke the current session
		r.Post("/api/auth/logout", authHandler.Logout)
	})
}
