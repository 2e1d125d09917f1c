package usecase

import (
	"context"
	"fmt"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/internal/dto/request"
	"github.com/TejaVeta/Service-app/internal/dto/response"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	Add(ctx context.Context, customerID string, req *request.AddToCartRequest) (*response.CartResponse, error)
	Remove(ctx context.Context, customerID string, req *request.RemoveFromCartRequest) (*response.CartResponse, error)
	SetQuantity(ctx context.Context, customerID string, req *request.UpdateQuantityRequest) (*response.CartResponse, error)
	Get(ctx context.Context, customerID string) (*response.CartResponse, error)
	Clear(ctx context.Context, customerID string) error
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

// Add puts one unit of a service into the cart, merging with an existing
// line for the same service_id. The submitted title/price are stored only on
// first add; the catalog is deliberately not consulted, so the cart keeps the
// price the customer saw.
func (s *cartService) Add(ctx context.Context, customerID string, req *request.AddToCartRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to cart validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	item := entity.CartItem{
		ServiceID: req.ServiceID,
		Title:     req.Title,
		Price:     req.Price,
		Quantity:  1,
	}

	if err := s.repo.Cart.AddItem(ctx, customerUUID, item); err != nil {
		s.log.Error("Failed to add cart item",
			zap.Error(err),
			zap.String("customer_id", customerID),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("add to cart: %w", err)
	}

	s.log.Info("Item added to cart",
		zap.String("customer_id", customerID),
		zap.String("service_id", req.ServiceID),
		zap.Float64("price", req.Price),
	)

	return s.Get(ctx, customerID)
}

func (s *cartService) Remove(ctx context.Context, customerID string, req *request.RemoveFromCartRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Remove from cart validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	// Removing something that is not there is still success
	if err := s.repo.Cart.RemoveItem(ctx, customerUUID, req.ServiceID); err != nil {
		s.log.Error("Failed to remove cart item",
			zap.Error(err),
			zap.String("customer_id", customerID),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("remove from cart: %w", err)
	}

	return s.Get(ctx, customerID)
}

// SetQuantity sets the line quantity exactly; zero or below removes the
// line. Absent cart or item is a no-op.
func (s *cartService) SetQuantity(ctx context.Context, customerID string, req *request.UpdateQuantityRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update quantity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	if req.Quantity <= 0 {
		if err := s.repo.Cart.RemoveItem(ctx, customerUUID, req.ServiceID); err != nil {
			s.log.Error("Failed to remove cart item",
				zap.Error(err),
				zap.String("customer_id", customerID),
				zap.String("service_id", req.ServiceID),
			)
			return nil, fmt.Errorf("update cart quantity: %w", err)
		}
	} else {
		if err := s.repo.Cart.SetItemQuantity(ctx, customerUUID, req.ServiceID, req.Quantity); err != nil {
			s.log.Error("Failed to set cart item quantity",
				zap.Error(err),
				zap.String("customer_id", customerID),
				zap.String("service_id", req.ServiceID),
				zap.Int("quantity", req.Quantity),
			)
			return nil, fmt.Errorf("update cart quantity: %w", err)
		}
	}

	return s.Get(ctx, customerID)
}

// Get returns the cart with its total recomputed from the current items.
// A customer without a cart gets an empty cart, never an error.
func (s *cartService) Get(ctx context.Context, customerID string) (*response.CartResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	cart, err := s.repo.Cart.FindByCustomerID(ctx, customerUUID)
	if err != nil {
		s.log.Error("Failed to get cart",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return response.CartToResponse(cart), nil
}

// Clear deletes the whole cart. Idempotent.
func (s *cartService) Clear(ctx context.Context, customerID string) error {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	if err := s.repo.Cart.DeleteByCustomerID(ctx, customerUUID); err != nil {
		s.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return fmt.Errorf("clear cart: %w", err)
	}

	s.log.Info("Cart cleared", zap.String("customer_id", customerID))
	return nil
}
