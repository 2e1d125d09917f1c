package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/internal/dto/request"
	"github.com/TejaVeta/Service-app/internal/dto/response"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	Get(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListByCustomer(ctx context.Context, customerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// Transition advances the booking status through the legal state
	// machine. There is no HTTP surface for this yet; provider-side
	// assignment will drive it.
	Transition(ctx context.Context, bookingID string, next entity.BookingStatus) error
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// Create persists an immutable booking snapshot from the submitted items and
// then clears the customer's cart. The submitted services are independent
// input, not read back from the live cart; the clear is best-effort cleanup
// and never fails the booking.
func (s *bookingService) Create(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	services := make([]entity.CartItem, len(req.Services))
	for i, item := range req.Services {
		services[i] = entity.CartItem{
			ServiceID: item.ServiceID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	// Legacy mode trusts the caller's pricing, matching the behavior the
	// mobile clients were built against. Strict mode re-derives every price
	// from the catalog.
	if s.config.Booking.StrictPricing {
		if err := s.verifyPricing(ctx, services, req.TotalPrice); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:    customerUUID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Services:      services,
		TotalPrice:    req.TotalPrice,
		Status:        entity.BookingStatusPending,
		ScheduledAt:   req.ScheduledAt,
		Address: entity.BookingAddress{
			Street:   req.Address.Street,
			City:     req.Address.City,
			State:    req.Address.State,
			Pincode:  req.Address.Pincode,
			Landmark: req.Address.Landmark,
		},
		Images: req.Images,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customerID),
		zap.Int("service_count", len(services)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	// The booking is durable at this point. The cart clear may fail or be
	// delayed; the clear is idempotent and retryable, so the booking result
	// stands either way.
	if err := s.repo.Cart.DeleteByCustomerID(ctx, customerUUID); err != nil {
		s.log.Warn("Failed to clear cart after booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("customer_id", customerID),
		)
	}

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) Get(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) ListByCustomer(ctx context.Context, customerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByCustomerID(ctx, customerUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list customer bookings",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("list customer bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByCustomerID(ctx, customerUUID)
	if err != nil {
		s.log.Error("Failed to count customer bookings", zap.Error(err))
		return nil, fmt.Errorf("count customer bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *response.BookingToResponse(booking)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	return response.NewPaginatedResponse(bookingResponses, page, limit, total), nil
}

func (s *bookingService) Transition(ctx context.Context, bookingID string, next entity.BookingStatus) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if !next.IsValid() {
		return fmt.Errorf("invalid booking status %s", string(next))
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booking for transition",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if !booking.Status.CanTransition(next) {
		return fmt.Errorf("cannot transition booking %s from %s to %s",
			bookingID, string(booking.Status), string(next))
	}

	// Compare-and-set against the status just read; a concurrent
	// transition makes this fail rather than skip a state
	if err := s.repo.Booking.UpdateStatus(ctx, id, booking.Status, next); err != nil {
		s.log.Error("Failed to transition booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("to", string(next)),
		)
		return err
	}

	s.log.Info("Booking transitioned",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)),
	)

	return nil
}

// verifyPricing checks every submitted item against the live catalog and the
// submitted total against the derived sum
func (s *bookingService) verifyPricing(ctx context.Context, services []entity.CartItem, totalPrice float64) error {
	var derived float64
	for _, item := range services {
		serviceUUID, err := uuid.Parse(item.ServiceID)
		if err != nil {
			return fmt.Errorf("validation failed: service %s is not a known catalog service", item.ServiceID)
		}

		svc, err := s.repo.Service.FindByID(ctx, serviceUUID)
		if err != nil {
			return fmt.Errorf("verify pricing: %w", err)
		}
		if svc == nil {
			return fmt.Errorf("validation failed: service %s is not a known catalog service", item.ServiceID)
		}

		if item.Price != svc.Price {
			return fmt.Errorf("validation failed: price %.2f for service %s does not match catalog price %.2f",
				item.Price, item.ServiceID, svc.Price)
		}

		derived += svc.Price * float64(item.Quantity)
	}

	if math.Abs(derived-totalPrice) > 1e-9 {
		return fmt.Errorf("validation failed: total price %.2f does not match derived total %.2f",
			totalPrice, derived)
	}

	return nil
}
