package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/internal/dto/request"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBookingRepository struct {
	m        sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
	err      error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (m *mockBookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	clone := *booking
	clone.Services = append([]entity.CartItem(nil), booking.Services...)
	m.bookings[booking.ID] = &clone
	return nil
}

func (m *mockBookingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *booking
	clone.Services = append([]entity.CartItem(nil), booking.Services...)
	return &clone, nil
}

func (m *mockBookingRepository) FindByCustomerID(_ context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	var result []*entity.Booking
	for _, booking := range m.bookings {
		if booking.CustomerID == customerID {
			result = append(result, booking)
		}
	}
	// Newest first, matching the repository ordering
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if offset >= len(result) {
		return []*entity.Booking{}, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], nil
}

func (m *mockBookingRepository) CountByCustomerID(_ context.Context, customerID uuid.UUID) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var count int64
	for _, booking := range m.bookings {
		if booking.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func (m *mockBookingRepository) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.BookingStatus) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	booking, ok := m.bookings[id]
	if !ok || booking.Status != from {
		return fmt.Errorf("booking %s is no longer in status %s, cannot transition", id.String(), string(from))
	}
	booking.Status = to
	return nil
}

// mockServiceRepository serves a fixed catalog
type mockServiceRepository struct {
	services map[uuid.UUID]*entity.Service
	calls    int
}

func (m *mockServiceRepository) Create(context.Context, *entity.Service) error { return nil }

func (m *mockServiceRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	m.calls++
	svc, ok := m.services[id]
	if !ok {
		return nil, nil
	}
	return svc, nil
}

func (m *mockServiceRepository) FindByCategoryID(_ context.Context, categoryID uuid.UUID) ([]*entity.Service, error) {
	m.calls++
	var result []*entity.Service
	for _, svc := range m.services {
		if svc.CategoryID == categoryID {
			result = append(result, svc)
		}
	}
	return result, nil
}

// failingCartRepository simulates a cart store that is down
type failingCartRepository struct {
	mockCartRepository
}

func (f *failingCartRepository) DeleteByCustomerID(context.Context, uuid.UUID) error {
	return errors.New("cart store unavailable")
}

func newBookingServiceForTest(bookingRepo repository.BookingRepository, cartRepo repository.CartRepository, serviceRepo repository.ServiceRepository, strict bool) BookingService {
	repo := &repository.Repository{
		Booking: bookingRepo,
		Cart:    cartRepo,
		Service: serviceRepo,
	}
	config := &utils.Config{}
	config.Booking.StrictPricing = strict
	return NewBookingService(repo, config, zap.NewNop())
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CustomerName:  "Demo User",
		CustomerPhone: "9876543210",
		Services: []request.BookingItemRequest{
			{ServiceID: "svc-1", Title: "Fan Installation", Price: 900, Quantity: 2},
			{ServiceID: "svc-2", Title: "Tap Repair", Price: 400, Quantity: 1},
		},
		TotalPrice:  2200,
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Address: request.BookingAddressRequest{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
	}
}

func TestBookingCreate_StartsPending(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)
	customerID := uuid.New().String()

	booking, err := svc.Create(context.Background(), customerID, validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, customerID, booking.CustomerID)
	assert.Equal(t, 2200.0, booking.TotalPrice)
	require.Len(t, booking.Services, 2)
	assert.NotEmpty(t, booking.ID)
	assert.NotNil(t, booking.Images)
}

func TestBookingCreate_ClearsCart(t *testing.T) {
	cartRepo := newMockCartRepository()
	svc := newBookingServiceForTest(newMockBookingRepository(), cartRepo, nil, false)
	cartSvc := newCartServiceForTest(cartRepo)
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := cartSvc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Fan Installation", Price: 900})
	require.NoError(t, err)

	_, err = svc.Create(ctx, customerID, validBookingRequest())
	require.NoError(t, err)

	cart, err := cartSvc.Get(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestBookingCreate_CartClearFailureDoesNotFailBooking(t *testing.T) {
	bookingRepo := newMockBookingRepository()
	svc := newBookingServiceForTest(bookingRepo, &failingCartRepository{}, nil, false)
	customerID := uuid.New().String()

	booking, err := svc.Create(context.Background(), customerID, validBookingRequest())
	require.NoError(t, err)

	// The booking is durable even though the cart clear failed
	stored, err := bookingRepo.FindByID(context.Background(), uuid.MustParse(booking.ID))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.BookingStatusPending, stored.Status)
}

func TestBookingCreate_SnapshotIndependentOfCart(t *testing.T) {
	cartRepo := newMockCartRepository()
	bookingRepo := newMockBookingRepository()
	svc := newBookingServiceForTest(bookingRepo, cartRepo, nil, false)
	cartSvc := newCartServiceForTest(cartRepo)
	customerID := uuid.New().String()
	ctx := context.Background()

	// The live cart holds something entirely different from the submitted
	// services; the booking snapshots the submission, not the cart
	_, err := cartSvc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "other", Title: "Wood Polish", Price: 2500})
	require.NoError(t, err)

	booking, err := svc.Create(ctx, customerID, validBookingRequest())
	require.NoError(t, err)

	require.Len(t, booking.Services, 2)
	assert.Equal(t, "svc-1", booking.Services[0].ServiceID)
	assert.Equal(t, "svc-2", booking.Services[1].ServiceID)
}

func TestBookingCreate_ValidationFailures(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)
	customerID := uuid.New().String()
	ctx := context.Background()

	empty := validBookingRequest()
	empty.Services = nil
	_, err := svc.Create(ctx, customerID, empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	badQuantity := validBookingRequest()
	badQuantity.Services[0].Quantity = 0
	_, err = svc.Create(ctx, customerID, badQuantity)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	noAddress := validBookingRequest()
	noAddress.Address = request.BookingAddressRequest{}
	_, err = svc.Create(ctx, customerID, noAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestBookingCreate_LegacyPricingTrustsClient(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)
	customerID := uuid.New().String()

	// Total does not match the items; legacy mode stores it as submitted
	req := validBookingRequest()
	req.TotalPrice = 999

	booking, err := svc.Create(context.Background(), customerID, req)
	require.NoError(t, err)
	assert.Equal(t, 999.0, booking.TotalPrice)
}

func TestBookingCreate_StrictPricingRejectsUnknownService(t *testing.T) {
	serviceRepo := &mockServiceRepository{services: map[uuid.UUID]*entity.Service{}}
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), serviceRepo, true)

	_, err := svc.Create(context.Background(), uuid.New().String(), validBookingRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a known catalog service")
}

func TestBookingCreate_StrictPricingRejectsPriceMismatch(t *testing.T) {
	serviceID := uuid.New()
	serviceRepo := &mockServiceRepository{services: map[uuid.UUID]*entity.Service{
		serviceID: {ID: serviceID, Title: "Fan Installation", Price: 900},
	}}
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), serviceRepo, true)

	req := validBookingRequest()
	req.Services = []request.BookingItemRequest{
		{ServiceID: serviceID.String(), Title: "Fan Installation", Price: 100, Quantity: 1},
	}
	req.TotalPrice = 100

	_, err := svc.Create(context.Background(), uuid.New().String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match catalog price")
}

func TestBookingCreate_StrictPricingRejectsWrongTotal(t *testing.T) {
	serviceID := uuid.New()
	serviceRepo := &mockServiceRepository{services: map[uuid.UUID]*entity.Service{
		serviceID: {ID: serviceID, Title: "Fan Installation", Price: 900},
	}}
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), serviceRepo, true)

	req := validBookingRequest()
	req.Services = []request.BookingItemRequest{
		{ServiceID: serviceID.String(), Title: "Fan Installation", Price: 900, Quantity: 2},
	}
	req.TotalPrice = 900

	_, err := svc.Create(context.Background(), uuid.New().String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match derived total")
}

func TestBookingCreate_StrictPricingAcceptsMatchingTotal(t *testing.T) {
	serviceID := uuid.New()
	serviceRepo := &mockServiceRepository{services: map[uuid.UUID]*entity.Service{
		serviceID: {ID: serviceID, Title: "Fan Installation", Price: 900},
	}}
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), serviceRepo, true)

	req := validBookingRequest()
	req.Services = []request.BookingItemRequest{
		{ServiceID: serviceID.String(), Title: "Fan Installation", Price: 900, Quantity: 2},
	}
	req.TotalPrice = 1800

	booking, err := svc.Create(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, booking.TotalPrice)
}

func TestBookingGet_NotFound(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)

	_, err := svc.Get(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBookingListByCustomer_NewestFirst(t *testing.T) {
	bookingRepo := newMockBookingRepository()
	svc := newBookingServiceForTest(bookingRepo, newMockCartRepository(), nil, false)
	customerID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		booking := &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: time.Now().Add(time.Duration(i) * time.Hour),
			},
			CustomerID:  customerID,
			Status:      entity.BookingStatusPending,
			TotalPrice:  float64(100 * (i + 1)),
			ScheduledAt: time.Now().Add(24 * time.Hour),
		}
		require.NoError(t, bookingRepo.Create(ctx, booking))
	}

	result, err := svc.ListByCustomer(ctx, customerID.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)

	require.Len(t, result.Data, 3)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, 300.0, result.Data[0].TotalPrice)
	assert.Equal(t, 100.0, result.Data[2].TotalPrice)
}

func TestBookingListByCustomer_EmptyHistory(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)

	result, err := svc.ListByCustomer(context.Background(), uuid.New().String(), &request.PaginatedRequest{})
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, int64(0), result.Total)
}

func TestBookingTransition_LegalPath(t *testing.T) {
	bookingRepo := newMockBookingRepository()
	svc := newBookingServiceForTest(bookingRepo, newMockCartRepository(), nil, false)
	customerID := uuid.New().String()
	ctx := context.Background()

	booking, err := svc.Create(ctx, customerID, validBookingRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Transition(ctx, booking.ID, entity.BookingStatusAssigned))
	require.NoError(t, svc.Transition(ctx, booking.ID, entity.BookingStatusInProgress))
	require.NoError(t, svc.Transition(ctx, booking.ID, entity.BookingStatusCompleted))

	updated, err := svc.Get(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, updated.Status)
}

func TestBookingTransition_CannotSkipStates(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)
	ctx := context.Background()

	booking, err := svc.Create(ctx, uuid.New().String(), validBookingRequest())
	require.NoError(t, err)

	// pending -> in_progress skips assigned
	err = svc.Transition(ctx, booking.ID, entity.BookingStatusInProgress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")

	// pending -> cancelled is not in the transition table either
	err = svc.Transition(ctx, booking.ID, entity.BookingStatusCancelled)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
}

func TestBookingTransition_TerminalStateRejectsFurtherMoves(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)
	ctx := context.Background()

	booking, err := svc.Create(ctx, uuid.New().String(), validBookingRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Transition(ctx, booking.ID, entity.BookingStatusAssigned))
	require.NoError(t, svc.Transition(ctx, booking.ID, entity.BookingStatusInProgress))
	require.NoError(t, svc.Transition(ctx, booking.ID, entity.BookingStatusCancelled))

	err = svc.Transition(ctx, booking.ID, entity.BookingStatusCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
}

func TestBookingTransition_UnknownStatusRejected(t *testing.T) {
	svc := newBookingServiceForTest(newMockBookingRepository(), newMockCartRepository(), nil, false)
	ctx := context.Background()

	booking, err := svc.Create(ctx, uuid.New().String(), validBookingRequest())
	require.NoError(t, err)

	err = svc.Transition(ctx, booking.ID, entity.BookingStatus("shipped"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking status")
}
