package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCartRepository implements the cart repository contract in memory:
// merge on duplicate add, first write wins for title and price, idempotent
// removes and deletes.
type mockCartRepository struct {
	m     sync.Mutex
	carts map[uuid.UUID]*entity.Cart
	err   error
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{carts: make(map[uuid.UUID]*entity.Cart)}
}

func (m *mockCartRepository) AddItem(_ context.Context, customerID uuid.UUID, item entity.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}

	cart, ok := m.carts[customerID]
	if !ok {
		cart = &entity.Cart{CustomerID: customerID}
		m.carts[customerID] = cart
	}
	cart.UpdatedAt = time.Now()

	for i := range cart.Items {
		if cart.Items[i].ServiceID == item.ServiceID {
			cart.Items[i].Quantity++
			return nil
		}
	}
	cart.Items = append(cart.Items, item)
	return nil
}

func (m *mockCartRepository) RemoveItem(_ context.Context, customerID uuid.UUID, serviceID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}

	cart, ok := m.carts[customerID]
	if !ok {
		return nil
	}
	for i, item := range cart.Items {
		if item.ServiceID == serviceID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCartRepository) SetItemQuantity(_ context.Context, customerID uuid.UUID, serviceID string, quantity int) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}

	cart, ok := m.carts[customerID]
	if !ok {
		return nil
	}
	for i := range cart.Items {
		if cart.Items[i].ServiceID == serviceID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (m *mockCartRepository) FindByCustomerID(_ context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	cart, ok := m.carts[customerID]
	if !ok {
		return nil, nil
	}

	clone := &entity.Cart{
		CustomerID: cart.CustomerID,
		Items:      append([]entity.CartItem(nil), cart.Items...),
		UpdatedAt:  cart.UpdatedAt,
	}
	return clone, nil
}

func (m *mockCartRepository) DeleteByCustomerID(_ context.Context, customerID uuid.UUID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.carts, customerID)
	return nil
}

func newCartServiceForTest(cartRepo repository.CartRepository) CartService {
	repo := &repository.Repository{Cart: cartRepo}
	return NewCartService(repo, zap.NewNop())
}

func TestCartAdd_NewItem(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()

	cart, err := svc.Add(context.Background(), customerID, &request.AddToCartRequest{
		ServiceID: "svc-1",
		Title:     "Fan Installation",
		Price:     900,
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "svc-1", cart.Items[0].ServiceID)
	assert.Equal(t, "Fan Installation", cart.Items[0].Title)
	assert.Equal(t, 900.0, cart.Items[0].Price)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 900.0, cart.Total)
}

func TestCartAdd_DuplicateMergesQuantity(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Add(ctx, customerID, &request.AddToCartRequest{
		ServiceID: "svc-1",
		Title:     "Fan Installation",
		Price:     900,
	})
	require.NoError(t, err)

	// Second add for the same service merges into the existing line and
	// keeps the originally stored title and price
	cart, err := svc.Add(ctx, customerID, &request.AddToCartRequest{
		ServiceID: "svc-1",
		Title:     "Fan Installation (renamed)",
		Price:     1200,
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "Fan Installation", cart.Items[0].Title)
	assert.Equal(t, 900.0, cart.Items[0].Price)
	assert.Equal(t, 1800.0, cart.Total)
}

func TestCartAdd_TotalDerivedFromItems(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Tap Repair", Price: 400})
	require.NoError(t, err)
	_, err = svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Tap Repair", Price: 400})
	require.NoError(t, err)
	cart, err := svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-2", Title: "Toilet Installation", Price: 2500})
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 400.0*2+2500.0, cart.Total)
}

func TestCartAdd_ValidationFailure(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())

	_, err := svc.Add(context.Background(), uuid.New().String(), &request.AddToCartRequest{
		ServiceID: "",
		Title:     "Fan Installation",
		Price:     900,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCartAdd_InvalidCustomerID(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())

	_, err := svc.Add(context.Background(), "not-a-uuid", &request.AddToCartRequest{
		ServiceID: "svc-1",
		Title:     "Fan Installation",
		Price:     900,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid customer ID")
}

func TestCartGet_EmptyCart(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())

	cart, err := svc.Get(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
}

func TestCartRemove_ExistingItem(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Tap Repair", Price: 400})
	require.NoError(t, err)
	_, err = svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-2", Title: "Pipe Leak Repair", Price: 800})
	require.NoError(t, err)

	cart, err := svc.Remove(ctx, customerID, &request.RemoveFromCartRequest{ServiceID: "svc-1"})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "svc-2", cart.Items[0].ServiceID)
	assert.Equal(t, 800.0, cart.Total)
}

func TestCartRemove_AbsentItemIsNoOp(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()

	cart, err := svc.Remove(context.Background(), customerID, &request.RemoveFromCartRequest{ServiceID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartSetQuantity_Exact(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Tap Repair", Price: 400})
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, customerID, &request.UpdateQuantityRequest{ServiceID: "svc-1", Quantity: 5})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 2000.0, cart.Total)
}

func TestCartSetQuantity_ZeroRemovesItem(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Tap Repair", Price: 400})
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, customerID, &request.UpdateQuantityRequest{ServiceID: "svc-1", Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
}

func TestCartSetQuantity_NegativeRemovesItem(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Tap Repair", Price: 400})
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, customerID, &request.UpdateQuantityRequest{ServiceID: "svc-1", Quantity: -3})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartSetQuantity_AbsentItemIsNoOp(t *testing.T) {
	svc := newCartServiceForTest(newMockCartRepository())
	customerID := uuid.New().String()

	cart, err := svc.SetQuantity(context.Background(), customerID, &request.UpdateQuantityRequest{ServiceID: "missing", Quantity: 3})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartClear_Idempotent(t *testing.T) {
	repo := newMockCartRepository()
	svc := newCartServiceForTest(repo)
	customerID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Add(ctx, customerID, &request.AddToCartRequest{ServiceID: "svc-1", Title: "Tap Repair", Price: 400})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, customerID))
	// Clearing an already cleared cart still succeeds
	require.NoError(t, svc.Clear(ctx, customerID))

	cart, err := svc.Get(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
