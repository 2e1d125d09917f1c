package request

type AddToCartRequest struct {
	ServiceID string  `json:"service_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
}

type RemoveFromCartRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
}

// Quantity zero or below removes the item
type UpdateQuantityRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}
