package request

import "time"

type BookingItemRequest struct {
	ServiceID string  `json:"service_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"min=1"`
}

type BookingAddressRequest struct {
	Street   string  `json:"street" validate:"required"`
	City     string  `json:"city" validate:"required"`
	State    string  `json:"state" validate:"required"`
	Pincode  string  `json:"pincode" validate:"required"`
	Landmark *string `json:"landmark,omitempty"`
}

type CreateBookingRequest struct {
	CustomerName  string                `json:"customer_name" validate:"required"`
	CustomerPhone string                `json:"customer_phone" validate:"required,min=10,max=15"`
	Services      []BookingItemRequest  `json:"services" validate:"required,min=1,dive"`
	TotalPrice    float64               `json:"total_price" validate:"gte=0"`
	ScheduledAt   time.Time             `json:"scheduled_at" validate:"required"`
	Address       BookingAddressRequest `json:"address" validate:"required"`
	Images        []string              `json:"images"`
}

type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func (r *PaginatedRequest) Limit() int {
	if r.PerPage < 1 {
		return 10
	}
	if r.PerPage > 100 {
		return 100
	}
	return r.PerPage
}

func (r *PaginatedRequest) Offset() int {
	page := r.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * r.Limit()
}
