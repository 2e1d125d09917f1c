package response

import (
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"
)

type BookingAddressResponse struct {
	Street   string  `json:"street"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Pincode  string  `json:"pincode"`
	Landmark *string `json:"landmark,omitempty"`
}

type BookingResponse struct {
	ID            string                 `json:"id"`
	CustomerID    string                 `json:"customer_id"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone string                 `json:"customer_phone"`
	Services      []CartItemResponse     `json:"services"`
	TotalPrice    float64                `json:"total_price"`
	Status        entity.BookingStatus   `json:"status"`
	ScheduledAt   time.Time              `json:"scheduled_at"`
	Address       BookingAddressResponse `json:"address"`
	Images        []string               `json:"images"`
	CreatedAt     time.Time              `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	services := make([]CartItemResponse, len(booking.Services))
	for i, item := range booking.Services {
		services[i] = CartItemToResponse(item)
	}

	images := booking.Images
	if images == nil {
		images = []string{}
	}

	return &BookingResponse{
		ID:            booking.ID.String(),
		CustomerID:    booking.CustomerID.String(),
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		Services:      services,
		TotalPrice:    booking.TotalPrice,
		Status:        booking.Status,
		ScheduledAt:   booking.ScheduledAt,
		Address: BookingAddressResponse{
			Street:   booking.Address.Street,
			City:     booking.Address.City,
			State:    booking.Address.State,
			Pincode:  booking.Address.Pincode,
			Landmark: booking.Address.Landmark,
		},
		Images:    images,
		CreatedAt: booking.CreatedAt,
	}
}
