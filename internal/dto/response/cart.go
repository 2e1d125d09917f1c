package response

import (
	"github.com/TejaVeta/Service-app/internal/data/entity"
)

type CartItemResponse struct {
	ServiceID string  `json:"service_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartResponse always carries a fresh total derived from the items
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func CartItemToResponse(item entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ServiceID: item.ServiceID,
		Title:     item.Title,
		Price:     item.Price,
		Quantity:  item.Quantity,
	}
}

func CartToResponse(cart *entity.Cart) *CartResponse {
	resp := &CartResponse{
		Items: []CartItemResponse{},
	}

	if cart == nil {
		return resp
	}

	for _, item := range cart.Items {
		resp.Items = append(resp.Items, CartItemToResponse(item))
	}
	resp.Total = cart.Total()

	return resp
}
