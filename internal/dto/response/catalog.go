package response

import (
	"github.com/TejaVeta/Service-app/internal/data/entity"
)

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	CategoryID      string  `json:"category_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	ImageURL        *string `json:"image_url,omitempty"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Icon:        category.Icon,
		Type:        string(category.Type),
		Description: category.Description,
		ImageURL:    category.ImageURL,
	}
}

func CategoriesToResponse(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryToResponse(category)
	}
	return responses
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID.String(),
		CategoryID:      service.CategoryID.String(),
		Title:           service.Title,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		ImageURL:        service.ImageURL,
	}
}

func ServicesToResponse(services []*entity.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = ServiceToResponse(service)
	}
	return responses
}
