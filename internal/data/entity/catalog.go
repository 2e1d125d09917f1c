package entity

import (
	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeHome       CategoryType = "home"
	CategoryTypeCommercial CategoryType = "commercial"
)

type Category struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	Icon        string       `db:"icon" json:"icon"`
	Type        CategoryType `db:"type" json:"type"`
	Description *string      `db:"description" json:"description,omitempty"`
	ImageURL    *string      `db:"image_url" json:"image_url,omitempty"`
}

type Service struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CategoryID      uuid.UUID `db:"category_id" json:"category_id"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description,omitempty"`
	Price           float64   `db:"price" json:"price"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	ImageURL        *string   `db:"image_url" json:"image_url,omitempty"`
}
