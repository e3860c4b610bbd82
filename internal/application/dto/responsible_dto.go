package dto

import "time"

// CreateResponsibleRequest alta de responsable de locación.
type CreateResponsibleRequest struct {
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role"`
	LocationID int64  `json:"location_id" validate:"required"`
	Color      string `json:"color"`
}

// UpdateResponsibleRequest campos mutables de responsable.
type UpdateResponsibleRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	LocationID *int64  `json:"location_id"`
	Color      *string `json:"color"`
}

// ResponsibleResponse representación HTTP de un responsable.
type ResponsibleResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	LocationID int64     `json:"location_id"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"created_at"`
}
