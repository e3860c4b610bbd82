package dto

import "time"

// CreateLocationRequest alta de locación.
type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Responsible string `json:"responsible"`
}

// UpdateLocationRequest campos mutables de locación.
type UpdateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Responsible *string `json:"responsible"`
}

// LocationResponse representación HTTP de una locación.
type LocationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Responsible string    `json:"responsible"`
	CreatedAt   time.Time `json:"created_at"`
}
