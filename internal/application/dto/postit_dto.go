package dto

import "time"

// CreatePostitRequest alta de nota. El color por defecto es amarillo (#ffeb3b).
type CreatePostitRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Color   string `json:"color"`
}

// UpdatePostitRequest campos mutables de nota.
type UpdatePostitRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

// PostitResponse representación HTTP de una nota.
type PostitResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
