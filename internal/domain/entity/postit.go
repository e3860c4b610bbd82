package entity

import "time"

// Postit es una nota adhesiva del tablero.
type Postit struct {
	ID        int64
	Title     string
	Content   string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
