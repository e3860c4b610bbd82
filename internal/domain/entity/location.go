package entity

import "time"

// Location representa un espacio físico de cultivo (invernadero, sala de secado...).
type Location struct {
	ID          int64
	Name        string
	Description string
	Responsible string
	CreatedAt   time.Time
}
