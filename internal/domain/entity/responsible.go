package entity

import "time"

// ResponsibleColors paleta por defecto para responsables nuevos.
var ResponsibleColors = []string{"#4caf50", "#2196f3", "#ff9800", "#9c27b0", "#f44336", "#00bcd4", "#795548", "#607d8b"}

// Responsible es la persona a cargo de una locación.
type Responsible struct {
	ID         int64
	Name       string
	Role       string
	LocationID int64
	Color      string
	CreatedAt  time.Time
}
