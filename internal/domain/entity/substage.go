package entity

import "time"

// Substage representa una sub-fase anidada bajo una Stage, con la misma
// máquina de estados (pending -> in_progress -> completed).
type Substage struct {
	ID               int64
	Name             string
	Description      string
	StageID          int64
	ExpectedDuration int // días
	StartTime        *time.Time
	EndTime          *time.Time
	ActualDuration   *int // días completos
	Status           string
	Responsible      string
	CreatedAt        time.Time
}
