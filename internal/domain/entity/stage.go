package entity

import "time"

// Estados del ciclo de vida de etapas y sub-etapas.
// Transiciones válidas: pending --iniciar--> in_progress --finalizar--> completed.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Stage representa una etapa de cultivo (germinación, crecimiento, floración...)
// con duración planificada vs. real. IsCompleted es el marcador terminal de
// cierre de ciclo, independiente de Status. ParentStageID referencia la etapa
// original cuando la etapa nace de un reinicio de ciclo.
type Stage struct {
	ID               int64
	Name             string
	Description      string
	LocationID       *int64
	ExpectedDuration int // días
	StartTime        *time.Time
	EndTime          *time.Time
	ActualDuration   *int // días completos
	Status           string
	Responsible      string
	CycleName        string
	IsCompleted      bool
	ParentStageID    *int64
	CreatedAt        time.Time
}
