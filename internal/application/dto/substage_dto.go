package dto

import "time"

// CreateSubstageRequest alta de sub-etapa bajo una etapa existente.
type CreateSubstageRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	StageID          int64  `json:"stage_id" validate:"required"`
	ExpectedDuration int    `json:"expected_duration" validate:"required,min=1"`
	Responsible      string `json:"responsible" validate:"required"`
}

// UpdateSubstageRequest campos mutables de sub-etapa.
type UpdateSubstageRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	StageID          *int64  `json:"stage_id"`
	ExpectedDuration *int    `json:"expected_duration"`
	Responsible      *string `json:"responsible"`
}

// SubstageResponse representación HTTP de una sub-etapa, con el nombre de
// etapa resuelto al momento de la consulta.
type SubstageResponse struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	StageID          int64      `json:"stage_id"`
	StageName        string     `json:"stage_name,omitempty"`
	ExpectedDuration int        `json:"expected_duration"`
	StartTime        *time.Time `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	ActualDuration   *int       `json:"actual_duration"`
	Status           string     `json:"status"`
	Responsible      string     `json:"responsible"`
	CreatedAt        time.Time  `json:"created_at"`
}
