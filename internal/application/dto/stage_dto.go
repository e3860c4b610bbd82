package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStageRequest alta de etapa. Nace pending, sin tiempos.
type CreateStageRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	LocationID       *int64 `json:"location_id"`
	ExpectedDuration int    `json:"expected_duration" validate:"required,min=1"`
	Responsible      string `json:"responsible" validate:"required"`
	CycleName        string `json:"cycle_name"`
}

// UpdateStageRequest campos mutables de etapa. Los tiempos y el estado solo
// cambian por las transiciones iniciar/finalizar/completar.
type UpdateStageRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	LocationID       *int64  `json:"location_id"`
	ClearLocation    bool    `json:"clear_location"`
	ExpectedDuration *int    `json:"expected_duration"`
	Responsible      *string `json:"responsible"`
	CycleName        *string `json:"cycle_name"`
}

// RestartStageRequest parámetros del reinicio de ciclo.
type RestartStageRequest struct {
	CycleName string `json:"cycle_name"`
}

// StageResponse representación HTTP de una etapa, con el nombre de locación
// resuelto al momento de la consulta.
type StageResponse struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	LocationID       *int64     `json:"location_id"`
	LocationName     string     `json:"location_name,omitempty"`
	ExpectedDuration int        `json:"expected_duration"`
	StartTime        *time.Time `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	ActualDuration   *int       `json:"actual_duration"`
	Status           string     `json:"status"`
	Responsible      string     `json:"responsible"`
	CycleName        string     `json:"cycle_name"`
	IsCompleted      bool       `json:"is_completed"`
	ParentStageID    *int64     `json:"parent_stage_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// SummaryProduct consumo agregado de un producto dentro de una sub-etapa.
type SummaryProduct struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Cost     decimal.Decimal `json:"cost"`
}

// SummaryTotals totales del resumen de etapa.
type SummaryTotals struct {
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// StageSummaryResponse resumen de cierre de ciclo de una etapa completada:
// consumo por producto en cada sub-etapa más los totales.
type StageSummaryResponse struct {
	StageID               int64                                `json:"stage_id"`
	StageName             string                               `json:"stage_name"`
	CycleName             string                               `json:"cycle_name"`
	StartTime             *time.Time                           `json:"start_time"`
	EndTime               *time.Time                           `json:"end_time"`
	ExpectedDuration      int                                  `json:"expected_duration"`
	ActualDuration        *int                                 `json:"actual_duration"`
	Responsible           string                               `json:"responsible"`
	ConsumptionBySubstage map[string]map[string]SummaryProduct `json:"consumption_by_substage"`
	Totals                SummaryTotals                        `json:"totals"`
	GeneratedAt           time.Time                            `json:"generated_at"`
}
