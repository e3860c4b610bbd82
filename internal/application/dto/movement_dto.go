package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItemRequest línea de un movimiento a registrar.
type MovementItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateMovementRequest registro de un movimiento de inventario. El costo y
// los efectos de stock se calculan en el caso de uso; la fecha es la del
// registro.
type CreateMovementRequest struct {
	Type         string                `json:"type" validate:"required"`
	Items        []MovementItemRequest `json:"products" validate:"required,min=1,dive"`
	StageID      *int64                `json:"stage_id"`
	SubstageID   *int64                `json:"substage_id"`
	Responsible  string                `json:"responsible" validate:"required"`
	LocationID   *int64                `json:"location_id"`
	Observations string                `json:"observations"`
}

// UpdateMovementRequest edición de metadatos de un movimiento. Nunca toca
// líneas, costo ni stock.
type UpdateMovementRequest struct {
	StageID      *int64  `json:"stage_id"`
	SubstageID   *int64  `json:"substage_id"`
	Responsible  *string `json:"responsible"`
	LocationID   *int64  `json:"location_id"`
	Observations *string `json:"observations"`
}

// MovementItemResponse línea con el nombre de producto resuelto en consulta.
type MovementItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID           int64                  `json:"id"`
	Date         time.Time              `json:"date"`
	Type         string                 `json:"type"`
	Items        []MovementItemResponse `json:"products"`
	StageID      *int64                 `json:"stage_id"`
	StageName    *string                `json:"stage_name"`
	SubstageID   *int64                 `json:"substage_id"`
	SubstageName *string                `json:"substage_name"`
	Responsible  string                 `json:"responsible"`
	Location     string                 `json:"location"`
	LocationID   *int64                 `json:"location_id"`
	Observations string                 `json:"observations"`
	Cost         decimal.Decimal        `json:"cost"`
}
