package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. HasStock=false declara una variable
// de sensor: se ignoran los campos de stock y CurrentValue pasa a ser la
// lectura actual.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Price        decimal.Decimal `json:"price"`
	HasStock     *bool           `json:"has_stock"`
	CurrentValue decimal.Decimal `json:"current_value"`
	Responsible  string          `json:"responsible"`
}

// UpdateProductRequest campos mutables de producto; solo se aplican los presentes.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Unit         *string          `json:"unit"`
	InitialStock *decimal.Decimal `json:"initial_stock"`
	CurrentStock *decimal.Decimal `json:"current_stock"`
	MinStock     *decimal.Decimal `json:"min_stock"`
	Price        *decimal.Decimal `json:"price"`
	HasStock     *bool            `json:"has_stock"`
	CurrentValue *decimal.Decimal `json:"current_value"`
	Responsible  *string          `json:"responsible"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Price        decimal.Decimal `json:"price"`
	HasStock     bool            `json:"has_stock"`
	Responsible  string          `json:"responsible"`
	CreatedAt    time.Time       `json:"created_at"`
}
