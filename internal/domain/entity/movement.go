package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeCompra        = "compra"        // entrada: suma stock
	MovementTypeUso           = "uso"           // consumo: resta stock
	MovementTypeTransferencia = "transferencia" // traslado: resta stock
)

// ConsumesStock indica si el tipo de movimiento descuenta stock.
func ConsumesStock(movementType string) bool {
	return movementType == MovementTypeUso || movementType == MovementTypeTransferencia
}

// IsValidMovementType indica si el tipo está en el catálogo de movimientos.
func IsValidMovementType(movementType string) bool {
	switch movementType {
	case MovementTypeCompra, MovementTypeUso, MovementTypeTransferencia:
		return true
	}
	return false
}

// MovementItem es una línea de movimiento: producto, cantidad y unidad
// congelada al momento del registro.
type MovementItem struct {
	ProductID int64
	Quantity  decimal.Decimal
	Unit      string
}

// Movement representa un asiento del libro de inventario. Cost se calcula una
// única vez al crear (Σ cantidad × precio del producto) y queda congelado;
// las ediciones posteriores solo tocan metadatos y el borrado no revierte stock.
type Movement struct {
	ID           int64
	Date         time.Time
	Type         string
	Items        []MovementItem
	StageID      *int64
	SubstageID   *int64
	Responsible  string
	Location     string // nombre resuelto al crear
	LocationID   *int64
	Observations string
	Cost         decimal.Decimal
}
