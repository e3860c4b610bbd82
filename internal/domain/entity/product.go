package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas. Las tres últimas identifican lecturas de
// sensores (productos con HasStock=false).
var AvailableUnits = []string{"kg", "g", "l", "ml", "unidades", "m", "cm", "pH", "°C", "EC"}

// IsValidUnit indica si la unidad pertenece al catálogo.
func IsValidUnit(unit string) bool {
	for _, u := range AvailableUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Product representa un insumo de cultivo con control de stock, o una
// variable de sensor (HasStock=false) cuyo CurrentStock es la última lectura
// observada y nunca se modifica por movimientos.
type Product struct {
	ID           int64
	Name         string
	Unit         string
	InitialStock decimal.Decimal
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
	Price        decimal.Decimal
	HasStock     bool
	Responsible  string
	CreatedAt    time.Time
}
