package dto

import "github.com/shopspring/decimal"

// StockChartItem nivel de stock de un producto con control de stock.
type StockChartItem struct {
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Unit         string          `json:"unit"`
}

// TimeComparisonItem duración planificada vs. real de una etapa o sub-etapa.
// Para registros in_progress, Actual son los días transcurridos hasta hoy.
type TimeComparisonItem struct {
	Name     string `json:"name"`
	Expected int    `json:"expected"`
	Actual   int    `json:"actual"`
}

// LocationTime acumulado de días planificados vs. reales por locación.
type LocationTime struct {
	Expected int `json:"expected"`
	Actual   int `json:"actual"`
}
