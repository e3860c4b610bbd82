package dto

import "github.com/shopspring/decimal"

// LowStockAlert alerta de stock bajo para un producto con control de stock.
// Status es "crítico" con stock cero y "bajo" en el resto de los casos.
type LowStockAlert struct {
	ProductName  string          `json:"product_name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Unit         string          `json:"unit"`
	Status       string          `json:"status"`
}

// DashboardResponse KPIs generales más alertas de stock.
type DashboardResponse struct {
	TotalProducts  int             `json:"total_products"`
	TotalStages    int             `json:"total_stages"`
	TotalLocations int             `json:"total_locations"`
	TotalMovements int             `json:"total_movements"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	LowStockAlerts []LowStockAlert `json:"low_stock_alerts"`
}
