package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialPlant is the key every statistic, threshold and balance is
// scoped to.
type MaterialPlant struct {
	MaterialNumber int
	Plant          string
}

func (k MaterialPlant) String() string {
	return fmt.Sprintf("%d_%s", k.MaterialNumber, k.Plant)
}

// PolicyThresholds is one derived inventory-policy row per material+plant.
// EOQ, SafetyStock and ReorderPoint are rounded to 2 decimal places;
// Overstock is SafetyStock + EOQ over the rounded values, so
// SafetyStock <= Overstock always holds.
type PolicyThresholds struct {
	MaterialNumber      int             `json:"material_number"`
	Plant               string          `json:"plant"`
	AnnualDemand        decimal.Decimal `json:"annual_demand"`
	AverageDailyDemand  decimal.Decimal `json:"average_daily_demand"`
	StddevDailyDemand   decimal.Decimal `json:"stddev_daily_demand"`
	AverageLeadTimeDays decimal.Decimal `json:"average_lead_time_days"`
	EOQ                 decimal.Decimal `json:"eoq"`
	SafetyStock         decimal.Decimal `json:"safety_stock"`
	ReorderPoint        decimal.Decimal `json:"reorder_point"`
	Overstock           decimal.Decimal `json:"overstock"`
}

func (p PolicyThresholds) Key() MaterialPlant {
	return MaterialPlant{MaterialNumber: p.MaterialNumber, Plant: p.Plant}
}
