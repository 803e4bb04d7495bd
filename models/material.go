package models

import (
	"github.com/shopspring/decimal"
)

type Material struct {
	MaterialNumber int             `gorm:"primaryKey" json:"material_number"`
	MaterialType   MaterialType    `gorm:"type:enum('RAW','FINISHED','SEMIFINISHED');default:RAW" json:"material_type"`
	IndustrySector string          `gorm:"size:50" json:"industry_sector"`
	MaterialGroup  string          `gorm:"size:50" json:"material_group"`
	ValuationClass string          `gorm:"size:50" json:"valuation_class"`
	GrossWeight    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gross_weight"`
	NetWeight      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"net_weight"`
	WeightUnit     string          `gorm:"size:10" json:"weight_unit"`
	Volume         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"volume"`
	VolumeUnit     string          `gorm:"size:10" json:"volume_unit"`
	TransportGroup string          `gorm:"size:10" json:"transport_group"`
}
