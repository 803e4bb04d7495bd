package models

import (
	"github.com/shopspring/decimal"
)

// MaterialStock is the per-location stock snapshot table. The pipeline does
// not read it; it exists so the generated database exposes the full schema.
type MaterialStock struct {
	Client                           string          `gorm:"size:20" json:"client"`
	MaterialNumber                   int             `gorm:"primaryKey;autoIncrement:false" json:"material_number"`
	Plant                            string          `gorm:"primaryKey;size:20" json:"plant"`
	StorageLocation                  string          `gorm:"primaryKey;size:20" json:"storage_location"`
	StockInQualityInspection         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock_in_quality_inspection"`
	StockInTransfer                  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock_in_transfer"`
	StockInPosting                   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock_in_posting"`
	StockOfMaterialProvidedToVendor  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock_of_material_provided_to_vendor"`
	BlockedStock                     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"blocked_stock"`
	ReturnsStock                     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"returns_stock"`
}
