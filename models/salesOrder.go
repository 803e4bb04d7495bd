package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesOrderDocument struct {
	SalesDocumentNumber    int       `gorm:"primaryKey" json:"sales_document_number"`
	DocumentCreationDate   time.Time `json:"document_creation_date"`
	CustomerNumber         int       `gorm:"index" json:"customer_number"`
	DocumentDateInDocument time.Time `json:"document_date_in_document"`
	SalesDocumentType      string    `gorm:"size:50" json:"sales_document_type"`
	OrderType              string    `gorm:"size:50" json:"order_type"`
	OrderReason            string    `gorm:"size:50" json:"order_reason"`
}

type SalesOrderItem struct {
	SalesDocumentNumber int             `gorm:"primaryKey;autoIncrement:false" json:"sales_document_number"`
	ItemNumber          int             `gorm:"primaryKey;autoIncrement:false" json:"item_number"`
	MaterialNumber      *int            `gorm:"index" json:"material_number"`
	Plant               string          `gorm:"index;size:20" json:"plant"`
	OrderQuantity       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"order_quantity"`
	NetPrice            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"net_price"`
}
