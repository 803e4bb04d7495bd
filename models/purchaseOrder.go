package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrderDocument struct {
	PurchaseDocumentNumber     int       `gorm:"primaryKey" json:"purchase_document_number"`
	RecordCreationDate         time.Time `json:"record_creation_date"`
	AccountNumberOfVendor      int       `gorm:"index" json:"account_number_of_vendor"`
	PurchaseOrderDate          time.Time `json:"purchase_order_date"`
	PurchasingDocumentCategory string    `gorm:"size:50" json:"purchasing_document_category"`
	PurchasingDocumentType     string    `gorm:"size:50" json:"purchasing_document_type"`
	BlockingIndicator          bool      `gorm:"default:false" json:"blocking_indicator"`
}

type PurchaseOrderItem struct {
	PurchaseOrderNumber     int             `gorm:"primaryKey;autoIncrement:false" json:"purchase_order_number"`
	PurchaseOrderItemNumber int             `gorm:"primaryKey;autoIncrement:false" json:"purchase_order_item_number"`
	MaterialNumber          *int            `gorm:"index" json:"material_number"`
	Plant                   string          `gorm:"index;size:20" json:"plant"`
	Quantity                decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	ChangeDate              time.Time       `json:"change_date"`
	NetPrice                decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"net_price"`
}
