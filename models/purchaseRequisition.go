package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseRequisition struct {
	Client                          string          `gorm:"size:20" json:"client"`
	PurchaseDocumentNumber          int             `gorm:"index" json:"purchase_document_number"`
	ItemNumberOfPurchasingDocument  int             `json:"item_number_of_purchasing_document"`
	PurchaseRequisitionNumber       int             `gorm:"primaryKey" json:"purchase_requisition_number"`
	PurchaseRequisitionItem         int             `json:"purchase_requisition_item"`
	PurchaseRequisitionDate         time.Time       `json:"purchase_requisition_date"`
	DocumentType                    string          `gorm:"size:50" json:"document_type"`
	PurchasingDocumentCategory      string          `gorm:"size:50" json:"purchasing_document_category"`
	PlannedDeliveryTime             int             `json:"planned_delivery_time"`
	LatestPossibleGoodsReceipt      time.Time       `json:"latest_possible_goods_receipt"`
	Quantity                        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	UnitOfMeasure                   string          `gorm:"size:10" json:"unit_of_measure"`
}
