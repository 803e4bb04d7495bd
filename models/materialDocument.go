package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MaterialDocument struct {
	Client                   string          `gorm:"size:20" json:"client"`
	MaterialDocumentNumber   int             `gorm:"primaryKey;autoIncrement:false" json:"material_document_number"`
	MaterialDocumentYear     int             `gorm:"primaryKey;autoIncrement:false" json:"material_document_year"`
	LineItem                 int             `gorm:"primaryKey;autoIncrement:false" json:"line_item"`
	MaterialNumber           int             `gorm:"index" json:"material_number"`
	Plant                    string          `gorm:"size:20" json:"plant"`
	StorageLocation          string          `gorm:"size:20" json:"storage_location"`
	VendorsAccountNumber     int             `json:"vendors_account_number"`
	CustomerNumber           int             `json:"customer_number"`
	MovementType             MovementType    `gorm:"type:enum('Goods Receipt','Goods Issue')" json:"movement_type"`
	ReceivingPlant           string          `gorm:"size:20" json:"receiving_plant"`
	Quantity                 decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	PostingDateInTheDocument time.Time       `json:"posting_date_in_the_document"`
}
