package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsMovement is one row of the GoodsReceiptsAndIssues ledger. Receipts
// carry a reference to the purchase document and line item they fulfil;
// issues carry a reference document number standing in for the consumer.
type GoodsMovement struct {
	ID                                  int             `gorm:"primaryKey" json:"id"`
	Client                              string          `gorm:"size:20" json:"client"`
	PurchaseDocumentNumber              int             `gorm:"index" json:"purchase_document_number"`
	LineItemInPurchaseDocument          int             `json:"line_item_in_purchase_document"`
	SequentialNumberOfAccountAssignment int             `json:"sequential_number_of_account_assignment"`
	MovementType                        MovementType    `gorm:"type:enum('Goods Receipt','Goods Issue');index" json:"movement_type"`
	FiscalYear                          int             `json:"fiscal_year"`
	DocumentNumber                      int             `json:"document_number"`
	AccountingDocumentLine              int             `json:"accounting_document_line"`
	MaterialNumber                      *int            `gorm:"index" json:"material_number"`
	Plant                               string          `gorm:"index;size:20" json:"plant"`
	ReferenceDocumentNumber             int             `json:"reference_document_number"`
	DocumentDateInDocument              time.Time       `json:"document_date_in_document"`
	PostingDateInTheDocument            time.Time       `json:"posting_date_in_the_document"`
	DateOfThePostingInTheDocument       time.Time       `gorm:"index" json:"date_of_the_posting_in_the_document"`
	TimeOfThePostingInTheDocument       string          `gorm:"size:20" json:"time_of_the_posting_in_the_document"`
	Quantity                            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
}

func (GoodsMovement) TableName() string {
	return "goods_receipts_and_issues"
}
