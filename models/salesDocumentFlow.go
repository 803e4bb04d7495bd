package models

import (
	"time"
)

type SalesDocumentFlow struct {
	Client                               string    `gorm:"size:20" json:"client"`
	SalesDocument                        int       `gorm:"primaryKey;autoIncrement:false" json:"sales_document"`
	SalesDocumentItem                    int       `gorm:"primaryKey;autoIncrement:false" json:"sales_document_item"`
	SubsequentSalesDocument              int       `gorm:"primaryKey;autoIncrement:false" json:"subsequent_sales_document"`
	SubsequentSalesDocumentItem          int       `gorm:"primaryKey;autoIncrement:false" json:"subsequent_sales_document_item"`
	DocumentCategoryOfSubsequentDocument string    `gorm:"size:50" json:"document_category_of_subsequent_document"`
	DocumentCategoryOfPrecedingDocument  string    `gorm:"size:50" json:"document_category_of_preceding_document"`
	DocumentDate                         time.Time `json:"document_date"`
}
