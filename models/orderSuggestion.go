package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSuggestion struct {
	OrderNumber   int             `gorm:"primaryKey;autoIncrement:false" json:"order_number"`
	OrderPosition int             `gorm:"primaryKey;autoIncrement:false" json:"order_position"`
	ArticleNumber *int            `gorm:"index" json:"article_number"`
	OrderQuantity decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"order_quantity"`
	Date          time.Time       `json:"date"`
	OrderDate     time.Time       `json:"order_date"`
	DeliveryDate  time.Time       `json:"delivery_date"`
	Plant         string          `gorm:"index;size:20" json:"plant"`
}
