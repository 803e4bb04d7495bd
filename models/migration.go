package models

import (
	"log"

	"bitbucket.org/mmdatafocus/inventory_mining/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Material{},
		&SalesOrderDocument{}, &SalesOrderItem{},
		&PurchaseOrderDocument{}, &PurchaseOrderItem{},
		&GoodsMovement{},
		&OrderSuggestion{},
		&MaterialStock{},
		&PurchaseRequisition{},
		&MaterialDocument{},
		&SalesDocumentFlow{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
