package workflow

import (
	"fmt"

	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

// SourceSnapshot is the one-shot bulk read of every table the pipeline
// consumes. All downstream stages are pure functions over it; nothing ever
// writes back. Each table is loaded with a full ORDER BY so the unifier's
// emit order (the tie-break of last resort) is identical on every run.
type SourceSnapshot struct {
	PurchaseOrderDocuments []models.PurchaseOrderDocument
	PurchaseOrderItems     []models.PurchaseOrderItem
	SalesOrderDocuments    []models.SalesOrderDocument
	SalesOrderItems        []models.SalesOrderItem
	GoodsMovements         []models.GoodsMovement
	OrderSuggestions       []models.OrderSuggestion
}

func LoadSourceSnapshot(db *gorm.DB) (*SourceSnapshot, error) {
	if db == nil {
		return nil, fmt.Errorf("load snapshot: db is nil")
	}

	snap := &SourceSnapshot{}

	if err := db.Order("purchase_document_number").Find(&snap.PurchaseOrderDocuments).Error; err != nil {
		return nil, fmt.Errorf("load purchase order documents: %w", err)
	}
	if err := db.Order("purchase_order_number, purchase_order_item_number").Find(&snap.PurchaseOrderItems).Error; err != nil {
		return nil, fmt.Errorf("load purchase order items: %w", err)
	}
	if err := db.Order("sales_document_number").Find(&snap.SalesOrderDocuments).Error; err != nil {
		return nil, fmt.Errorf("load sales order documents: %w", err)
	}
	if err := db.Order("sales_document_number, item_number").Find(&snap.SalesOrderItems).Error; err != nil {
		return nil, fmt.Errorf("load sales order items: %w", err)
	}
	if err := db.Order("id").Find(&snap.GoodsMovements).Error; err != nil {
		return nil, fmt.Errorf("load goods movements: %w", err)
	}
	if err := db.Order("order_number, order_position").Find(&snap.OrderSuggestions).Error; err != nil {
		return nil, fmt.Errorf("load order suggestions: %w", err)
	}

	return snap, nil
}

// purchaseOrderDocumentIndex keys the PO documents by document number for
// the unifier's and the policy engine's joins.
func (s *SourceSnapshot) purchaseOrderDocumentIndex() map[int]*models.PurchaseOrderDocument {
	idx := make(map[int]*models.PurchaseOrderDocument, len(s.PurchaseOrderDocuments))
	for i := range s.PurchaseOrderDocuments {
		doc := &s.PurchaseOrderDocuments[i]
		idx[doc.PurchaseDocumentNumber] = doc
	}
	return idx
}

func (s *SourceSnapshot) salesOrderDocumentIndex() map[int]*models.SalesOrderDocument {
	idx := make(map[int]*models.SalesOrderDocument, len(s.SalesOrderDocuments))
	for i := range s.SalesOrderDocuments {
		doc := &s.SalesOrderDocuments[i]
		idx[doc.SalesDocumentNumber] = doc
	}
	return idx
}
