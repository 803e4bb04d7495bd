package workflow

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

// UnifyEvents projects the five source categories into one flat event
// sequence. No ordering is imposed here beyond the deterministic emit
// order; sorting is the ledger's job.
//
// Join semantics follow the source tables' referential strength: the two
// "create item" projections need their parent document for the timestamp,
// so an orphaned item is skipped (and counted); a goods receipt resolves
// its supplier through a left join and is kept even when the referenced
// purchase order does not exist. Rows without a material never become
// events. Rows with an unusable timestamp or a negative movement quantity
// are malformed: excluded, counted and logged, never dropped silently.
func UnifyEvents(snap *SourceSnapshot, logger *logrus.Logger, summary *RunSummary) []models.RawEvent {
	poDocs := snap.purchaseOrderDocumentIndex()
	soDocs := snap.salesOrderDocumentIndex()

	events := make([]models.RawEvent, 0,
		len(snap.OrderSuggestions)+len(snap.PurchaseOrderItems)+len(snap.SalesOrderItems)+len(snap.GoodsMovements))

	emit := func(e models.RawEvent) {
		e.Sequence = len(events)
		events = append(events, e)
		summary.countEvent(e.Activity)
	}
	malformed := func(activity models.Activity, rowKey string, reason string) {
		summary.MalformedRows++
		logger.WithFields(logrus.Fields{
			"activity": string(activity),
			"row":      rowKey,
			"reason":   reason,
		}).Warn("ocel.unify.malformed_row")
	}

	// Create Purchase Suggestion Item
	for _, os := range snap.OrderSuggestions {
		if os.ArticleNumber == nil {
			continue
		}
		if os.Date.IsZero() {
			malformed(models.ActivityCreatePurchaseSuggestionItem,
				fmt.Sprintf("%d-%d", os.OrderNumber, os.OrderPosition), "missing suggestion date")
			continue
		}
		emit(models.RawEvent{
			Activity:       models.ActivityCreatePurchaseSuggestionItem,
			Timestamp:      os.Date,
			MaterialNumber: *os.ArticleNumber,
			Plant:          os.Plant,
			QuantityDelta:  decimal.Zero,
		})
	}

	// Create Purchase Order Item
	for _, poi := range snap.PurchaseOrderItems {
		if poi.MaterialNumber == nil {
			continue
		}
		itemId := fmt.Sprintf("%d-%d", poi.PurchaseOrderNumber, poi.PurchaseOrderItemNumber)
		doc, ok := poDocs[poi.PurchaseOrderNumber]
		if !ok {
			summary.OrphanedItems++
			continue
		}
		if doc.PurchaseOrderDate.IsZero() {
			malformed(models.ActivityCreatePurchaseOrderItem, itemId, "missing purchase order date")
			continue
		}
		supplier := strconv.Itoa(doc.AccountNumberOfVendor)
		emit(models.RawEvent{
			Activity:            models.ActivityCreatePurchaseOrderItem,
			Timestamp:           doc.PurchaseOrderDate,
			MaterialNumber:      *poi.MaterialNumber,
			Plant:               poi.Plant,
			PurchaseOrderItemId: &itemId,
			SupplierId:          &supplier,
			QuantityDelta:       decimal.Zero,
		})
	}

	// Goods Receipt
	for _, mv := range snap.GoodsMovements {
		if mv.MovementType != models.MovementTypeGoodsReceipt || mv.MaterialNumber == nil {
			continue
		}
		itemId := fmt.Sprintf("%d-%d", mv.PurchaseDocumentNumber, mv.LineItemInPurchaseDocument)
		if mv.DateOfThePostingInTheDocument.IsZero() {
			malformed(models.ActivityGoodsReceipt, itemId, "missing posting date")
			continue
		}
		if mv.Quantity.IsNegative() {
			malformed(models.ActivityGoodsReceipt, itemId, "negative movement quantity")
			continue
		}
		// Supplier resolves via left join: a dangling purchase document
		// reference keeps the event, with no supplier object.
		var supplier *string
		if doc, ok := poDocs[mv.PurchaseDocumentNumber]; ok {
			s := strconv.Itoa(doc.AccountNumberOfVendor)
			supplier = &s
		}
		emit(models.RawEvent{
			Activity:            models.ActivityGoodsReceipt,
			Timestamp:           mv.DateOfThePostingInTheDocument,
			MaterialNumber:      *mv.MaterialNumber,
			Plant:               mv.Plant,
			PurchaseOrderItemId: &itemId,
			SupplierId:          supplier,
			QuantityDelta:       mv.Quantity,
		})
	}

	// Create Sales Order Item
	for _, soi := range snap.SalesOrderItems {
		if soi.MaterialNumber == nil {
			continue
		}
		itemId := fmt.Sprintf("%d-%d", soi.SalesDocumentNumber, soi.ItemNumber)
		doc, ok := soDocs[soi.SalesDocumentNumber]
		if !ok {
			summary.OrphanedItems++
			continue
		}
		if doc.DocumentCreationDate.IsZero() {
			malformed(models.ActivityCreateSalesOrderItem, itemId, "missing document creation date")
			continue
		}
		customer := strconv.Itoa(doc.CustomerNumber)
		emit(models.RawEvent{
			Activity:         models.ActivityCreateSalesOrderItem,
			Timestamp:        doc.DocumentCreationDate,
			MaterialNumber:   *soi.MaterialNumber,
			Plant:            soi.Plant,
			SalesOrderItemId: &itemId,
			CustomerId:       &customer,
			QuantityDelta:    decimal.Zero,
		})
	}

	// Goods Issue
	for _, mv := range snap.GoodsMovements {
		if mv.MovementType != models.MovementTypeGoodsIssue || mv.MaterialNumber == nil {
			continue
		}
		rowKey := strconv.Itoa(mv.ID)
		if mv.DateOfThePostingInTheDocument.IsZero() {
			malformed(models.ActivityGoodsIssue, rowKey, "missing posting date")
			continue
		}
		if mv.Quantity.IsNegative() {
			malformed(models.ActivityGoodsIssue, rowKey, "negative movement quantity")
			continue
		}
		// The reference document number is a consumer proxy, not a true
		// customer key.
		customer := strconv.Itoa(mv.ReferenceDocumentNumber)
		emit(models.RawEvent{
			Activity:       models.ActivityGoodsIssue,
			Timestamp:      mv.DateOfThePostingInTheDocument,
			MaterialNumber: *mv.MaterialNumber,
			Plant:          mv.Plant,
			CustomerId:     &customer,
			QuantityDelta:  mv.Quantity.Neg(),
		})
	}

	return events
}
