package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawEvent is one unified business event projected out of the source
// tables. Activity is the variant tag; the optional identifiers are only
// set for activities that naturally carry them (a goods issue has a
// customer reference, never a supplier, and so on). QuantityDelta is
// signed: positive for receipts, negative for issues, zero for the two
// "create" activities, which record intent rather than stock movement.
type RawEvent struct {
	Activity            Activity
	Timestamp           time.Time
	MaterialNumber      int
	Plant               string
	PurchaseOrderItemId *string
	SalesOrderItemId    *string
	CustomerId          *string
	SupplierId          *string
	QuantityDelta       decimal.Decimal
	// Sequence is the unifier emit order, used as the tie-break of last
	// resort so equal-timestamp events order the same way on every run.
	Sequence int
}

func (e RawEvent) Key() MaterialPlant {
	return MaterialPlant{MaterialNumber: e.MaterialNumber, Plant: e.Plant}
}

// ObjectKey returns the activity-specific related identifier, or "" when
// the event carries none. Participates in the deterministic sort order.
func (e RawEvent) ObjectKey() string {
	switch {
	case e.PurchaseOrderItemId != nil:
		return *e.PurchaseOrderItemId
	case e.SalesOrderItemId != nil:
		return *e.SalesOrderItemId
	case e.CustomerId != nil:
		return *e.CustomerId
	}
	return ""
}

// LedgerEvent is a RawEvent with its running balances filled in.
type LedgerEvent struct {
	RawEvent
	StockBefore decimal.Decimal
	StockAfter  decimal.Decimal
}

// WithLabel produces the labeled copy used on the output side; the ledger
// itself is never rewritten in place.
func (e LedgerEvent) WithLabel(label string) ClassifiedEvent {
	return ClassifiedEvent{LedgerEvent: e, Label: label}
}

// ClassifiedEvent is a LedgerEvent with its final activity label. Label
// equals string(Activity) when no reclassification rule matched or the
// partition had no thresholds.
type ClassifiedEvent struct {
	LedgerEvent
	Label string
}
