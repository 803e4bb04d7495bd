package models

// MovementType distinguishes the two directions a goods movement can take.
type MovementType string

const (
	MovementTypeGoodsReceipt MovementType = "Goods Receipt"
	MovementTypeGoodsIssue   MovementType = "Goods Issue"
)

// Activity is the business action a unified event represents. The five
// values below are the coarse labels; the reclassifier rewrites them into
// transition-qualified labels such as "Goods Receipt (Understock to Normal)".
type Activity string

const (
	ActivityCreatePurchaseSuggestionItem Activity = "Create Purchase Suggestion Item"
	ActivityCreatePurchaseOrderItem      Activity = "Create Purchase Order Item"
	ActivityGoodsReceipt                 Activity = "Goods Receipt"
	ActivityCreateSalesOrderItem         Activity = "Create Sales Order Item"
	ActivityGoodsIssue                   Activity = "Goods Issue"
)

type MaterialType string

const (
	MaterialTypeRaw          MaterialType = "RAW"
	MaterialTypeFinished     MaterialType = "FINISHED"
	MaterialTypeSemiFinished MaterialType = "SEMIFINISHED"
)
