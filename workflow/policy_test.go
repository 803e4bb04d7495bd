package workflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
	"bitbucket.org/mmdatafocus/inventory_mining/utils"
)

func issueMovement(material int, plant string, posted time.Time, qty int64) models.GoodsMovement {
	return models.GoodsMovement{
		MovementType:                  models.MovementTypeGoodsIssue,
		MaterialNumber:                utils.IntPtr(material),
		Plant:                         plant,
		DateOfThePostingInTheDocument: posted,
		Quantity:                      decimal.NewFromInt(qty),
	}
}

func receiptMovement(material int, plant string, posted time.Time, qty int64, poNumber, poItem int) models.GoodsMovement {
	return models.GoodsMovement{
		MovementType:                  models.MovementTypeGoodsReceipt,
		MaterialNumber:                utils.IntPtr(material),
		Plant:                         plant,
		DateOfThePostingInTheDocument: posted,
		Quantity:                      decimal.NewFromInt(qty),
		PurchaseDocumentNumber:        poNumber,
		LineItemInPurchaseDocument:    poItem,
	}
}

func TestCollectMaterialPlantsUnion(t *testing.T) {
	snap := &SourceSnapshot{
		PurchaseOrderItems: []models.PurchaseOrderItem{
			{PurchaseOrderNumber: 1, PurchaseOrderItemNumber: 1, MaterialNumber: utils.IntPtr(3), Plant: "Plant1"},
			{PurchaseOrderNumber: 1, PurchaseOrderItemNumber: 2, MaterialNumber: nil, Plant: "Plant1"},
		},
		SalesOrderItems: []models.SalesOrderItem{
			{SalesDocumentNumber: 1, ItemNumber: 1, MaterialNumber: utils.IntPtr(1), Plant: "Plant2"},
		},
		GoodsMovements: []models.GoodsMovement{
			issueMovement(3, "Plant1", time.Now(), 5),
			issueMovement(2, "Plant1", time.Now(), 5),
		},
		OrderSuggestions: []models.OrderSuggestion{
			{OrderNumber: 1, OrderPosition: 1, ArticleNumber: utils.IntPtr(1), Plant: "Plant1"},
		},
	}

	pairs := CollectMaterialPlants(snap)

	want := []models.MaterialPlant{
		{MaterialNumber: 1, Plant: "Plant1"},
		{MaterialNumber: 1, Plant: "Plant2"},
		{MaterialNumber: 2, Plant: "Plant1"},
		{MaterialNumber: 3, Plant: "Plant1"},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d: %v", len(pairs), len(want), pairs)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}
}

func TestThresholdsFallbacksForPairWithoutHistory(t *testing.T) {
	asOf := day(t, "2026-08-01")
	snap := &SourceSnapshot{
		PurchaseOrderItems: []models.PurchaseOrderItem{
			{PurchaseOrderNumber: 1, PurchaseOrderItemNumber: 1, MaterialNumber: utils.IntPtr(7), Plant: "Plant1"},
		},
	}

	rows := ComputePolicyThresholds(snap, asOf)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]

	if !row.AnnualDemand.IsZero() {
		t.Errorf("annual demand = %s, want 0", row.AnnualDemand)
	}
	if !row.EOQ.IsZero() {
		t.Errorf("EOQ = %s, want 0 for zero annual demand", row.EOQ)
	}
	if row.AverageDailyDemand.String() != "1" {
		t.Errorf("avg daily demand = %s, want fallback 1", row.AverageDailyDemand)
	}
	if row.StddevDailyDemand.String() != "0.1" {
		t.Errorf("stddev = %s, want fallback 0.1", row.StddevDailyDemand)
	}
	if row.AverageLeadTimeDays.String() != "7" {
		t.Errorf("lead time = %s, want fallback 7", row.AverageLeadTimeDays)
	}
	// SS = 1.645 * 0.1 * sqrt(7), rounded to 2dp.
	if row.SafetyStock.String() != "0.44" {
		t.Errorf("safety stock = %s, want 0.44", row.SafetyStock)
	}
	if !row.Overstock.Equal(row.SafetyStock) {
		t.Errorf("overstock = %s, want SS when EOQ is 0", row.Overstock)
	}
}

func TestThresholdsZeroQuantityDemandDaysGiveZeroSafetyStock(t *testing.T) {
	// A pair whose demand days all posted zero quantity has avg 0 and
	// stddev 0; the stddev fallback scales the raw average, so SS and OS
	// collapse to 0 alongside EOQ.
	asOf := day(t, "2026-08-01")
	snap := &SourceSnapshot{
		GoodsMovements: []models.GoodsMovement{
			issueMovement(5, "Plant1", day(t, "2026-07-01"), 0),
			issueMovement(5, "Plant1", day(t, "2026-07-02"), 0),
		},
	}

	rows := ComputePolicyThresholds(snap, asOf)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if !row.EOQ.IsZero() {
		t.Errorf("EOQ = %s, want 0", row.EOQ)
	}
	if !row.SafetyStock.IsZero() {
		t.Errorf("SS = %s, want 0", row.SafetyStock)
	}
	if !row.Overstock.IsZero() {
		t.Errorf("OS = %s, want 0", row.Overstock)
	}
}

func TestThresholdsDemandStatistics(t *testing.T) {
	asOf := day(t, "2026-08-01")
	snap := &SourceSnapshot{
		GoodsMovements: []models.GoodsMovement{
			issueMovement(9, "Plant2", day(t, "2026-06-01"), 10),
			issueMovement(9, "Plant2", day(t, "2026-06-02"), 20),
			// Same day as the first issue; buckets into it.
			issueMovement(9, "Plant2", day(t, "2026-06-01"), 0),
			// Outside the trailing year; must not count.
			issueMovement(9, "Plant2", day(t, "2024-01-01"), 1000),
		},
	}

	rows := ComputePolicyThresholds(snap, asOf)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]

	if row.AnnualDemand.String() != "30" {
		t.Errorf("annual demand = %s, want 30", row.AnnualDemand)
	}
	if row.AverageDailyDemand.String() != "15" {
		t.Errorf("avg daily demand = %s, want 15", row.AverageDailyDemand)
	}
	if row.StddevDailyDemand.String() != "5" {
		t.Errorf("stddev = %s, want 5", row.StddevDailyDemand)
	}
	// EOQ = sqrt(2*30*100/10) = sqrt(600) = 24.49 at 2dp.
	if row.EOQ.String() != "24.49" {
		t.Errorf("EOQ = %s, want 24.49", row.EOQ)
	}
	// Lead time falls back to 7; SS = 1.645*5*sqrt(7) = 21.76 at 2dp.
	if row.SafetyStock.String() != "21.76" {
		t.Errorf("SS = %s, want 21.76", row.SafetyStock)
	}
	if row.Overstock.String() != "46.25" {
		t.Errorf("OS = %s, want 46.25", row.Overstock)
	}
	// ROP = 15*7 + 21.7613... = 126.76 at 2dp.
	if row.ReorderPoint.String() != "126.76" {
		t.Errorf("ROP = %s, want 126.76", row.ReorderPoint)
	}
}

func TestLeadTimeAveragingDiscardsNegatives(t *testing.T) {
	asOf := day(t, "2026-08-01")
	snap := &SourceSnapshot{
		PurchaseOrderDocuments: []models.PurchaseOrderDocument{
			{PurchaseDocumentNumber: 1, PurchaseOrderDate: day(t, "2026-05-01"), AccountNumberOfVendor: 4},
			{PurchaseDocumentNumber: 2, PurchaseOrderDate: day(t, "2026-06-20"), AccountNumberOfVendor: 4},
		},
		PurchaseOrderItems: []models.PurchaseOrderItem{
			{PurchaseOrderNumber: 1, PurchaseOrderItemNumber: 1, MaterialNumber: utils.IntPtr(2), Plant: "Plant1"},
			{PurchaseOrderNumber: 2, PurchaseOrderItemNumber: 1, MaterialNumber: utils.IntPtr(2), Plant: "Plant1"},
		},
		GoodsMovements: []models.GoodsMovement{
			// 4 days and 6 days of lead time.
			receiptMovement(2, "Plant1", day(t, "2026-05-05"), 10, 1, 1),
			receiptMovement(2, "Plant1", day(t, "2026-05-07"), 10, 1, 1),
			// Receipt before the order date: data anomaly, discarded.
			receiptMovement(2, "Plant1", day(t, "2026-06-10"), 10, 2, 1),
		},
	}

	rows := ComputePolicyThresholds(snap, asOf)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].AverageLeadTimeDays.String() != "5" {
		t.Errorf("lead time = %s, want 5", rows[0].AverageLeadTimeDays)
	}
}

func TestThresholdInvariants(t *testing.T) {
	asOf := day(t, "2026-08-01")
	snapshots := []*SourceSnapshot{
		{PurchaseOrderItems: []models.PurchaseOrderItem{
			{PurchaseOrderNumber: 1, PurchaseOrderItemNumber: 1, MaterialNumber: utils.IntPtr(1), Plant: "Plant1"},
		}},
		{GoodsMovements: []models.GoodsMovement{
			issueMovement(1, "Plant1", day(t, "2026-07-01"), 0),
		}},
		{GoodsMovements: []models.GoodsMovement{
			issueMovement(1, "Plant1", day(t, "2026-07-01"), 40),
			issueMovement(1, "Plant1", day(t, "2026-07-08"), 60),
		}},
	}

	for i, snap := range snapshots {
		for _, row := range ComputePolicyThresholds(snap, asOf) {
			if row.EOQ.IsNegative() {
				t.Errorf("snapshot %d: EOQ = %s, want >= 0", i, row.EOQ)
			}
			if row.SafetyStock.IsNegative() {
				t.Errorf("snapshot %d: SS = %s, want >= 0", i, row.SafetyStock)
			}
			if row.Overstock.LessThan(row.SafetyStock) {
				t.Errorf("snapshot %d: OS = %s < SS = %s", i, row.Overstock, row.SafetyStock)
			}
		}
	}
}
