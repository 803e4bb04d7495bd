package workflow

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
	"bitbucket.org/mmdatafocus/inventory_mining/utils"
)

// Inventory-policy constants. S and H are the fixed order cost and the
// holding cost per unit per year of the EOQ formula; z is the 95% service
// level factor for safety stock.
const (
	fixedOrderCost            = 100.0
	holdingCostPerUnitPerYear = 10.0
	serviceLevelZ             = 1.645
	defaultLeadTimeDays       = 7.0
	demandWindowDays          = 365
)

// demandStats holds the trailing-year daily-demand aggregates for one
// material+plant. The pointers are nil when the pair had no demand days at
// all, which selects the fallback constants downstream.
type demandStats struct {
	annualDemand decimal.Decimal
	avgDaily     *float64
	stddevDaily  *float64
}

// CollectMaterialPlants returns the sorted union of every material+plant
// pair appearing in purchase order items, goods movements, sales order
// items or order suggestions. Rows without a material do not name a pair.
func CollectMaterialPlants(snap *SourceSnapshot) []models.MaterialPlant {
	seen := make(map[models.MaterialPlant]struct{})

	for _, poi := range snap.PurchaseOrderItems {
		if poi.MaterialNumber != nil {
			seen[models.MaterialPlant{MaterialNumber: *poi.MaterialNumber, Plant: poi.Plant}] = struct{}{}
		}
	}
	for _, mv := range snap.GoodsMovements {
		if mv.MaterialNumber != nil {
			seen[models.MaterialPlant{MaterialNumber: *mv.MaterialNumber, Plant: mv.Plant}] = struct{}{}
		}
	}
	for _, soi := range snap.SalesOrderItems {
		if soi.MaterialNumber != nil {
			seen[models.MaterialPlant{MaterialNumber: *soi.MaterialNumber, Plant: soi.Plant}] = struct{}{}
		}
	}
	for _, os := range snap.OrderSuggestions {
		if os.ArticleNumber != nil {
			seen[models.MaterialPlant{MaterialNumber: *os.ArticleNumber, Plant: os.Plant}] = struct{}{}
		}
	}

	pairs := make([]models.MaterialPlant, 0, len(seen))
	for mp := range seen {
		pairs = append(pairs, mp)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].MaterialNumber != pairs[j].MaterialNumber {
			return pairs[i].MaterialNumber < pairs[j].MaterialNumber
		}
		return pairs[i].Plant < pairs[j].Plant
	})
	return pairs
}

// aggregateDailyDemand buckets trailing-year goods-issue quantities by
// material, plant and calendar day, then reduces each pair's buckets to
// annual demand, mean and standard deviation of the daily quantity.
func aggregateDailyDemand(snap *SourceSnapshot, asOf time.Time) map[models.MaterialPlant]demandStats {
	cutoff := utils.ToDate(asOf.AddDate(0, 0, -demandWindowDays))

	daily := make(map[models.MaterialPlant]map[string]decimal.Decimal)
	for _, mv := range snap.GoodsMovements {
		if mv.MovementType != models.MovementTypeGoodsIssue || mv.MaterialNumber == nil {
			continue
		}
		if mv.DateOfThePostingInTheDocument.Before(cutoff) {
			continue
		}
		mp := models.MaterialPlant{MaterialNumber: *mv.MaterialNumber, Plant: mv.Plant}
		if daily[mp] == nil {
			daily[mp] = make(map[string]decimal.Decimal)
		}
		day := utils.DayKey(mv.DateOfThePostingInTheDocument)
		daily[mp][day] = daily[mp][day].Add(mv.Quantity)
	}

	stats := make(map[models.MaterialPlant]demandStats, len(daily))
	for mp, days := range daily {
		annual := decimal.Zero
		var sum, sumSq float64
		for _, qty := range days {
			annual = annual.Add(qty)
			q := qty.InexactFloat64()
			sum += q
			sumSq += q * q
		}
		n := float64(len(days))
		mean := sum / n
		variance := sumSq/n - mean*mean
		stddev := math.Sqrt(math.Max(variance, 0))
		stats[mp] = demandStats{
			annualDemand: annual,
			avgDaily:     &mean,
			stddevDaily:  &stddev,
		}
	}
	return stats
}

// averageLeadTimes matches trailing-year goods receipts to their purchase
// order item (by purchase document number and line item) and the parent
// document's order date, and averages the non-negative receipt-minus-order
// intervals per material+plant. Negative intervals are data-entry
// anomalies and are discarded before averaging.
func averageLeadTimes(snap *SourceSnapshot, asOf time.Time) map[models.MaterialPlant]float64 {
	cutoff := utils.ToDate(asOf.AddDate(0, 0, -demandWindowDays))

	poDocs := snap.purchaseOrderDocumentIndex()
	poItems := make(map[[2]int]*models.PurchaseOrderItem, len(snap.PurchaseOrderItems))
	for i := range snap.PurchaseOrderItems {
		item := &snap.PurchaseOrderItems[i]
		poItems[[2]int{item.PurchaseOrderNumber, item.PurchaseOrderItemNumber}] = item
	}

	type acc struct {
		total float64
		count int
	}
	sums := make(map[models.MaterialPlant]*acc)

	for _, mv := range snap.GoodsMovements {
		if mv.MovementType != models.MovementTypeGoodsReceipt {
			continue
		}
		if mv.DateOfThePostingInTheDocument.IsZero() || mv.DateOfThePostingInTheDocument.Before(cutoff) {
			continue
		}
		item, ok := poItems[[2]int{mv.PurchaseDocumentNumber, mv.LineItemInPurchaseDocument}]
		if !ok || item.MaterialNumber == nil {
			continue
		}
		doc, ok := poDocs[item.PurchaseOrderNumber]
		if !ok || doc.PurchaseOrderDate.IsZero() {
			continue
		}
		days := utils.DaysBetween(doc.PurchaseOrderDate, mv.DateOfThePostingInTheDocument)
		if days < 0 {
			continue
		}
		mp := models.MaterialPlant{MaterialNumber: *item.MaterialNumber, Plant: item.Plant}
		if sums[mp] == nil {
			sums[mp] = &acc{}
		}
		sums[mp].total += days
		sums[mp].count++
	}

	leads := make(map[models.MaterialPlant]float64, len(sums))
	for mp, a := range sums {
		leads[mp] = a.total / float64(a.count)
	}
	return leads
}

// ComputePolicyThresholds derives one PolicyThresholds row for every
// material+plant pair in the snapshot, applying the fallback constants for
// pairs with missing or degenerate statistics:
//   - no demand at all            -> annual demand 0, EOQ 0
//   - zero/missing avg daily      -> 1.0 (stddev fallback keeps the raw avg)
//   - zero/missing stddev         -> 0.1 * avg daily demand
//   - zero/missing lead time      -> 7.0 days
//
// The fallbacks guarantee no division by zero and no negative square-root
// argument; every pair yields a fully-defined row.
func ComputePolicyThresholds(snap *SourceSnapshot, asOf time.Time) []models.PolicyThresholds {
	pairs := CollectMaterialPlants(snap)
	demand := aggregateDailyDemand(snap, asOf)
	leads := averageLeadTimes(snap, asOf)

	rows := make([]models.PolicyThresholds, 0, len(pairs))
	for _, mp := range pairs {
		ds := demand[mp]
		annual := ds.annualDemand

		avgFinal := 1.0
		if ds.avgDaily != nil && *ds.avgDaily != 0 {
			avgFinal = *ds.avgDaily
		}

		// The stddev fallback scales the raw average (not the 1.0
		// substitute), so a pair whose demand days all posted zero
		// quantity gets stddev 0, not 0.1.
		fallbackBase := 1.0
		if ds.avgDaily != nil {
			fallbackBase = *ds.avgDaily
		}
		stddevFinal := fallbackBase * 0.1
		if ds.stddevDaily != nil && *ds.stddevDaily != 0 {
			stddevFinal = *ds.stddevDaily
		}

		leadFinal := defaultLeadTimeDays
		if lt, ok := leads[mp]; ok && lt != 0 {
			leadFinal = lt
		}

		annualF := annual.InexactFloat64()
		eoq := 0.0
		if annualF > 0 {
			eoq = math.Sqrt((2 * annualF * fixedOrderCost) / holdingCostPerUnitPerYear)
		}
		ss := serviceLevelZ * stddevFinal * math.Sqrt(leadFinal)
		rop := avgFinal*leadFinal + ss

		eoqD := decimal.NewFromFloat(eoq).Round(2)
		ssD := decimal.NewFromFloat(ss).Round(2)

		rows = append(rows, models.PolicyThresholds{
			MaterialNumber:      mp.MaterialNumber,
			Plant:               mp.Plant,
			AnnualDemand:        annual,
			AverageDailyDemand:  decimal.NewFromFloat(avgFinal),
			StddevDailyDemand:   decimal.NewFromFloat(stddevFinal),
			AverageLeadTimeDays: decimal.NewFromFloat(leadFinal),
			EOQ:                 eoqD,
			SafetyStock:         ssD,
			ReorderPoint:        decimal.NewFromFloat(rop).Round(2),
			Overstock:           ssD.Add(eoqD),
		})
	}
	return rows
}

// ThresholdsByKey indexes threshold rows for the reclassifier's join.
func ThresholdsByKey(rows []models.PolicyThresholds) map[models.MaterialPlant]models.PolicyThresholds {
	idx := make(map[models.MaterialPlant]models.PolicyThresholds, len(rows))
	for _, row := range rows {
		idx[row.Key()] = row
	}
	return idx
}
