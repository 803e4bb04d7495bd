package workflow

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

// transitionRule is one row of a reclassification decision table: a
// predicate over (stock before, stock after, SS, OS) and the label suffix
// it produces. Tables are evaluated in order, first match wins.
type transitionRule struct {
	match  func(before, after, ss, os decimal.Decimal) bool
	suffix string
}

// The tables below copy the boundary operators of the source rules
// exactly. They are deliberately asymmetric between activities (Goods
// Issue bounds "Normal" with before < OS, Create Sales Order Item uses
// before <= SS); do not "fix" the comparisons.
var reclassifyTables = map[models.Activity][]transitionRule{
	models.ActivityGoodsReceipt: {
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.LessThan(ss) && a.LessThan(ss)
		}, "Understock to Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.LessThan(ss) && a.GreaterThanOrEqual(ss) && a.LessThan(os)
		}, "Understock to Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.LessThan(ss) && a.GreaterThanOrEqual(os)
		}, "Understock to Overstock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os) && a.GreaterThanOrEqual(ss) && a.LessThan(os)
		}, "Normal to Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os) && a.GreaterThanOrEqual(os)
		}, "Normal to Overstock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(os) && a.GreaterThanOrEqual(os)
		}, "Overstock to Overstock"},
	},
	models.ActivityGoodsIssue: {
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.LessThan(ss) && a.LessThan(ss)
		}, "Understock to Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os) && a.LessThan(ss)
		}, "Normal to Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os) && a.GreaterThanOrEqual(ss) && a.LessThan(os)
		}, "Normal to Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(os) && a.GreaterThanOrEqual(ss) && a.LessThan(os)
		}, "Overstock to Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(os) && a.GreaterThanOrEqual(os)
		}, "Overstock to Overstock"},
	},
	models.ActivityCreateSalesOrderItem: {
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.LessThanOrEqual(ss) && a.LessThanOrEqual(ss)
		}, "Understock to Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os) && a.LessThanOrEqual(ss)
		}, "Normal to Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThan(ss) && a.LessThanOrEqual(ss)
		}, "Overstock to Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os) && a.GreaterThanOrEqual(ss) && a.LessThan(os)
		}, "Normal to Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(os) && a.GreaterThanOrEqual(ss) && a.LessThan(os)
		}, "Overstock to Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(os) && a.GreaterThanOrEqual(os)
		}, "Overstock to Overstock"},
	},
	// The two "create" intents classify on stock before alone.
	models.ActivityCreatePurchaseOrderItem: {
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.LessThan(ss)
		}, "Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os)
		}, "Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(os)
		}, "Overstock"},
	},
	models.ActivityCreatePurchaseSuggestionItem: {
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.LessThan(ss)
		}, "Understock"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(ss) && b.LessThan(os)
		}, "Normal"},
		{func(b, a, ss, os decimal.Decimal) bool {
			return b.GreaterThanOrEqual(os)
		}, "Overstock"},
	},
}

// classifyActivity returns the transition-qualified label for one event,
// or the original label when the activity has no table (already
// fine-grained labels fall through here) or no rule matches (unhandled
// boundary combinations are a defined fallback, not an error).
func classifyActivity(activity models.Activity, before, after, ss, os decimal.Decimal) (string, bool) {
	rules, ok := reclassifyTables[activity]
	if !ok {
		return string(activity), false
	}
	for _, rule := range rules {
		if rule.match(before, after, ss, os) {
			return fmt.Sprintf("%s (%s)", activity, rule.suffix), true
		}
	}
	return string(activity), false
}

// ReclassifyEvents joins each ledger event against its partition's policy
// thresholds and rewrites the activity label. Events whose partition has
// no thresholds pass through with the original label; so do events no rule
// matches. The ledger is not mutated; a labeled copy comes back.
func ReclassifyEvents(
	ledger []models.LedgerEvent,
	thresholds map[models.MaterialPlant]models.PolicyThresholds,
	logger *logrus.Logger,
	summary *RunSummary,
) []models.ClassifiedEvent {
	out := make([]models.ClassifiedEvent, 0, len(ledger))
	for _, e := range ledger {
		th, ok := thresholds[e.Key()]
		if !ok {
			summary.MissingThresholds++
			summary.PassedThrough++
			out = append(out, e.WithLabel(string(e.Activity)))
			continue
		}
		label, matched := classifyActivity(e.Activity, e.StockBefore, e.StockAfter, th.SafetyStock, th.Overstock)
		if matched {
			summary.Reclassified++
		} else {
			summary.PassedThrough++
		}
		out = append(out, e.WithLabel(label))
	}

	logger.WithFields(logrus.Fields{
		"run_id":             summary.RunId,
		"reclassified":       summary.Reclassified,
		"passed_through":     summary.PassedThrough,
		"missing_thresholds": summary.MissingThresholds,
	}).Info("ocel.reclassify.done")

	return out
}
