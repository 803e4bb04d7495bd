package workflow

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

// lessRawEvent is the deterministic event order inside a material+plant
// partition: timestamp first, then activity label, then the related object
// key, then the unifier emit sequence. Two events can only tie on the
// first three components; the sequence breaks the tie the same way on
// every run because the snapshot is loaded fully ordered.
func lessRawEvent(a, b models.RawEvent) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	if a.Activity != b.Activity {
		return a.Activity < b.Activity
	}
	if ak, bk := a.ObjectKey(), b.ObjectKey(); ak != bk {
		return ak < bk
	}
	return a.Sequence < b.Sequence
}

// BuildLedger partitions the unified events by material+plant, orders each
// partition, and fills in stock before/after as prefix sums of the signed
// quantity deltas. The first event of a partition starts from zero. The
// returned ledger is sorted by material, plant, then partition order.
func BuildLedger(events []models.RawEvent) []models.LedgerEvent {
	sorted := make([]models.RawEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.MaterialNumber != b.MaterialNumber {
			return a.MaterialNumber < b.MaterialNumber
		}
		if a.Plant != b.Plant {
			return a.Plant < b.Plant
		}
		return lessRawEvent(a, b)
	})

	ledger := make([]models.LedgerEvent, 0, len(sorted))
	var (
		current models.MaterialPlant
		balance decimal.Decimal
	)
	for i, e := range sorted {
		if i == 0 || e.Key() != current {
			current = e.Key()
			balance = decimal.Zero
		}
		before := balance
		balance = balance.Add(e.QuantityDelta)
		ledger = append(ledger, models.LedgerEvent{
			RawEvent:    e,
			StockBefore: before,
			StockAfter:  balance,
		})
	}
	return ledger
}

// NormalizeBalances shifts every balance of a partition up by the amount
// its minimum dips below zero. The simulated history may start mid-stream
// with no opening stock event, so raw prefix sums can go negative even
// though real inventory cannot; the shift preserves all relative deltas.
// Returns a new slice and records shifted partitions in the summary.
func NormalizeBalances(ledger []models.LedgerEvent, summary *RunSummary) []models.LedgerEvent {
	floors := make(map[models.MaterialPlant]decimal.Decimal)
	for _, e := range ledger {
		low := decimal.Min(e.StockBefore, e.StockAfter)
		if f, ok := floors[e.Key()]; !ok || low.LessThan(f) {
			floors[e.Key()] = low
		}
	}

	offsets := make(map[models.MaterialPlant]decimal.Decimal, len(floors))
	for mp, floor := range floors {
		if floor.IsNegative() {
			offsets[mp] = floor.Neg()
			summary.PartitionsShifted++
		}
	}
	summary.Partitions = len(floors)

	normalized := make([]models.LedgerEvent, len(ledger))
	copy(normalized, ledger)
	for i := range normalized {
		offset, ok := offsets[normalized[i].Key()]
		if !ok {
			continue
		}
		normalized[i].StockBefore = normalized[i].StockBefore.Add(offset)
		normalized[i].StockAfter = normalized[i].StockAfter.Add(offset)
	}
	return normalized
}

// BuildEventLog runs unify, ledger and normalization over one snapshot.
func BuildEventLog(snap *SourceSnapshot, logger *logrus.Logger, summary *RunSummary) []models.LedgerEvent {
	events := UnifyEvents(snap, logger, summary)
	ledger := NormalizeBalances(BuildLedger(events), summary)

	logger.WithFields(logrus.Fields{
		"run_id":             summary.RunId,
		"events":             len(ledger),
		"partitions":         summary.Partitions,
		"partitions_shifted": summary.PartitionsShifted,
		"malformed_rows":     summary.MalformedRows,
	}).Info("ocel.ledger.done")

	return ledger
}

// PassthroughLabels wraps ledger events with their original activity
// labels, for exports taken before reclassification.
func PassthroughLabels(ledger []models.LedgerEvent) []models.ClassifiedEvent {
	out := make([]models.ClassifiedEvent, 0, len(ledger))
	for _, e := range ledger {
		out = append(out, e.WithLabel(string(e.Activity)))
	}
	return out
}
