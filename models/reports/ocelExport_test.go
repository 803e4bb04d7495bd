package reports

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
	"bitbucket.org/mmdatafocus/inventory_mining/utils"
)

func classifiedEvent(label string, ts time.Time, material int, plant string, before, after int64) models.ClassifiedEvent {
	return models.ClassifiedEvent{
		LedgerEvent: models.LedgerEvent{
			RawEvent: models.RawEvent{
				Activity:       models.Activity(label),
				Timestamp:      ts,
				MaterialNumber: material,
				Plant:          plant,
			},
			StockBefore: decimal.NewFromInt(before),
			StockAfter:  decimal.NewFromInt(after),
		},
		Label: label,
	}
}

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return records
}

func TestWriteOCELCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOCELCSV(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	records := readCSV(t, &buf)
	if len(records) != 1 {
		t.Fatalf("got %d records, want header only", len(records))
	}
	want := []string{
		"ocel:activity", "ocel:timestamp",
		"ocel:type:MAT", "ocel:type:PLA",
		"ocel:type:PO_ITEM", "ocel:type:SO_ITEM",
		"ocel:type:CUSTOMER", "ocel:type:SUPPLIER",
		"Stock Before", "Stock After",
		"ocel:type:MAT_PLA", "ocel:eid",
	}
	for i := range want {
		if records[0][i] != want[i] {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], want[i])
		}
	}
}

func TestWriteOCELCSVCellEncoding(t *testing.T) {
	ts := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	e := classifiedEvent("Goods Receipt (Understock to Normal)", ts, 12, "Plant1", 0, 50)
	e.PurchaseOrderItemId = utils.StrPtr("40-2")
	e.SupplierId = utils.StrPtr("12")

	var buf bytes.Buffer
	if err := WriteOCELCSV(&buf, []models.ClassifiedEvent{e}); err != nil {
		t.Fatalf("write: %v", err)
	}

	records := readCSV(t, &buf)
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	row := records[1]

	checks := map[int]string{
		0:  "Goods Receipt (Understock to Normal)",
		1:  "2026-01-12",
		2:  "['MAT-12']",
		3:  "['Plant1']",
		4:  "['PO_ITEM--40-2']",
		5:  "", // no sales order item
		6:  "", // no customer
		7:  "['SUPPLIER--12']",
		8:  "0",
		9:  "50",
		10: "['MAT-12_Plant1']",
		11: "e0",
	}
	for i, want := range checks {
		if row[i] != want {
			t.Errorf("cell %d = %q, want %q", i, row[i], want)
		}
	}
}

func TestWriteOCELCSVEventIdsFollowRowOrder(t *testing.T) {
	ts := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	events := []models.ClassifiedEvent{
		classifiedEvent("Goods Receipt", ts, 1, "Plant1", 0, 10),
		classifiedEvent("Goods Issue", ts.AddDate(0, 0, 1), 1, "Plant1", 10, 5),
		classifiedEvent("Goods Receipt", ts.AddDate(0, 0, 2), 1, "Plant1", 5, 15),
	}

	var buf bytes.Buffer
	if err := WriteOCELCSV(&buf, events); err != nil {
		t.Fatalf("write: %v", err)
	}

	records := readCSV(t, &buf)
	want := []string{"e0", "e1", "e2"}
	for i, eid := range want {
		got := records[i+1][len(records[i+1])-1]
		if got != eid {
			t.Errorf("row %d eid = %q, want %q", i, got, eid)
		}
	}
}

func TestWritePolicyThresholdsCSV(t *testing.T) {
	rows := []models.PolicyThresholds{
		{
			MaterialNumber:      7,
			Plant:               "Plant2",
			AnnualDemand:        decimal.NewFromInt(30),
			AverageDailyDemand:  decimal.NewFromInt(15),
			StddevDailyDemand:   decimal.NewFromInt(5),
			AverageLeadTimeDays: decimal.NewFromInt(7),
			EOQ:                 decimal.RequireFromString("24.49"),
			SafetyStock:         decimal.RequireFromString("21.76"),
			ReorderPoint:        decimal.RequireFromString("126.76"),
			Overstock:           decimal.RequireFromString("46.25"),
		},
	}

	var buf bytes.Buffer
	if err := WritePolicyThresholdsCSV(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	records := readCSV(t, &buf)
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	if records[0][0] != "Material Number" || records[0][9] != "Overstock (OS)" {
		t.Errorf("unexpected header: %v", records[0])
	}
	want := []string{"MAT-7", "Plant2", "30", "15", "5", "7", "24.49", "21.76", "126.76", "46.25"}
	for i := range want {
		if records[1][i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, records[1][i], want[i])
		}
	}
}

func TestDecimalCell(t *testing.T) {
	if v, ok := decimalCell("24.49"); !ok || v != 24.49 {
		t.Errorf("decimalCell(24.49) = %v, %v", v, ok)
	}
	if _, ok := decimalCell("Plant1"); ok {
		t.Error("decimalCell accepted a non-numeric cell")
	}
}
