package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/inventory_mining/config"
	"bitbucket.org/mmdatafocus/inventory_mining/models/reports"
	"bitbucket.org/mmdatafocus/inventory_mining/workflow"
)

// Computes the inventory-policy thresholds per material+plant, rebuilds
// the event log from the same snapshot, and writes the classified OCEL CSV
// plus the thresholds table.
func main() {
	out := flag.String("out", "post_ocel_inventory_management.csv", "Classified event log CSV path")
	thresholdsOut := flag.String("thresholds-out", "inventory_policy_parameters.csv", "Thresholds CSV path")
	thresholdsXLSX := flag.String("thresholds-xlsx", "", "Optional thresholds XLSX path")
	asOfStr := flag.String("as-of", "", "Optional statistics reference date (YYYY-MM-DD, default now)")
	flag.Parse()

	asOf := time.Now().UTC()
	if strings.TrimSpace(*asOfStr) != "" {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*asOfStr))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid as-of date: %v\n", err)
			os.Exit(1)
		}
		asOf = d
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}
	logger := config.GetLogger()

	snap, err := workflow.LoadSourceSnapshot(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
		os.Exit(1)
	}

	summary := workflow.NewRunSummary()
	thresholds := workflow.ComputePolicyThresholds(snap, asOf)
	ledger := workflow.BuildEventLog(snap, logger, summary)
	classified := workflow.ReclassifyEvents(ledger, workflow.ThresholdsByKey(thresholds), logger, summary)

	if err := reports.WritePolicyThresholdsCSVFile(*thresholdsOut, thresholds); err != nil {
		fmt.Fprintf(os.Stderr, "write thresholds: %v\n", err)
		os.Exit(1)
	}
	if strings.TrimSpace(*thresholdsXLSX) != "" {
		if err := reports.WritePolicyThresholdsXLSX(*thresholdsXLSX, thresholds); err != nil {
			fmt.Fprintf(os.Stderr, "write thresholds xlsx: %v\n", err)
			os.Exit(1)
		}
	}
	if err := reports.WriteOCELCSVFile(*out, classified); err != nil {
		fmt.Fprintf(os.Stderr, "write classified event log: %v\n", err)
		os.Exit(1)
	}

	logger.WithFields(summary.LogFields()).Info("ocel.postprocess.done")
	fmt.Printf("classified event log written to %s (%d events, %d reclassified, %d passed through)\n",
		*out, len(classified), summary.Reclassified, summary.PassedThrough)
	fmt.Printf("policy thresholds written to %s (%d material-plant pairs)\n",
		*thresholdsOut, len(thresholds))
}
