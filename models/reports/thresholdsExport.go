package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

var thresholdsHeader = []string{
	"Material Number",
	"Plant",
	"Annual Demand (D_m)",
	"Average Daily Demand (d_m)",
	"Std Dev of Daily Demand (σ_m)",
	"Average Lead Time (l_m)",
	"EOQ",
	"Safety Stock (SS)",
	"Reorder Point (ROP)",
	"Overstock (OS)",
}

func thresholdsRecord(row models.PolicyThresholds) []string {
	return []string{
		materialObject(row.MaterialNumber),
		row.Plant,
		row.AnnualDemand.String(),
		row.AverageDailyDemand.String(),
		row.StddevDailyDemand.String(),
		row.AverageLeadTimeDays.String(),
		row.EOQ.String(),
		row.SafetyStock.String(),
		row.ReorderPoint.String(),
		row.Overstock.String(),
	}
}

func WritePolicyThresholdsCSV(w io.Writer, rows []models.PolicyThresholds) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(thresholdsHeader); err != nil {
		return fmt.Errorf("write thresholds header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(thresholdsRecord(row)); err != nil {
			return fmt.Errorf("write thresholds row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func WritePolicyThresholdsCSVFile(path string, rows []models.PolicyThresholds) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePolicyThresholdsCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}

// WritePolicyThresholdsXLSX writes the same table as a spreadsheet for the
// planners who review the policy numbers by hand.
func WritePolicyThresholdsXLSX(path string, rows []models.PolicyThresholds) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	header := make([]interface{}, len(thresholdsHeader))
	for i, h := range thresholdsHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	for i, row := range rows {
		record := thresholdsRecord(row)
		cells := make([]interface{}, len(record))
		cells[0] = record[0]
		cells[1] = record[1]
		for c := 2; c < len(record); c++ {
			// Numeric columns stay numeric in the sheet.
			v, ok := decimalCell(record[c])
			if ok {
				cells[c] = v
			} else {
				cells[c] = record[c]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func decimalCell(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
