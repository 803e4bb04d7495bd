package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

// OCEL CSV contract. Object columns are multi-valued by convention
// downstream, so each identifier is serialized as a single-element list
// (python-style, single quotes); missing identifiers stay empty rather
// than becoming empty lists. Non-MAT/PLA objects carry their type as a
// prefix so identifiers from different tables cannot collide.
var ocelHeader = []string{
	"ocel:activity",
	"ocel:timestamp",
	"ocel:type:MAT",
	"ocel:type:PLA",
	"ocel:type:PO_ITEM",
	"ocel:type:SO_ITEM",
	"ocel:type:CUSTOMER",
	"ocel:type:SUPPLIER",
	"Stock Before",
	"Stock After",
	"ocel:type:MAT_PLA",
	"ocel:eid",
}

const ocelTimestampLayout = "2006-01-02"

func listCell(value string) string {
	return "['" + value + "']"
}

func typedCell(objType string, id *string) string {
	if id == nil {
		return ""
	}
	return listCell(objType + "--" + *id)
}

func materialObject(materialNumber int) string {
	return "MAT-" + strconv.Itoa(materialNumber)
}

// WriteOCELCSV writes the classified event log in the OCEL CSV layout the
// downstream process-mining tooling consumes.
func WriteOCELCSV(w io.Writer, events []models.ClassifiedEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ocelHeader); err != nil {
		return fmt.Errorf("write ocel header: %w", err)
	}

	for i, e := range events {
		mat := materialObject(e.MaterialNumber)
		record := []string{
			e.Label,
			e.Timestamp.UTC().Format(ocelTimestampLayout),
			listCell(mat),
			listCell(e.Plant),
			typedCell("PO_ITEM", e.PurchaseOrderItemId),
			typedCell("SO_ITEM", e.SalesOrderItemId),
			typedCell("CUSTOMER", e.CustomerId),
			typedCell("SUPPLIER", e.SupplierId),
			e.StockBefore.String(),
			e.StockAfter.String(),
			listCell(mat + "_" + e.Plant),
			"e" + strconv.Itoa(i),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write ocel row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteOCELCSVFile(path string, events []models.ClassifiedEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteOCELCSV(f, events); err != nil {
		return err
	}
	return f.Close()
}
