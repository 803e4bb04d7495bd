package workflow

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func testSimulationConfig() SimulationConfig {
	cfg := DefaultSimulationConfig()
	cfg.Now = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	cfg.Materials = 10
	cfg.Plants = 2
	cfg.Customers = 5
	cfg.Vendors = 3
	cfg.SalesOrders = 8
	cfg.PurchaseOrders = 6
	cfg.GoodsMovements = 20
	cfg.MaterialDocuments = 5
	cfg.OrderSuggestions = 4
	cfg.PurchaseRequisitions = 5
	cfg.SalesDocumentFlows = 10
	return cfg
}

func TestSimulationConfigValidate(t *testing.T) {
	cfg := testSimulationConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.Materials = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero materials accepted")
	}

	cfg = testSimulationConfig()
	cfg.HorizonDays = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative horizon accepted")
	}

	// The optional tables may legitimately be empty.
	cfg = testSimulationConfig()
	cfg.MaterialDocuments = 0
	cfg.PurchaseRequisitions = 0
	cfg.SalesDocumentFlows = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero optional tables rejected: %v", err)
	}
}

func TestBuildSimulationDatasetIsDeterministic(t *testing.T) {
	cfg := testSimulationConfig()

	a := buildSimulationDataset(rand.New(rand.NewSource(cfg.Seed)), cfg)
	b := buildSimulationDataset(rand.New(rand.NewSource(cfg.Seed)), cfg)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different datasets")
	}

	c := buildSimulationDataset(rand.New(rand.NewSource(cfg.Seed+1)), cfg)
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical datasets")
	}
}

func TestBuildSimulationDatasetCardinalities(t *testing.T) {
	cfg := testSimulationConfig()
	ds := buildSimulationDataset(rand.New(rand.NewSource(cfg.Seed)), cfg)

	if got := len(ds.Materials); got != cfg.Materials {
		t.Errorf("materials = %d, want %d", got, cfg.Materials)
	}
	if got := len(ds.SalesOrderDocuments); got != cfg.SalesOrders {
		t.Errorf("sales order documents = %d, want %d", got, cfg.SalesOrders)
	}
	if got := len(ds.PurchaseOrderDocuments); got != cfg.PurchaseOrders {
		t.Errorf("purchase order documents = %d, want %d", got, cfg.PurchaseOrders)
	}
	if got := len(ds.GoodsMovements); got != cfg.GoodsMovements {
		t.Errorf("goods movements = %d, want %d", got, cfg.GoodsMovements)
	}
	if got := len(ds.OrderSuggestions); got != cfg.OrderSuggestions {
		t.Errorf("order suggestions = %d, want %d", got, cfg.OrderSuggestions)
	}
	if got := len(ds.SalesDocumentFlows); got != cfg.SalesDocumentFlows {
		t.Errorf("sales document flows = %d, want %d", got, cfg.SalesDocumentFlows)
	}
	if got := len(ds.MaterialStocks); got != cfg.Materials {
		t.Errorf("material stocks = %d, want one per material, got %d", got, cfg.Materials)
	}

	// Every document carries 1 to 5 items.
	if n := len(ds.SalesOrderItems); n < cfg.SalesOrders || n > cfg.SalesOrders*5 {
		t.Errorf("sales order items = %d, want within [%d, %d]", n, cfg.SalesOrders, cfg.SalesOrders*5)
	}
	if n := len(ds.PurchaseOrderItems); n < cfg.PurchaseOrders || n > cfg.PurchaseOrders*5 {
		t.Errorf("purchase order items = %d, want within [%d, %d]", n, cfg.PurchaseOrders, cfg.PurchaseOrders*5)
	}
}

func TestBuildSimulationDatasetReferentialBounds(t *testing.T) {
	cfg := testSimulationConfig()
	ds := buildSimulationDataset(rand.New(rand.NewSource(cfg.Seed)), cfg)

	horizon := cfg.Now.AddDate(0, 0, -cfg.HorizonDays)
	for _, doc := range ds.SalesOrderDocuments {
		if doc.CustomerNumber < 1 || doc.CustomerNumber > cfg.Customers {
			t.Fatalf("customer %d out of range", doc.CustomerNumber)
		}
		if doc.DocumentCreationDate.Before(horizon) || doc.DocumentCreationDate.After(cfg.Now) {
			t.Fatalf("creation date %s outside the horizon", doc.DocumentCreationDate)
		}
	}
	for _, doc := range ds.PurchaseOrderDocuments {
		if doc.AccountNumberOfVendor < 1 || doc.AccountNumberOfVendor > cfg.Vendors {
			t.Fatalf("vendor %d out of range", doc.AccountNumberOfVendor)
		}
	}
	for _, item := range ds.SalesOrderItems {
		if item.MaterialNumber == nil || *item.MaterialNumber < 1 || *item.MaterialNumber > cfg.Materials {
			t.Fatalf("sales item material %v out of range", item.MaterialNumber)
		}
	}
	for _, mv := range ds.GoodsMovements {
		if mv.PurchaseDocumentNumber < 1 || mv.PurchaseDocumentNumber > cfg.PurchaseOrders {
			t.Fatalf("movement purchase document %d out of range", mv.PurchaseDocumentNumber)
		}
		if mv.Quantity.IsNegative() || mv.Quantity.IsZero() {
			t.Fatalf("movement quantity %s, want positive", mv.Quantity)
		}
	}
}

func TestBuildSimulationDatasetFlowKeysUnique(t *testing.T) {
	cfg := testSimulationConfig()
	cfg.SalesDocumentFlows = 200
	ds := buildSimulationDataset(rand.New(rand.NewSource(cfg.Seed)), cfg)

	type flowKey struct {
		doc, item, subDoc, subItem int
	}
	seen := make(map[flowKey]bool, len(ds.SalesDocumentFlows))
	for _, flow := range ds.SalesDocumentFlows {
		k := flowKey{flow.SalesDocument, flow.SalesDocumentItem,
			flow.SubsequentSalesDocument, flow.SubsequentSalesDocumentItem}
		if seen[k] {
			t.Fatalf("duplicate flow key %+v", k)
		}
		seen[k] = true
	}
	if len(ds.SalesDocumentFlows) != cfg.SalesDocumentFlows {
		t.Errorf("flows = %d, want %d", len(ds.SalesDocumentFlows), cfg.SalesDocumentFlows)
	}
}
