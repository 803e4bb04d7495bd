package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bitbucket.org/mmdatafocus/inventory_mining/config"
	"bitbucket.org/mmdatafocus/inventory_mining/models"
	"bitbucket.org/mmdatafocus/inventory_mining/workflow"
)

func main() {
	seed := flag.Int64("seed", 1, "RNG seed; the same seed reproduces the same database")
	horizonDays := flag.Int("horizon-days", 365, "History horizon in days")
	materials := flag.Int("materials", 100, "Number of materials")
	plants := flag.Int("plants", 5, "Number of plants")
	customers := flag.Int("customers", 50, "Number of customers")
	vendors := flag.Int("vendors", 30, "Number of vendors")
	salesOrders := flag.Int("sales-orders", 200, "Number of sales order documents")
	purchaseOrders := flag.Int("purchase-orders", 150, "Number of purchase order documents")
	movements := flag.Int("movements", 200, "Number of goods receipt/issue rows")
	materialDocuments := flag.Int("material-documents", 200, "Number of material documents")
	suggestions := flag.Int("suggestions", 100, "Number of order suggestions")
	requisitions := flag.Int("requisitions", 150, "Number of purchase requisitions")
	flows := flag.Int("flows", 200, "Number of sales document flows")
	skipMigrate := flag.Bool("skip-migrate", false, "Assume the schema already exists")
	flag.Parse()

	cfg := workflow.SimulationConfig{
		Seed:                 *seed,
		Now:                  time.Now().UTC(),
		HorizonDays:          *horizonDays,
		Materials:            *materials,
		Plants:               *plants,
		Customers:            *customers,
		Vendors:              *vendors,
		SalesOrders:          *salesOrders,
		PurchaseOrders:       *purchaseOrders,
		GoodsMovements:       *movements,
		MaterialDocuments:    *materialDocuments,
		OrderSuggestions:     *suggestions,
		PurchaseRequisitions: *requisitions,
		SalesDocumentFlows:   *flows,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid simulation config: %v\n", err)
		os.Exit(1)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}
	logger := config.GetLogger()

	if !*skipMigrate {
		models.MigrateTable()
	}

	if err := workflow.GenerateSimulation(db, logger, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate simulation: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("simulated inventory database populated (seed=%d, materials=%d, plants=%d)\n",
		cfg.Seed, cfg.Materials, cfg.Plants)
}
