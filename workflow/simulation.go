package workflow

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
	"bitbucket.org/mmdatafocus/inventory_mining/utils"
)

// SimulationConfig sizes the generated transaction history. Defaults match
// the reference dataset; all counts are overridable per run. The same seed
// always produces the same database.
type SimulationConfig struct {
	Seed                 int64
	Now                  time.Time
	HorizonDays          int `validate:"min=1"`
	Materials            int `validate:"min=1"`
	Plants               int `validate:"min=1"`
	Customers            int `validate:"min=1"`
	Vendors              int `validate:"min=1"`
	SalesOrders          int `validate:"min=1"`
	PurchaseOrders       int `validate:"min=1"`
	GoodsMovements       int `validate:"min=1"`
	MaterialDocuments    int `validate:"min=0"`
	OrderSuggestions     int `validate:"min=1"`
	PurchaseRequisitions int `validate:"min=0"`
	SalesDocumentFlows   int `validate:"min=0"`
}

func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Seed:                 1,
		Now:                  time.Now().UTC(),
		HorizonDays:          365,
		Materials:            100,
		Plants:               5,
		Customers:            50,
		Vendors:              30,
		SalesOrders:          200,
		PurchaseOrders:       150,
		GoodsMovements:       200,
		MaterialDocuments:    200,
		OrderSuggestions:     100,
		PurchaseRequisitions: 150,
		SalesDocumentFlows:   200,
	}
}

func (cfg SimulationConfig) Validate() error {
	return validator.New().Struct(cfg)
}

// simulationDataset is the fully built in-memory dataset, so generation is
// a pure function of (config, seed) and insertion is a separate concern.
type simulationDataset struct {
	Materials              []models.Material
	SalesOrderDocuments    []models.SalesOrderDocument
	SalesOrderItems        []models.SalesOrderItem
	PurchaseOrderDocuments []models.PurchaseOrderDocument
	PurchaseOrderItems     []models.PurchaseOrderItem
	GoodsMovements         []models.GoodsMovement
	MaterialDocuments      []models.MaterialDocument
	MaterialStocks         []models.MaterialStock
	OrderSuggestions       []models.OrderSuggestion
	PurchaseRequisitions   []models.PurchaseRequisition
	SalesDocumentFlows     []models.SalesDocumentFlow
}

func pastDate(r *rand.Rand, now time.Time, horizonDays int) time.Time {
	return utils.ToDate(now.AddDate(0, 0, -r.Intn(horizonDays+1)))
}

func roundedUniform(r *rand.Rand, lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + r.Float64()*(hi-lo)).Round(2)
}

func plantName(r *rand.Rand, plants int) string {
	return fmt.Sprintf("Plant%d", 1+r.Intn(plants))
}

func buildSimulationDataset(r *rand.Rand, cfg SimulationConfig) *simulationDataset {
	ds := &simulationDataset{}

	materialTypes := []models.MaterialType{models.MaterialTypeRaw, models.MaterialTypeFinished, models.MaterialTypeSemiFinished}
	sectors := []string{"Automotive", "Electronics", "Pharmaceutical"}
	groups := []string{"GroupA", "GroupB", "GroupC"}
	valuationClasses := []string{"ValClass1", "ValClass2", "ValClass3"}
	transportGroups := []string{"TG1", "TG2", "TG3"}

	for i := 1; i <= cfg.Materials; i++ {
		gross := roundedUniform(r, 1.0, 100.0)
		net := gross.Mul(decimal.NewFromFloat(0.8 + r.Float64()*0.2)).Round(2)
		ds.Materials = append(ds.Materials, models.Material{
			MaterialNumber: i,
			MaterialType:   materialTypes[r.Intn(len(materialTypes))],
			IndustrySector: sectors[r.Intn(len(sectors))],
			MaterialGroup:  groups[r.Intn(len(groups))],
			ValuationClass: valuationClasses[r.Intn(len(valuationClasses))],
			GrossWeight:    gross,
			NetWeight:      net,
			WeightUnit:     "kg",
			Volume:         roundedUniform(r, 0.1, 10.0),
			VolumeUnit:     "m3",
			TransportGroup: transportGroups[r.Intn(len(transportGroups))],
		})
	}

	salesTypes := []string{"TypeA", "TypeB", "TypeC"}
	orderTypes := []string{"Normal", "Urgent", "Backorder"}
	orderReasons := []string{"Stock Replenishment", "Special Order", "Promotion"}

	for i := 1; i <= cfg.SalesOrders; i++ {
		created := pastDate(r, cfg.Now, cfg.HorizonDays)
		ds.SalesOrderDocuments = append(ds.SalesOrderDocuments, models.SalesOrderDocument{
			SalesDocumentNumber:    i,
			DocumentCreationDate:   created,
			CustomerNumber:         1 + r.Intn(cfg.Customers),
			DocumentDateInDocument: created,
			SalesDocumentType:      salesTypes[r.Intn(len(salesTypes))],
			OrderType:              orderTypes[r.Intn(len(orderTypes))],
			OrderReason:            orderReasons[r.Intn(len(orderReasons))],
		})
		for item := 1; item <= 1+r.Intn(5); item++ {
			ds.SalesOrderItems = append(ds.SalesOrderItems, models.SalesOrderItem{
				SalesDocumentNumber: i,
				ItemNumber:          item,
				MaterialNumber:      utils.IntPtr(1 + r.Intn(cfg.Materials)),
				Plant:               plantName(r, cfg.Plants),
				OrderQuantity:       decimal.NewFromInt(int64(1 + r.Intn(100))),
				NetPrice:            roundedUniform(r, 10.0, 1000.0),
			})
		}
	}

	poCategories := []string{"Standard", "Subcontracting", "Consignment"}
	poTypes := []string{"POTypeA", "POTypeB", "POTypeC"}

	for i := 1; i <= cfg.PurchaseOrders; i++ {
		created := pastDate(r, cfg.Now, cfg.HorizonDays)
		ds.PurchaseOrderDocuments = append(ds.PurchaseOrderDocuments, models.PurchaseOrderDocument{
			PurchaseDocumentNumber:     i,
			RecordCreationDate:         created,
			AccountNumberOfVendor:      1 + r.Intn(cfg.Vendors),
			PurchaseOrderDate:          created,
			PurchasingDocumentCategory: poCategories[r.Intn(len(poCategories))],
			PurchasingDocumentType:     poTypes[r.Intn(len(poTypes))],
			BlockingIndicator:          r.Intn(2) == 0,
		})
		for item := 1; item <= 1+r.Intn(5); item++ {
			ds.PurchaseOrderItems = append(ds.PurchaseOrderItems, models.PurchaseOrderItem{
				PurchaseOrderNumber:     i,
				PurchaseOrderItemNumber: item,
				MaterialNumber:          utils.IntPtr(1 + r.Intn(cfg.Materials)),
				Plant:                   plantName(r, cfg.Plants),
				Quantity:                decimal.NewFromInt(int64(1 + r.Intn(100))),
				ChangeDate:              pastDate(r, cfg.Now, cfg.HorizonDays),
				NetPrice:                roundedUniform(r, 10.0, 1000.0),
			})
		}
	}

	movementTypes := []models.MovementType{models.MovementTypeGoodsReceipt, models.MovementTypeGoodsIssue}

	for i := 1; i <= cfg.GoodsMovements; i++ {
		posted := pastDate(r, cfg.Now, cfg.HorizonDays)
		ds.GoodsMovements = append(ds.GoodsMovements, models.GoodsMovement{
			Client:                              fmt.Sprintf("Client%d", 1+r.Intn(5)),
			PurchaseDocumentNumber:              1 + r.Intn(cfg.PurchaseOrders),
			LineItemInPurchaseDocument:          1 + r.Intn(5),
			SequentialNumberOfAccountAssignment: 1 + r.Intn(1000),
			MovementType:                        movementTypes[r.Intn(len(movementTypes))],
			FiscalYear:                          cfg.Now.Year(),
			DocumentNumber:                      100000 + r.Intn(900000),
			AccountingDocumentLine:              1 + r.Intn(10),
			MaterialNumber:                      utils.IntPtr(1 + r.Intn(cfg.Materials)),
			Plant:                               plantName(r, cfg.Plants),
			ReferenceDocumentNumber:             100000 + r.Intn(900000),
			DocumentDateInDocument:              posted,
			PostingDateInTheDocument:            posted,
			DateOfThePostingInTheDocument:       posted,
			TimeOfThePostingInTheDocument:       cfg.Now.Format("15:04:05"),
			Quantity:                            decimal.NewFromInt(int64(1 + r.Intn(100))),
		})
	}

	for i := 1; i <= cfg.MaterialDocuments; i++ {
		ds.MaterialDocuments = append(ds.MaterialDocuments, models.MaterialDocument{
			Client:                   fmt.Sprintf("Client%d", 1+r.Intn(5)),
			MaterialDocumentNumber:   100000 + r.Intn(900000),
			MaterialDocumentYear:     cfg.Now.Year(),
			LineItem:                 1 + r.Intn(10),
			MaterialNumber:           1 + r.Intn(cfg.Materials),
			Plant:                    plantName(r, cfg.Plants),
			StorageLocation:          fmt.Sprintf("Storage%d", 1+r.Intn(10)),
			VendorsAccountNumber:     1 + r.Intn(cfg.Vendors),
			CustomerNumber:           1 + r.Intn(cfg.Customers),
			MovementType:             movementTypes[r.Intn(len(movementTypes))],
			ReceivingPlant:           plantName(r, cfg.Plants),
			Quantity:                 decimal.NewFromInt(int64(1 + r.Intn(100))),
			PostingDateInTheDocument: pastDate(r, cfg.Now, cfg.HorizonDays),
		})
	}

	for _, m := range ds.Materials {
		ds.MaterialStocks = append(ds.MaterialStocks, models.MaterialStock{
			Client:                          fmt.Sprintf("Client%d", 1+r.Intn(5)),
			MaterialNumber:                  m.MaterialNumber,
			Plant:                           plantName(r, cfg.Plants),
			StorageLocation:                 fmt.Sprintf("Storage%d", 1+r.Intn(10)),
			StockInQualityInspection:        roundedUniform(r, 0, 100),
			StockInTransfer:                 roundedUniform(r, 0, 100),
			StockInPosting:                  roundedUniform(r, 0, 100),
			StockOfMaterialProvidedToVendor: roundedUniform(r, 0, 100),
			BlockedStock:                    roundedUniform(r, 0, 50),
			ReturnsStock:                    roundedUniform(r, 0, 50),
		})
	}

	for i := 1; i <= cfg.OrderSuggestions; i++ {
		date := pastDate(r, cfg.Now, cfg.HorizonDays)
		ds.OrderSuggestions = append(ds.OrderSuggestions, models.OrderSuggestion{
			OrderNumber:   i,
			OrderPosition: 1,
			ArticleNumber: utils.IntPtr(1 + r.Intn(cfg.Materials)),
			OrderQuantity: decimal.NewFromInt(int64(1 + r.Intn(100))),
			Date:          date,
			OrderDate:     date,
			DeliveryDate:  date.AddDate(0, 0, 1+r.Intn(30)),
			Plant:         plantName(r, cfg.Plants),
		})
	}

	requisitionTypes := []string{"TypeA", "TypeB", "TypeC"}
	for i := 1; i <= cfg.PurchaseRequisitions; i++ {
		date := pastDate(r, cfg.Now, cfg.HorizonDays)
		delivery := 1 + r.Intn(30)
		ds.PurchaseRequisitions = append(ds.PurchaseRequisitions, models.PurchaseRequisition{
			Client:                         fmt.Sprintf("Client%d", 1+r.Intn(5)),
			PurchaseDocumentNumber:         1 + r.Intn(cfg.PurchaseOrders),
			ItemNumberOfPurchasingDocument: 1 + r.Intn(5),
			PurchaseRequisitionNumber:      i,
			PurchaseRequisitionItem:        1 + r.Intn(5),
			PurchaseRequisitionDate:        date,
			DocumentType:                   requisitionTypes[r.Intn(len(requisitionTypes))],
			PurchasingDocumentCategory:     poCategories[r.Intn(len(poCategories))],
			PlannedDeliveryTime:            delivery,
			LatestPossibleGoodsReceipt:     date.AddDate(0, 0, delivery),
			Quantity:                       decimal.NewFromInt(int64(1 + r.Intn(100))),
			UnitOfMeasure:                  "PCS",
		})
	}

	subsequentCategories := []string{"Delivery", "Invoice", "Credit Memo"}
	precedingCategories := []string{"Order", "Quotation", "Contract"}
	flowSeen := make(map[models.SalesDocumentFlow]bool)
	for i := 0; i < cfg.SalesDocumentFlows; i++ {
		flow := models.SalesDocumentFlow{
			Client:                               fmt.Sprintf("Client%d", 1+r.Intn(5)),
			SalesDocument:                        1 + r.Intn(cfg.SalesOrders),
			SalesDocumentItem:                    1 + r.Intn(5),
			SubsequentSalesDocument:              1 + r.Intn(cfg.SalesOrders),
			SubsequentSalesDocumentItem:          1 + r.Intn(5),
			DocumentCategoryOfSubsequentDocument: subsequentCategories[r.Intn(len(subsequentCategories))],
			DocumentCategoryOfPrecedingDocument:  precedingCategories[r.Intn(len(precedingCategories))],
			DocumentDate:                         pastDate(r, cfg.Now, cfg.HorizonDays),
		}
		// The flow key is random on both sides; collisions would violate
		// the composite primary key, so redraw duplicates.
		probe := flow
		probe.Client, probe.DocumentCategoryOfSubsequentDocument, probe.DocumentCategoryOfPrecedingDocument = "", "", ""
		probe.DocumentDate = time.Time{}
		if flowSeen[probe] {
			i--
			continue
		}
		flowSeen[probe] = true
		ds.SalesDocumentFlows = append(ds.SalesDocumentFlows, flow)
	}

	return ds
}

// GenerateSimulation populates the source schema with a reproducible
// random transaction history. Tables must exist (run MigrateTable first).
func GenerateSimulation(db *gorm.DB, logger *logrus.Logger, cfg SimulationConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("simulation config: %w", err)
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now().UTC()
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	ds := buildSimulationDataset(r, cfg)

	insert := func(tx *gorm.DB, name string, rows any, count int) error {
		if count == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			if isDuplicateEntry(err) {
				return fmt.Errorf("insert %s: database already populated (rerun against an empty schema): %w", name, err)
			}
			return fmt.Errorf("insert %s: %w", name, err)
		}
		logger.WithFields(logrus.Fields{"table": name, "rows": count}).Info("simulation.insert")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := insert(tx, "materials", ds.Materials, len(ds.Materials)); err != nil {
			return err
		}
		if err := insert(tx, "sales_order_documents", ds.SalesOrderDocuments, len(ds.SalesOrderDocuments)); err != nil {
			return err
		}
		if err := insert(tx, "sales_order_items", ds.SalesOrderItems, len(ds.SalesOrderItems)); err != nil {
			return err
		}
		if err := insert(tx, "purchase_order_documents", ds.PurchaseOrderDocuments, len(ds.PurchaseOrderDocuments)); err != nil {
			return err
		}
		if err := insert(tx, "purchase_order_items", ds.PurchaseOrderItems, len(ds.PurchaseOrderItems)); err != nil {
			return err
		}
		if err := insert(tx, "goods_receipts_and_issues", ds.GoodsMovements, len(ds.GoodsMovements)); err != nil {
			return err
		}
		if err := insert(tx, "material_documents", ds.MaterialDocuments, len(ds.MaterialDocuments)); err != nil {
			return err
		}
		if err := insert(tx, "material_stocks", ds.MaterialStocks, len(ds.MaterialStocks)); err != nil {
			return err
		}
		if err := insert(tx, "order_suggestions", ds.OrderSuggestions, len(ds.OrderSuggestions)); err != nil {
			return err
		}
		if err := insert(tx, "purchase_requisitions", ds.PurchaseRequisitions, len(ds.PurchaseRequisitions)); err != nil {
			return err
		}
		if err := insert(tx, "sales_document_flows", ds.SalesDocumentFlows, len(ds.SalesDocumentFlows)); err != nil {
			return err
		}
		return nil
	})
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
