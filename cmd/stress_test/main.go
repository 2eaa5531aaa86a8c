package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rl1809/warehouse-ledger/internal/adapter/storage"
	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/core/service"
	"github.com/rl1809/warehouse-ledger/internal/port"
)

const (
	warehouseCount    = 4
	warehouseCapacity = 500
	skusPerWarehouse  = 5
	initialQuantity   = 60
	totalRequests     = 2000
)

func main() {
	dsn := flag.String("mysql", "", "MySQL DSN; the in-memory store is used when empty")
	flag.Parse()

	ctx := context.Background()

	var repo port.LedgerRepository = storage.NewMemoryAdapter()
	if *dsn != "" {
		db, err := sql.Open("mysql", *dsn)
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		defer db.Close()
		if err := storage.Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		repo = storage.NewMySQLAdapter(db)
	}

	ledger := service.NewLedgerService(repo, nil, nil, nil)

	// Setup: warehouses with a few SKUs each
	run := time.Now().UnixNano()
	warehouses := make([]*domain.Warehouse, warehouseCount)
	for i := range warehouses {
		w, err := ledger.CreateWarehouse(ctx, service.WarehouseInput{
			Name:        fmt.Sprintf("stress-%d-w%d", run, i),
			Location:    "stress",
			MaxCapacity: warehouseCapacity,
		})
		if err != nil {
			log.Fatalf("failed to create warehouse: %v", err)
		}
		warehouses[i] = w
		for j := 0; j < skusPerWarehouse; j++ {
			_, err := ledger.CreateItem(ctx, service.NewItem{
				SKU:         fmt.Sprintf("stress-%d-%d-%d", run, i, j),
				Name:        "stress item",
				Quantity:    initialQuantity,
				WarehouseID: w.ID,
			})
			if err != nil {
				log.Fatalf("failed to create item: %v", err)
			}
		}
	}
	expectedUnits := warehouseCount * skusPerWarehouse * initialQuantity

	// Counters
	var successCount atomic.Int32
	var rejectCount atomic.Int32
	var errorCount atomic.Int32

	// Spawn concurrent transfers between random warehouse pairs
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			src := warehouses[rand.IntN(warehouseCount)]
			dst := warehouses[rand.IntN(warehouseCount)]
			items, err := ledger.ListItemsByWarehouse(ctx, src.ID)
			if err != nil || len(items) == 0 {
				rejectCount.Add(1)
				return
			}
			item := items[rand.IntN(len(items))]

			_, err = ledger.Transfer(ctx, domain.TransferRequest{
				ItemID:                 item.ID,
				SourceWarehouseID:      src.ID,
				DestinationWarehouseID: dst.ID,
				Quantity:               1 + rand.IntN(item.Quantity),
			})
			switch {
			case err == nil:
				successCount.Add(1)
			case domain.KindOf(err) == domain.KindInternal:
				errorCount.Add(1)
				log.Printf("transfer failed: %v", err)
			default:
				rejectCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Warehouses:       %d\n", warehouseCount)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", successCount.Load())
	fmt.Printf("Rejected:         %d\n", rejectCount.Load())
	fmt.Printf("Errors:           %d\n", errorCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Assertions
	if errorCount.Load() == 0 {
		fmt.Println("PASS: No internal errors")
	} else {
		fmt.Printf("FAIL: %d internal errors\n", errorCount.Load())
	}

	units := 0
	capacityOK := true
	for _, w := range warehouses {
		got, err := ledger.GetWarehouse(ctx, w.ID)
		if err != nil {
			log.Fatalf("failed to read warehouse: %v", err)
		}
		units += got.CurrentCapacity
		if got.CurrentCapacity > got.MaxCapacity {
			capacityOK = false
			fmt.Printf("FAIL: %s holds %d of %d\n", got.Name, got.CurrentCapacity, got.MaxCapacity)
		}
	}

	if units == expectedUnits {
		fmt.Printf("PASS: %d units conserved\n", units)
	} else {
		fmt.Printf("FAIL: Expected %d units, got %d\n", expectedUnits, units)
	}
	if capacityOK {
		fmt.Println("PASS: No warehouse above capacity")
	}
}
