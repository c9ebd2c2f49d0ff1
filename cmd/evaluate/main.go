package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"beavers_choice/internal/adapter/batch"
	"beavers_choice/internal/adapter/persistence/repository"
	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/infrastructure/supplier"
	"beavers_choice/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

// Batch evaluation entry point: runs a CSV of quote requests against a
// freshly seeded in-memory state and writes a results CSV.
func main() {
	inputPath := flag.String("input", "quote_requests_sample.csv", "path to the request CSV")
	outputPath := flag.String("output", "test_results.csv", "path for the results CSV")
	flag.Parse()

	catalog := entities.DefaultCatalog()
	inventoryRepo := repository.NewInventoryMemoryRepository()
	ledger := repository.NewTransactionMemoryLedger()

	pricer, err := usecase.NewQuoteUseCase(catalog, entities.DefaultPricingPolicy())
	if err != nil {
		log.Fatalf("Invalid pricing policy: %v", err)
	}

	ctx := context.Background()
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, catalog)
	if err := inventoryUseCase.SeedCatalog(ctx); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	fulfillmentUseCase := usecase.NewFulfillmentUseCase(inventoryRepo, ledger, supplier.NewLeadTimeEstimator(catalog), pricer, catalog)
	reportingUseCase := usecase.NewReportingUseCase(ledger, inventoryRepo, catalog)

	in, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *outputPath, err)
	}
	defer out.Close()

	results, err := batch.NewEvaluator(fulfillmentUseCase, reportingUseCase).Run(ctx, in, out)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	fulfilled := 0
	for _, r := range results {
		if r.Fulfilled {
			fulfilled++
		}
	}
	fmt.Printf("Processed %d requests with %d fulfilled.\n", len(results), fulfilled)
}
