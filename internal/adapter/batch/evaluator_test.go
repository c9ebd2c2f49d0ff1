package batch

import (
	"bytes"
	"context"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"

	"beavers_choice/internal/adapter/persistence/repository"
	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/infrastructure/supplier"
	"beavers_choice/internal/usecase"

	"github.com/shopspring/decimal"
)

var batchCatalog = entities.Catalog{
	"plain_a4": {
		PaperType:        "plain_a4",
		UnitCost:         decimal.RequireFromString("6.00"),
		ListPrice:        decimal.RequireFromString("10.00"),
		ReorderThreshold: 100,
		SupplierLeadDays: 5,
	},
}

func batchClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func batchEvaluator(t *testing.T, stock int) (*Evaluator, *repository.TransactionMemoryLedger) {
	t.Helper()

	inventory := repository.NewInventoryMemoryRepository()
	if err := inventory.SetStock(context.Background(), "plain_a4", stock); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ledger := repository.NewTransactionMemoryLedger()
	estimator := supplier.NewLeadTimeEstimator(batchCatalog).WithClock(batchClock)

	pricer, err := usecase.NewQuoteUseCase(batchCatalog, entities.DefaultPricingPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fulfillment := usecase.NewFulfillmentUseCase(inventory, ledger, estimator, pricer, batchCatalog).WithClock(batchClock)
	reporting := usecase.NewReportingUseCase(ledger, inventory, batchCatalog)

	return NewEvaluator(fulfillment, reporting), ledger
}

func TestEvaluator_Run(t *testing.T) {
	input := strings.Join([]string{
		"request_id,customer_name,paper_type,quantity,max_budget,needed_by",
		"req-1,acme,plain_a4,20,,2026-03-20",
		"req-2,acme,plain_a4,40,,2026-03-20",
		"req-3,acme,papyrus,10,,2026-03-20",
		"req-4,bulk-co,plain_a4,30,100.00,2026-03-20",
	}, "\n")

	evaluator, ledger := batchEvaluator(t, 50)
	var out bytes.Buffer
	results, err := evaluator.Run(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	first := results[0]
	if first.Status != string(entities.TransactionStatusFulfilled) || !first.Fulfilled {
		t.Errorf("expected req-1 fulfilled, got %+v", first)
	}
	if !first.QuoteTotal.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("unexpected req-1 total: %s", first.QuoteTotal)
	}
	if !first.CashBalanceAfter.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("unexpected req-1 balance: %s", first.CashBalanceAfter)
	}

	// Stock is down to 30, so req-2 falls through to the supplier ETA. The
	// prior fulfilled order earns acme the 2% loyalty tier.
	second := results[1]
	if second.Status != string(entities.TransactionStatusUnfulfilled) || second.Fulfilled {
		t.Errorf("expected req-2 unfulfilled, got %+v", second)
	}
	if !second.QuoteTotal.Equal(decimal.RequireFromString("392.00")) {
		t.Errorf("unexpected req-2 total: %s", second.QuoteTotal)
	}
	if !strings.Contains(second.Rationale, "2026-03-06") {
		t.Errorf("expected supplier ETA in rationale, got %q", second.Rationale)
	}
	if !second.CashBalanceAfter.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("unexpected req-2 balance: %s", second.CashBalanceAfter)
	}

	third := results[2]
	if third.Status != statusRejected {
		t.Errorf("expected req-3 rejected, got %+v", third)
	}
	if !third.QuoteTotal.Equal(decimal.Zero) {
		t.Errorf("unexpected req-3 total: %s", third.QuoteTotal)
	}

	fourth := results[3]
	if fourth.Status != string(entities.TransactionStatusDeclined) {
		t.Errorf("expected req-4 declined, got %+v", fourth)
	}
	if !strings.Contains(fourth.Rationale, "$100.00") {
		t.Errorf("expected budget in rationale, got %q", fourth.Rationale)
	}

	// The rejected row never reached the ledger.
	txs, err := ledger.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(txs))
	}
}

func TestEvaluator_OutputColumns(t *testing.T) {
	input := strings.Join([]string{
		"request_id,customer_name,paper_type,quantity,max_budget,needed_by",
		"req-1,acme,plain_a4,20,,2026-03-20",
	}, "\n")

	evaluator, _ := batchEvaluator(t, 50)
	var out bytes.Buffer
	if _, err := evaluator.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}
	wantHeader := []string{
		"request_id", "customer_name", "paper_type", "quantity",
		"quote_total", "status", "fulfilled", "rationale",
		"operator_cash_balance_after",
	}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Errorf("unexpected header: %v", records[0])
	}
	row := records[1]
	if row[0] != "req-1" || row[4] != "200.00" || row[5] != "fulfilled" || row[6] != "true" || row[8] != "200.00" {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestEvaluator_ReadRequests(t *testing.T) {
	t.Run("missing required column", func(t *testing.T) {
		in := strings.NewReader("request_id,customer_name,quantity\nreq-1,acme,10")
		if _, err := readRequests(in); err == nil {
			t.Fatal("expected error for missing column")
		}
	})

	t.Run("bad quantity", func(t *testing.T) {
		in := strings.NewReader(strings.Join([]string{
			"request_id,customer_name,paper_type,quantity,max_budget,needed_by",
			"req-1,acme,plain_a4,lots,,",
		}, "\n"))
		if _, err := readRequests(in); err == nil {
			t.Fatal("expected error for bad quantity")
		}
	})

	t.Run("optional fields may be blank", func(t *testing.T) {
		in := strings.NewReader(strings.Join([]string{
			"request_id,customer_name,paper_type,quantity,max_budget,needed_by",
			"req-1,acme,plain_a4,10,,",
		}, "\n"))
		reqs, err := readRequests(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reqs) != 1 || reqs[0].MaxBudget != nil {
			t.Fatalf("unexpected requests: %+v", reqs)
		}
	})
}
