package usecase

import (
	"context"
	"errors"
	"testing"

	"beavers_choice/internal/adapter/persistence/repository"
	"beavers_choice/internal/domain/entities"
	mock_interfaces "beavers_choice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func seedLedger(t *testing.T, ledger *repository.TransactionMemoryLedger, txs ...entities.Transaction) {
	t.Helper()
	for _, tx := range txs {
		if _, err := ledger.Append(context.Background(), tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func fulfilledTx(customer, total string) entities.Transaction {
	amount := decimal.RequireFromString(total)
	return entities.Transaction{
		CustomerName: customer,
		PaperType:    "plain_a4",
		Quantity:     1,
		Total:        amount,
		Status:       entities.TransactionStatusFulfilled,
		CashDelta:    amount,
	}
}

func nonCashTx(customer string, status entities.TransactionStatus) entities.Transaction {
	return entities.Transaction{
		CustomerName: customer,
		PaperType:    "plain_a4",
		Quantity:     1,
		Total:        decimal.RequireFromString("25.00"),
		Status:       status,
		CashDelta:    decimal.Zero,
	}
}

func TestReportingUseCase_CashBalance(t *testing.T) {
	ctx := context.Background()
	ledger := repository.NewTransactionMemoryLedger()
	inventory := repository.NewInventoryMemoryRepository()
	uc := NewReportingUseCase(ledger, inventory, scenarioCatalog())

	t.Run("empty ledger", func(t *testing.T) {
		balance, err := uc.CashBalance(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !balance.IsZero() {
			t.Fatalf("expected zero balance, got %s", balance)
		}
	})

	t.Run("only fulfilled deltas count", func(t *testing.T) {
		seedLedger(t, ledger,
			fulfilledTx("acme", "100.00"),
			nonCashTx("acme", entities.TransactionStatusDeclined),
			fulfilledTx("bob", "37.50"),
			nonCashTx("bob", entities.TransactionStatusUnfulfilled),
		)
		balance, err := uc.CashBalance(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := balance.StringFixed(2); got != "137.50" {
			t.Fatalf("expected 137.50, got %s", got)
		}
	})
}

func TestReportingUseCase_FinancialSummary(t *testing.T) {
	ctx := context.Background()
	ledger := repository.NewTransactionMemoryLedger()
	inventory := repository.NewInventoryMemoryRepository()
	uc := NewReportingUseCase(ledger, inventory, scenarioCatalog()).WithClock(testClock())

	seedLedger(t, ledger,
		fulfilledTx("acme", "100.00"),
		fulfilledTx("acme", "50.00"),
		nonCashTx("acme", entities.TransactionStatusDeclined),
		nonCashTx("bob", entities.TransactionStatusUnfulfilled),
		nonCashTx("bob", entities.TransactionStatusUnfulfilled),
	)
	if err := inventory.SetStock(ctx, "plain_a4", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := uc.FinancialSummary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := summary.CashBalance.StringFixed(2); got != "150.00" {
		t.Fatalf("expected cash balance 150.00, got %s", got)
	}
	if got := summary.TotalRevenue.StringFixed(2); got != "150.00" {
		t.Fatalf("expected revenue 150.00, got %s", got)
	}
	if summary.FulfilledCount != 2 || summary.DeclinedCount != 1 || summary.UnfulfilledCount != 2 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	// 20 units at 6.00 unit cost.
	if got := summary.InventoryCarryingCost.StringFixed(2); got != "120.00" {
		t.Fatalf("expected carrying cost 120.00, got %s", got)
	}
	if summary.GeneratedAt.IsZero() {
		t.Fatalf("expected a generation timestamp")
	}
}

func TestReportingUseCase_ListTransactions(t *testing.T) {
	ctx := context.Background()
	ledger := repository.NewTransactionMemoryLedger()
	inventory := repository.NewInventoryMemoryRepository()
	uc := NewReportingUseCase(ledger, inventory, scenarioCatalog())

	seedLedger(t, ledger,
		fulfilledTx("acme", "10.00"),
		fulfilledTx("bob", "20.00"),
		fulfilledTx("acme", "30.00"),
	)

	t.Run("all in ledger order", func(t *testing.T) {
		txs, err := uc.ListTransactions(ctx, "", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 3 || txs[0].Sequence != 1 || txs[2].Sequence != 3 {
			t.Fatalf("unexpected rows: %+v", txs)
		}
	})

	t.Run("per customer newest first", func(t *testing.T) {
		txs, err := uc.ListTransactions(ctx, "acme", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 2 || txs[0].Sequence != 3 || txs[1].Sequence != 1 {
			t.Fatalf("unexpected rows: %+v", txs)
		}
	})
}

func TestReportingUseCase_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mock_interfaces.NewMockITransactionLedger(ctrl)
	inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewReportingUseCase(ledger, inventory, scenarioCatalog())

	ledger.EXPECT().ReadAll(gomock.Any()).Return(nil, errors.New("dynamo down"))

	if _, err := uc.CashBalance(context.Background()); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
