package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IReportingUseCase derives financial figures by folding over the ledger.
//
// Reads take a snapshot of the ledger at call time; nothing is cached across
// calls, so a report is always explained by the transactions behind it.

type IReportingUseCase interface {
	CashBalance(ctx context.Context) (decimal.Decimal, error)
	FinancialSummary(ctx context.Context) (entities.FinancialSummary, error)
	ListTransactions(ctx context.Context, customerName string, limit int) ([]entities.Transaction, error)
}

type ReportingUseCase struct {
	ledger    interfaces.ITransactionLedger
	inventory interfaces.IInventoryRepository
	catalog   entities.Catalog
	now       func() time.Time
}

var _ IReportingUseCase = (*ReportingUseCase)(nil)

func NewReportingUseCase(ledger interfaces.ITransactionLedger, inventory interfaces.IInventoryRepository, catalog entities.Catalog) *ReportingUseCase {
	return &ReportingUseCase{ledger: ledger, inventory: inventory, catalog: catalog, now: time.Now}
}

// WithClock overrides the time source; tests pin it for deterministic output.
func (u *ReportingUseCase) WithClock(now func() time.Time) *ReportingUseCase {
	u.now = now
	return u
}

// CashBalance folds all cash deltas in ledger order.
func (u *ReportingUseCase) CashBalance(ctx context.Context) (decimal.Decimal, error) {
	txs, err := u.ledger.ReadAll(ctx)
	if err != nil {
		log.Printf("[reporting][usecase] ledger read failed err=%v", err)
		return decimal.Zero, ErrStorageUnavailable
	}
	balance := decimal.Zero
	for _, tx := range txs {
		balance = balance.Add(tx.CashDelta)
	}
	return balance, nil
}

// FinancialSummary folds the ledger into revenue, per-outcome counts and the
// cash balance, and values current stock at unit cost for the carrying-cost
// figure.
func (u *ReportingUseCase) FinancialSummary(ctx context.Context) (entities.FinancialSummary, error) {
	txs, err := u.ledger.ReadAll(ctx)
	if err != nil {
		log.Printf("[reporting][usecase] ledger read failed err=%v", err)
		return entities.FinancialSummary{}, ErrStorageUnavailable
	}

	summary := entities.FinancialSummary{
		CashBalance:           decimal.Zero,
		TotalRevenue:          decimal.Zero,
		InventoryCarryingCost: decimal.Zero,
		GeneratedAt:           u.now().UTC(),
	}
	for _, tx := range txs {
		summary.CashBalance = summary.CashBalance.Add(tx.CashDelta)
		switch tx.Status {
		case entities.TransactionStatusFulfilled:
			summary.FulfilledCount++
			summary.TotalRevenue = summary.TotalRevenue.Add(tx.Total)
		case entities.TransactionStatusDeclined:
			summary.DeclinedCount++
		case entities.TransactionStatusUnfulfilled:
			summary.UnfulfilledCount++
		}
	}

	levels, err := u.inventory.ListAll(ctx)
	if err != nil {
		log.Printf("[reporting][usecase] inventory read failed err=%v", err)
		return entities.FinancialSummary{}, ErrStorageUnavailable
	}
	for _, level := range levels {
		item, ok := u.catalog[level.PaperType]
		if !ok {
			continue
		}
		cost := item.UnitCost.Mul(decimal.NewFromInt(int64(level.Quantity)))
		summary.InventoryCarryingCost = summary.InventoryCarryingCost.Add(cost)
	}
	return summary, nil
}

// ListTransactions returns ledger rows for operator browsing. An empty
// customer name lists everything in sequence order; otherwise the customer's
// most recent rows, newest first.
func (u *ReportingUseCase) ListTransactions(ctx context.Context, customerName string, limit int) ([]entities.Transaction, error) {
	customerName = strings.TrimSpace(customerName)
	var (
		txs []entities.Transaction
		err error
	)
	if customerName == "" {
		txs, err = u.ledger.ReadAll(ctx)
	} else {
		txs, err = u.ledger.ReadForCustomer(ctx, customerName, limit)
	}
	if err != nil {
		log.Printf("[reporting][usecase] ledger read failed customer=%q err=%v", customerName, err)
		return nil, ErrStorageUnavailable
	}
	if customerName == "" && limit > 0 && len(txs) > limit {
		txs = txs[len(txs)-limit:]
	}
	return txs, nil
}
