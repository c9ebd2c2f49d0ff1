package interfaces

import (
	"context"

	"beavers_choice/internal/domain/entities"
)

// ITransactionLedger abstracts the append-only transaction store.
//
// Contract notes:
//   - Append assigns the next sequence id: strictly increasing, gap-free per
//     ledger instance. It must respect the caller's context deadline and fail
//     before writing when the deadline has passed.
//   - ReadAll returns transactions in insertion (= sequence) order.
//   - ReadForCustomer returns the customer's most recent transactions,
//     newest first, capped at limit.
//   - There is no update or delete.

type ITransactionLedger interface {
	Append(ctx context.Context, tx entities.Transaction) (int64, error)
	ReadAll(ctx context.Context) ([]entities.Transaction, error)
	ReadForCustomer(ctx context.Context, customerName string, limit int) ([]entities.Transaction, error)
}
