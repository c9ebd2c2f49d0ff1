package interfaces

import (
	"context"

	"beavers_choice/internal/domain/entities"
)

// IInventoryRepository abstracts persistence for on-hand stock levels.
//
// Contract notes:
//   - GetStock returns 0 for paper types the repository has never seen.
//   - SetStock is a direct overwrite, not a delta; callers own the
//     check-then-decrement atomicity (the fulfillment use case serializes it
//     per item).
//   - ListAll returns rows in ascending paper-type order.

type IInventoryRepository interface {
	GetStock(ctx context.Context, paperType string) (int, error)
	SetStock(ctx context.Context, paperType string, quantity int) error
	ListAll(ctx context.Context) ([]entities.StockLevel, error)
}
