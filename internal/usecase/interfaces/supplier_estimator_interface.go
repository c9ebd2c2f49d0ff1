package interfaces

import (
	"context"
	"time"
)

// ISupplierEstimator abstracts the supplier lead-time model.
//
// EstimateDelivery returns the expected replenishment date for ordering the
// given quantity of a paper type. Implementations are pure functions of their
// configured lead-time table; no side effects.
type ISupplierEstimator interface {
	EstimateDelivery(ctx context.Context, paperType string, quantity int) (time.Time, error)
}
