package supplier

import (
	"context"
	"errors"
	"time"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"
)

var ErrUnknownPaperType = errors.New("paper type not in lead-time table")

const defaultLeadDays = 14

// LeadTimeEstimator estimates supplier delivery dates from the catalog's
// per-item lead times.
//
// The model: base lead days for the paper type, plus one extra day per 100
// units requested above the item's reorder threshold. Unknown paper types
// fall back to a flat default lead time unless the fallback is disabled.
type LeadTimeEstimator struct {
	catalog         entities.Catalog
	defaultLeadDays int
	allowDefault    bool
	now             func() time.Time
}

var _ interfaces.ISupplierEstimator = (*LeadTimeEstimator)(nil)

func NewLeadTimeEstimator(catalog entities.Catalog) *LeadTimeEstimator {
	return &LeadTimeEstimator{
		catalog:         catalog,
		defaultLeadDays: defaultLeadDays,
		allowDefault:    true,
		now:             time.Now,
	}
}

// WithoutDefault makes unknown paper types an error instead of applying the
// flat default lead time.
func (e *LeadTimeEstimator) WithoutDefault() *LeadTimeEstimator {
	e.allowDefault = false
	return e
}

// WithClock overrides the time source; tests pin it for deterministic ETAs.
func (e *LeadTimeEstimator) WithClock(now func() time.Time) *LeadTimeEstimator {
	e.now = now
	return e
}

func (e *LeadTimeEstimator) EstimateDelivery(_ context.Context, paperType string, quantity int) (time.Time, error) {
	today := e.now().UTC().Truncate(24 * time.Hour)

	item, ok := e.catalog[paperType]
	if !ok {
		if !e.allowDefault {
			return time.Time{}, ErrUnknownPaperType
		}
		return today.AddDate(0, 0, e.defaultLeadDays), nil
	}

	loadPenalty := 0
	if quantity > item.ReorderThreshold {
		loadPenalty = (quantity - item.ReorderThreshold) / 100
	}
	return today.AddDate(0, 0, item.SupplierLeadDays+loadPenalty), nil
}
