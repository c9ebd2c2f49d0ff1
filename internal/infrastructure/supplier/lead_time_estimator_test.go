package supplier

import (
	"context"
	"errors"
	"testing"
	"time"

	"beavers_choice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func estimatorCatalog() entities.Catalog {
	return entities.Catalog{
		"matte_a4": {
			PaperType:        "matte_a4",
			UnitCost:         decimal.RequireFromString("1.40"),
			ListPrice:        decimal.RequireFromString("2.40"),
			ReorderThreshold: 120,
			SupplierLeadDays: 5,
		},
	}
}

func fixedClock() func() time.Time {
	fixed := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func TestLeadTimeEstimator_EstimateDelivery(t *testing.T) {
	ctx := context.Background()
	estimator := NewLeadTimeEstimator(estimatorCatalog()).WithClock(fixedClock())

	cases := []struct {
		name     string
		quantity int
		want     string
	}{
		{name: "base lead time", quantity: 50, want: "2026-03-06"},
		{name: "at threshold no penalty", quantity: 120, want: "2026-03-06"},
		{name: "just above threshold no full penalty step", quantity: 219, want: "2026-03-06"},
		{name: "one penalty day per 100 over threshold", quantity: 220, want: "2026-03-07"},
		{name: "two penalty days", quantity: 320, want: "2026-03-08"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eta, err := estimator.EstimateDelivery(ctx, "matte_a4", tc.quantity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := eta.Format(time.DateOnly); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestLeadTimeEstimator_UnknownPaperType(t *testing.T) {
	ctx := context.Background()

	t.Run("default lead time", func(t *testing.T) {
		estimator := NewLeadTimeEstimator(estimatorCatalog()).WithClock(fixedClock())
		eta, err := estimator.EstimateDelivery(ctx, "papyrus", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := eta.Format(time.DateOnly); got != "2026-03-15" {
			t.Fatalf("expected 2026-03-15, got %s", got)
		}
	})

	t.Run("default disabled", func(t *testing.T) {
		estimator := NewLeadTimeEstimator(estimatorCatalog()).WithClock(fixedClock()).WithoutDefault()
		if _, err := estimator.EstimateDelivery(ctx, "papyrus", 10); !errors.Is(err, ErrUnknownPaperType) {
			t.Fatalf("expected ErrUnknownPaperType, got %v", err)
		}
	})
}
