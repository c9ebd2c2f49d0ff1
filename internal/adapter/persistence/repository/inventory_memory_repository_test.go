package repository

import (
	"context"
	"testing"
)

func TestInventoryMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryMemoryRepository()

	t.Run("unseen paper type reads zero", func(t *testing.T) {
		stock, err := repo.GetStock(ctx, "matte_a4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stock != 0 {
			t.Fatalf("expected 0, got %d", stock)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := repo.SetStock(ctx, "matte_a4", 50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stock, err := repo.GetStock(ctx, "matte_a4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stock != 50 {
			t.Fatalf("expected 50, got %d", stock)
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		if err := repo.SetStock(ctx, "matte_a4", -1); err == nil {
			t.Fatalf("expected error for negative stock")
		}
	})

	t.Run("list in ascending paper-type order", func(t *testing.T) {
		if err := repo.SetStock(ctx, "glossy_a4", 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.SetStock(ctx, "cardstock_a3", 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		levels, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"cardstock_a3", "glossy_a4", "matte_a4"}
		if len(levels) != len(want) {
			t.Fatalf("expected %d rows, got %d", len(want), len(levels))
		}
		for i, paperType := range want {
			if levels[i].PaperType != paperType {
				t.Fatalf("expected %s at position %d, got %s", paperType, i, levels[i].PaperType)
			}
		}
	})
}
