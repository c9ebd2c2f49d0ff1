package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"
)

// InventoryMemoryRepository keeps stock levels in process memory. It is the
// default backend for the batch evaluator and tests; data does not survive a
// restart.
type InventoryMemoryRepository struct {
	mu     sync.RWMutex
	levels map[string]int
}

var _ interfaces.IInventoryRepository = (*InventoryMemoryRepository)(nil)

func NewInventoryMemoryRepository() *InventoryMemoryRepository {
	return &InventoryMemoryRepository{levels: make(map[string]int)}
}

func (r *InventoryMemoryRepository) GetStock(ctx context.Context, paperType string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.levels[paperType], nil
}

func (r *InventoryMemoryRepository) SetStock(ctx context.Context, paperType string, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if quantity < 0 {
		return errors.New("stock level must be non-negative")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels[paperType] = quantity
	return nil
}

func (r *InventoryMemoryRepository) ListAll(ctx context.Context) ([]entities.StockLevel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.StockLevel, 0, len(r.levels))
	for paperType, quantity := range r.levels {
		out = append(out, entities.StockLevel{PaperType: paperType, Quantity: quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaperType < out[j].PaperType })
	return out, nil
}
