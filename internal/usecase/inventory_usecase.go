package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"
)

var ErrInvalidStockLevel = errors.New("invalid stock level")

// seedBuffer is how far above the reorder threshold the initial stock of a
// freshly seeded item sits.
const seedBuffer = 80

// IInventoryUseCase exposes operator-facing stock operations.

type IInventoryUseCase interface {
	GetStock(ctx context.Context, paperType string) (int, error)
	SetStock(ctx context.Context, paperType string, quantity int) error
	ListStock(ctx context.Context) ([]entities.InventoryStatus, error)
	SeedCatalog(ctx context.Context) error
}

type InventoryUseCase struct {
	repo    interfaces.IInventoryRepository
	catalog entities.Catalog
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, catalog entities.Catalog) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, catalog: catalog}
}

func (u *InventoryUseCase) GetStock(ctx context.Context, paperType string) (int, error) {
	paperType = strings.TrimSpace(paperType)
	if _, ok := u.catalog[paperType]; !ok {
		return 0, ErrUnknownPaperType
	}
	stock, err := u.repo.GetStock(ctx, paperType)
	if err != nil {
		log.Printf("[inventory][usecase] stock read failed paper_type=%s err=%v", paperType, err)
		return 0, ErrStorageUnavailable
	}
	return stock, nil
}

func (u *InventoryUseCase) SetStock(ctx context.Context, paperType string, quantity int) error {
	paperType = strings.TrimSpace(paperType)
	if _, ok := u.catalog[paperType]; !ok {
		return ErrUnknownPaperType
	}
	if quantity < 0 {
		return ErrInvalidStockLevel
	}
	if err := u.repo.SetStock(ctx, paperType, quantity); err != nil {
		log.Printf("[inventory][usecase] stock write failed paper_type=%s err=%v", paperType, err)
		return ErrStorageUnavailable
	}
	return nil
}

// ListStock returns every tracked stock level with its reorder flag, in
// ascending paper-type order.
func (u *InventoryUseCase) ListStock(ctx context.Context) ([]entities.InventoryStatus, error) {
	levels, err := u.repo.ListAll(ctx)
	if err != nil {
		log.Printf("[inventory][usecase] inventory read failed err=%v", err)
		return nil, ErrStorageUnavailable
	}
	statuses := make([]entities.InventoryStatus, 0, len(levels))
	for _, level := range levels {
		status := entities.InventoryStatus{
			PaperType: level.PaperType,
			Quantity:  level.Quantity,
		}
		if item, ok := u.catalog[level.PaperType]; ok {
			status.ReorderThreshold = item.ReorderThreshold
			status.NeedsReorder = level.Quantity < item.ReorderThreshold
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// SeedCatalog populates stock for catalog items the repository has never
// seen, preserving any existing level (including zero). Each new item starts
// at its reorder threshold plus the seed buffer.
func (u *InventoryUseCase) SeedCatalog(ctx context.Context) error {
	levels, err := u.repo.ListAll(ctx)
	if err != nil {
		log.Printf("[inventory][usecase] inventory read failed err=%v", err)
		return ErrStorageUnavailable
	}
	seen := make(map[string]bool, len(levels))
	for _, level := range levels {
		seen[level.PaperType] = true
	}

	paperTypes := make([]string, 0, len(u.catalog))
	for paperType := range u.catalog {
		paperTypes = append(paperTypes, paperType)
	}
	sort.Strings(paperTypes)

	for _, paperType := range paperTypes {
		if seen[paperType] {
			continue
		}
		item := u.catalog[paperType]
		if err := u.repo.SetStock(ctx, paperType, item.ReorderThreshold+seedBuffer); err != nil {
			log.Printf("[inventory][usecase] seed failed paper_type=%s err=%v", paperType, err)
			return ErrStorageUnavailable
		}
	}
	return nil
}
