package response

import "beavers_choice/internal/domain/entities"

type StockLevelResponse struct {
	PaperType string `json:"paper_type"`
	Quantity  int    `json:"quantity"`
}

type InventoryStatusResponse struct {
	PaperType        string `json:"paper_type"`
	Quantity         int    `json:"quantity"`
	ReorderThreshold int    `json:"reorder_threshold"`
	NeedsReorder     bool   `json:"needs_reorder"`
}

func FromInventoryStatuses(statuses []entities.InventoryStatus) []InventoryStatusResponse {
	out := make([]InventoryStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, InventoryStatusResponse{
			PaperType:        s.PaperType,
			Quantity:         s.Quantity,
			ReorderThreshold: s.ReorderThreshold,
			NeedsReorder:     s.NeedsReorder,
		})
	}
	return out
}
