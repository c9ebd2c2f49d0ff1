package request

// StockUpdateRequest is the payload for PUT /v1/operator/inventory/:paper_type.
//
// Quantity is a pointer so that an explicit zero survives binding.
type StockUpdateRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
