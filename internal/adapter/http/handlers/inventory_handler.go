package handlers

import (
	"errors"
	"net/http"

	request "beavers_choice/internal/adapter/http/dto/request"
	response "beavers_choice/internal/adapter/http/dto/response"
	"beavers_choice/internal/usecase"
	"beavers_choice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStockPayload = pkg.NewDomainErrorSimple("INVALID_STOCK_INPUT", "Invalid stock payload", http.StatusBadRequest)

// InventoryHandler serves operator stock operations.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) ListStock(c *gin.Context) {
	statuses, err := h.usecase.ListStock(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryStatuses(statuses))
}

func (h *InventoryHandler) GetStock(c *gin.Context) {
	paperType := c.Param("paper_type")
	stock, err := h.usecase.GetStock(c.Request.Context(), paperType)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.StockLevelResponse{PaperType: paperType, Quantity: stock})
}

// SetStock overwrites the stock level of one paper type.
func (h *InventoryHandler) SetStock(c *gin.Context) {
	var payload request.StockUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	paperType := c.Param("paper_type")
	if err := h.usecase.SetStock(c.Request.Context(), paperType, *payload.Quantity); err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.StockLevelResponse{PaperType: paperType, Quantity: *payload.Quantity})
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownPaperType):
		return pkg.NewDomainErrorSimple("PAPER_TYPE_NOT_AVAILABLE", "Requested paper type is not available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStockLevel):
		return pkg.NewDomainErrorSimple("INVALID_STOCK_LEVEL", "Stock level must be non-negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Inventory is unavailable, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
