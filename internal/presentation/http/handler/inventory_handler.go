package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/request"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/response"
	"github.com/tillworks/pos-api/pkg/pagination"
	"github.com/tillworks/pos-api/pkg/utils"
)

// InventoryHandler handles inventory ledger HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing inventory items
func (h *InventoryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InventoryFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:   c.Query("search"),
		LowStock: c.Query("low_stock") == "true",
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory items retrieved successfully", result)
}

// Get handles retrieving a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// Create handles adding a new inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Code:           req.Code,
		Name:           req.Name,
		Quantity:       req.Quantity,
		QuantityAlert:  req.QuantityAlert,
		BuyingPrice:    req.BuyingPrice,
		SellingPrice:   req.SellingPrice,
		ExpirationDate: req.ExpirationDate,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// Update handles updating an inventory item
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, &service.UpdateItemInput{
		Name:           req.Name,
		Quantity:       req.Quantity,
		QuantityAlert:  req.QuantityAlert,
		BuyingPrice:    req.BuyingPrice,
		SellingPrice:   req.SellingPrice,
		ExpirationDate: req.ExpirationDate,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// Delete handles removing an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock handles listing items at or below their alert threshold
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Expired handles listing items past their expiration date
func (h *InventoryHandler) Expired(c *gin.Context) {
	items, err := h.inventoryService.GetExpired(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expired items retrieved successfully", items)
}

// Restock handles receiving a delivery
func (h *InventoryHandler) Restock(c *gin.Context) {
	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.inventoryService.Restock(c.Request.Context(), req.Items); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock replenished successfully", nil)
}

// ListIngredients handles listing the ingredient ledger
func (h *InventoryHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.inventoryService.ListIngredients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredients retrieved successfully", ingredients)
}

// UpsertIngredient handles setting an ingredient's stock level
func (h *InventoryHandler) UpsertIngredient(c *gin.Context) {
	var req request.UpsertIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	stock, err := h.inventoryService.UpsertIngredient(c.Request.Context(), &service.UpsertIngredientInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient stock saved successfully", stock)
}

// DeleteIngredient handles removing an ingredient row
func (h *InventoryHandler) DeleteIngredient(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	if err := h.inventoryService.DeleteIngredient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
