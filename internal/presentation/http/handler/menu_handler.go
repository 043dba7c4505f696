package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/request"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/response"
	"github.com/tillworks/pos-api/pkg/pagination"
	"github.com/tillworks/pos-api/pkg/utils"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func toRequirementInputs(reqs []request.RequirementRequest) []service.RequirementInput {
	inputs := make([]service.RequirementInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = service.RequirementInput{
			IngredientName:  r.IngredientName,
			QuantityPerUnit: r.QuantityPerUnit,
		}
	}
	return inputs
}

// List handles listing menu items
func (h *MenuHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.MenuFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := uuid.Parse(categoryIDStr); err == nil {
			params.CategoryID = &categoryID
		}
	}

	result, err := h.menuService.ListMenuItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// Get handles retrieving a single menu item
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles adding a new menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), &service.CreateMenuItemInput{
		Code:         req.Code,
		Name:         req.Name,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		Requirements: toRequirementInputs(req.Requirements),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles updating a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateMenuItemInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}
	if req.Requirements != nil {
		inputs := toRequirementInputs(*req.Requirements)
		input.Requirements = &inputs
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// Delete handles removing a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListCategories handles listing menu categories
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles adding a menu category
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.menuService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// DeleteCategory handles removing a menu category
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
