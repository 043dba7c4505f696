package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/request"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/response"
)

// TableHandler handles dining floor HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List handles listing all dining tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.ListTables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables retrieved successfully", tables)
}

// Vacant handles finding vacant tables for a party size
func (h *TableHandler) Vacant(c *gin.Context) {
	seats, err := strconv.Atoi(c.DefaultQuery("seats", "1"))
	if err != nil {
		response.BadRequest(c, "Invalid seats parameter")
		return
	}

	tables, err := h.tableService.FindVacant(c.Request.Context(), seats)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vacant tables retrieved successfully", tables)
}

// Create handles registering a new dining table
func (h *TableHandler) Create(c *gin.Context) {
	var req request.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	table, err := h.tableService.CreateTable(c.Request.Context(), req.TableNo, req.SeatingCapacity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Table created successfully", table)
}

// Occupy handles seating a party at a table
func (h *TableHandler) Occupy(c *gin.Context) {
	tableNo, err := strconv.Atoi(c.Param("table_no"))
	if err != nil {
		response.BadRequest(c, "Invalid table number")
		return
	}

	var req request.OccupyTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	table, err := h.tableService.OccupyTable(c.Request.Context(), tableNo, req.ReceiptNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table occupied", table)
}

// Free handles marking a table vacant
func (h *TableHandler) Free(c *gin.Context) {
	tableNo, err := strconv.Atoi(c.Param("table_no"))
	if err != nil {
		response.BadRequest(c, "Invalid table number")
		return
	}

	table, err := h.tableService.FreeTable(c.Request.Context(), tableNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table freed", table)
}
