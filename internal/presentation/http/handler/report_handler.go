package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/response"
	"github.com/tillworks/pos-api/pkg/pagination"
)

// ReportHandler handles sales log HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseSaleFilters reads the shared date/month/method query parameters.
func parseSaleFilters(c *gin.Context) (*time.Time, *string, *enum.PaymentMethod, error) {
	var date *time.Time
	var month *string
	var method *enum.PaymentMethod

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, nil, nil, err
		}
		date = &parsed
	} else if c.Query("today") == "true" {
		y, m, d := time.Now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		date = &today
	}

	if monthStr := c.Query("month"); monthStr != "" {
		if _, err := time.Parse("2006-01", monthStr); err != nil {
			return nil, nil, nil, err
		}
		month = &monthStr
	}

	if methodStr := c.Query("method"); methodStr != "" {
		parsed, err := enum.ParsePaymentMethod(methodStr)
		if err != nil {
			return nil, nil, nil, err
		}
		method = &parsed
	}

	return date, month, method, nil
}

// List handles listing sales with date/month/method filters
func (h *ReportHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	date, month, method, err := parseSaleFilters(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if date != nil && month != nil {
		response.BadRequest(c, "date and month filters are mutually exclusive")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Date:   date,
		Month:  month,
		Method: method,
	}

	result, err := h.reportService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles retrieving a single sale by receipt number
func (h *ReportHandler) Get(c *gin.Context) {
	receiptNo := c.Param("receipt_no")

	sale, err := h.reportService.GetSale(c.Request.Context(), receiptNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Summary handles aggregating the sales log over a filter slice
func (h *ReportHandler) Summary(c *gin.Context) {
	date, month, method, err := parseSaleFilters(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if date != nil && month != nil {
		response.BadRequest(c, "date and month filters are mutually exclusive")
		return
	}

	summary, err := h.reportService.Summarize(c.Request.Context(), date, month, method)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary computed", summary)
}
