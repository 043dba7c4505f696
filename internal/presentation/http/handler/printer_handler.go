package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles retrieving printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// Test handles sending a test page to the printer
func (h *PrinterHandler) Test(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// Return the receipt body anyway so the terminal can render it
		response.OK(c, "Printer unavailable, returning receipt data", receipt)
		return
	}

	response.OK(c, "Test page printed", receipt)
}

// Reprint handles reprinting a committed sale's receipt
func (h *PrinterHandler) Reprint(c *gin.Context) {
	receiptNo := c.Param("receipt_no")

	receipt, err := h.printerService.ReprintReceipt(c.Request.Context(), receiptNo)
	if err != nil {
		if receipt != nil {
			response.OK(c, "Printer unavailable, returning receipt data", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt reprinted", receipt)
}
