package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/request"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/response"
)

// SettlementHandler handles settlement HTTP requests
type SettlementHandler struct {
	settlementService *service.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

func toCartLines(lines []request.CartLineRequest) []entity.CartLine {
	cart := make([]entity.CartLine, len(lines))
	for i, l := range lines {
		cart[i] = entity.CartLine{
			Code:      l.Code,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}
	return cart
}

// Settle handles POST /settlements. A rejected attempt (insufficient funds)
// is still a 200: the terminal reads the status and re-prompts.
func (h *SettlementHandler) Settle(c *gin.Context) {
	var req request.SettleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.SettleOrderInput{
		Lines:         toCartLines(req.Lines),
		PaymentMethod: req.PaymentMethod,
		Tendered:      req.Tendered,
		DiscountRate:  req.DiscountRate,
		TaxRate:       req.TaxRate,
		CashierID:     GetEmployeeID(c),
		TableNo:       req.TableNo,
	}

	result, err := h.settlementService.SettleOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch result.Status {
	case enum.SettlementRejected:
		response.OK(c, "Payment rejected: insufficient funds", result)
	case enum.SettlementCommittedWithWarnings:
		response.Created(c, "Sale committed with stock warnings", result)
	default:
		response.Created(c, "Sale committed", result)
	}
}

// Quote handles POST /settlements/quote: price a cart without committing
// anything. Used by terminals to show a running total.
func (h *SettlementHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	totals, err := h.settlementService.QuoteTotals(toCartLines(req.Lines), req.DiscountRate, req.TaxRate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart priced", totals)
}
