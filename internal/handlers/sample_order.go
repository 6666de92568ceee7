// internal/handlers/sample_order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/i18n"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type SampleOrderHandler struct {
	sampleOrderService *services.SampleOrderService
}

func NewSampleOrderHandler(sampleOrderService *services.SampleOrderService) *SampleOrderHandler {
	return &SampleOrderHandler{
		sampleOrderService: sampleOrderService,
	}
}

// POST /sample-orders
func (h *SampleOrderHandler) CreateSampleOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateSampleOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.sampleOrderService.Checkout(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "sample_order")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySampleOrderCreated),
		"order":   order,
	})
}

// GET /admin/sample-orders
func (h *SampleOrderHandler) GetSampleOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.sampleOrderService.ListSampleOrders(c.Request.Context(), services.SampleOrderListParams{
		PaginationParams: params,
		Status:           models.SampleOrderStatus(c.Query("status")),
		Email:            c.Query("email"),
	})
	if err != nil {
		utils.ServiceErrorResponse(c, err, "sample_order")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(orders, total, params))
}

// GET /admin/sample-orders/:id
func (h *SampleOrderHandler) GetSampleOrder(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "sample order")
	if !ok {
		return
	}

	order, err := h.sampleOrderService.GetSampleOrder(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "sample_order")
		return
	}

	utils.SuccessResponse(c, order)
}

// PUT /admin/sample-orders/:id/status
func (h *SampleOrderHandler) UpdateSampleOrderStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "sample order")
	if !ok {
		return
	}

	var req services.UpdateSampleOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.sampleOrderService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "sample_order")
		return
	}

	utils.SuccessResponse(c, order)
}
