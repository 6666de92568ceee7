// internal/handlers/inquiry.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/i18n"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

// POST /inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateInquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.CreateInquiry(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "inquiry")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyInquiryReceived),
		"id":      inquiry.ID,
	})
}

// POST /meetings
func (h *InquiryHandler) CreateMeeting(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateMeetingRequest
	if !bindJSON(c, &req) {
		return
	}

	meeting, err := h.inquiryService.CreateMeeting(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "inquiry")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":        i18n.T(lang, i18n.KeyMeetingBooked),
		"id":             meeting.ID,
		"meet_link":      meeting.MeetLink,
		"preferred_time": meeting.PreferredTime,
	})
}

// GET /admin/inquiries
func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	inquiries, total, err := h.inquiryService.ListInquiries(c.Request.Context(), services.InquiryListParams{
		PaginationParams: params,
		Kind:             models.InquiryKind(c.Query("kind")),
		Status:           models.InquiryStatus(c.Query("status")),
	})
	if err != nil {
		utils.ServiceErrorResponse(c, err, "inquiry")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(inquiries, total, params))
}

// GET /admin/inquiries/:id
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "inquiry")
	if !ok {
		return
	}

	inquiry, err := h.inquiryService.GetInquiry(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "inquiry")
		return
	}

	utils.SuccessResponse(c, inquiry)
}

// PUT /admin/inquiries/:id/status
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "inquiry")
	if !ok {
		return
	}

	var req services.UpdateInquiryStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "inquiry")
		return
	}

	utils.SuccessResponse(c, inquiry)
}
