// internal/handlers/redirect.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/i18n"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type RedirectHandler struct {
	redirectService *services.RedirectService
}

func NewRedirectHandler(redirectService *services.RedirectService) *RedirectHandler {
	return &RedirectHandler{
		redirectService: redirectService,
	}
}

// GET /admin/redirects
func (h *RedirectHandler) GetRedirects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	redirects, total, err := h.redirectService.ListRedirects(c.Request.Context(), services.RedirectListParams{
		PaginationParams: params,
		EntityType:       models.EntityType(c.Query("entity_type")),
		Active:           boolQuery(c, "active"),
	})
	if err != nil {
		utils.ServiceErrorResponse(c, err, "redirect")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(redirects, total, params))
}

// GET /admin/redirects/:id
func (h *RedirectHandler) GetRedirect(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "redirect")
	if !ok {
		return
	}

	redirect, err := h.redirectService.GetRedirect(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "redirect")
		return
	}

	utils.SuccessResponse(c, redirect)
}

// POST /admin/redirects
func (h *RedirectHandler) CreateRedirect(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateRedirectRequest
	if !bindJSON(c, &req) {
		return
	}

	redirect, err := h.redirectService.CreateRedirect(c.Request.Context(), &req, actorID(c))
	if err != nil {
		utils.ServiceErrorResponse(c, err, "redirect")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyRedirectCreated),
		"redirect": redirect,
	})
}

// PUT /admin/redirects/:id
func (h *RedirectHandler) UpdateRedirect(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := objectIDParam(c, "id", "redirect")
	if !ok {
		return
	}

	var req services.UpdateRedirectRequest
	if !bindJSON(c, &req) {
		return
	}

	redirect, err := h.redirectService.UpdateRedirect(c.Request.Context(), id, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "redirect")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyRedirectUpdated),
		"redirect": redirect,
	})
}

// DELETE /admin/redirects/:id
func (h *RedirectHandler) DeleteRedirect(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := objectIDParam(c, "id", "redirect")
	if !ok {
		return
	}

	if err := h.redirectService.DeleteRedirect(c.Request.Context(), id); err != nil {
		utils.ServiceErrorResponse(c, err, "redirect")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRedirectDeleted),
	})
}
