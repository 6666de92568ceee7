// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/i18n"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) list(c *gin.Context, activeOnly bool) {
	params := utils.GetPaginationParams(c)

	categories, total, err := h.categoryService.ListCategories(c.Request.Context(), services.CategoryListParams{
		PaginationParams: params,
		ParentID:         c.Query("parent_id"),
		ActiveOnly:       activeOnly,
	})
	if err != nil {
		utils.ServiceErrorResponse(c, err, "category")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(categories, total, params))
}

// GET /categories
func (h *CategoryHandler) GetPublicCategories(c *gin.Context) {
	h.list(c, true)
}

// GET /admin/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	active := boolQuery(c, "active")
	h.list(c, active != nil && *active)
}

// GET /admin/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "category")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "category")
		return
	}

	utils.SuccessResponse(c, category)
}

// POST /admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "category")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryCreated),
		"category": category,
	})
}

// PUT /admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := objectIDParam(c, "id", "category")
	if !ok {
		return
	}

	var req services.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &req, actorID(c))
	if err != nil {
		utils.ServiceErrorResponse(c, err, "category")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryUpdated),
		"category": category,
	})
}

// DELETE /admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := objectIDParam(c, "id", "category")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.ServiceErrorResponse(c, err, "category")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCategoryDeleted),
	})
}
