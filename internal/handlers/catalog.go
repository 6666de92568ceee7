// internal/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /catalog/:type/:slug
func (h *CatalogHandler) Resolve(c *gin.Context) {
	entityType := models.EntityType(c.Param("type"))

	res, err := h.catalogService.Resolve(c.Request.Context(), entityType, c.Param("slug"))
	if err != nil {
		utils.ServiceErrorResponse(c, err, "catalog")
		return
	}

	switch res.Kind {
	case services.MovedPermanently:
		c.Redirect(http.StatusMovedPermanently, APIPrefix+res.Location)
	case services.RedirectHint:
		utils.RedirectHintResponse(c, res.NewSlug)
	default:
		utils.SuccessResponse(c, gin.H{
			"entity_type":      entityType,
			string(entityType): res.Entity,
		})
	}
}
