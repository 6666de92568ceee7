// internal/handlers/migration.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/i18n"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type MigrationHandler struct {
	migrationService *services.MigrationService
}

func NewMigrationHandler(migrationService *services.MigrationService) *MigrationHandler {
	return &MigrationHandler{
		migrationService: migrationService,
	}
}

// GET /admin/migrations/slugs
func (h *MigrationHandler) GetSlugStatus(c *gin.Context) {
	status, err := h.migrationService.Status(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err, "catalog")
		return
	}

	utils.SuccessResponse(c, status)
}

// POST /admin/migrations/slugs?type=product|category|all
func (h *MigrationHandler) RunSlugMigration(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	types, err := services.ParseMigrationTarget(c.DefaultQuery("type", "all"))
	if err != nil {
		utils.ServiceErrorResponse(c, err, "catalog")
		return
	}

	report, err := h.migrationService.Run(c.Request.Context(), types...)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "catalog")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyMigrationCompleted),
		"report":  report,
		"totals":  report.Totals(),
	})
}
