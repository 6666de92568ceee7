// internal/handlers/helpers.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/i18n"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

// APIPrefix is the mount point of every versioned route.
const APIPrefix = "/v1"

// bindJSON decodes the request body and writes a 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}
	return true
}

// objectIDParam reads a path id and rejects anything that is not a storage key.
func objectIDParam(c *gin.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if !utils.LooksLikeObjectID(id) {
		utils.BadRequestResponse(c, "Invalid "+what+" ID", nil)
		return "", false
	}
	return id, true
}

func boolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func actorID(c *gin.Context) string {
	id, _ := utils.GetUserIDFromContext(c)
	return id
}
