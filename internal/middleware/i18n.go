// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// parseLanguage maps an Accept-Language header to a loaded locale.
func parseLanguage(header string) string {
	if header == "" {
		return "en"
	}

	// Handle cases like "zh-TW,zh;q=0.9,en;q=0.8"
	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW", "zh-HK":
		return "zh_TW"
	default:
		return "en"
	}
}

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}
