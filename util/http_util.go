// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/mobility/logging"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

const principalKey = "principal"

// RespondWithError writes {"error": message} and, when err is an access
// denial, its reason.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if code >= 500 {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}

	body := gin.H{"error": message}
	if reason := pdp_model.ReasonFor(err); reason != "" {
		body["reason"] = reason
	}
	c.JSON(code, body)
}

func SetPrincipal(c *gin.Context, p *pdp_model.Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns nil for unauthenticated requests.
func GetPrincipal(c *gin.Context) *pdp_model.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	p, _ := value.(*pdp_model.Principal)
	return p
}
