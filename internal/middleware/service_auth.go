package middleware

import (
	"crypto/subtle"
	"strings"

	"sidecar-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ServiceAuth validates the X-Service-Key header for internal
// service-to-service authentication. The header value is "serviceName:key".
// When no service keys are configured the middleware is a no-op, so a bare
// sidecar deployment stays open to its pod-local callers.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.config.InternalConfig.ServiceKeys) == 0 {
			c.Next()
			return
		}

		serviceKey := c.GetHeader("X-Service-Key")
		if serviceKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(serviceKey, ":", 2)
		if len(parts) != 2 {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName := parts[0]
		keyValue := parts[1]

		configuredKey, exists := m.config.InternalConfig.ServiceKeys[serviceName]
		if !exists {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Service not found: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Do not log key values.
		if subtle.ConstantTimeCompare([]byte(keyValue), []byte(configuredKey)) != 1 {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("service_name", serviceName)
		c.Next()
	}
}
