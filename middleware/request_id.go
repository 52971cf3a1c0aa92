package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader encabezado del identificador de petición
const RequestIDHeader = "X-Request-Id"

// RequestID asigna un identificador único a cada petición; si el cliente ya
// envía uno, se respeta
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("requestId", id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
