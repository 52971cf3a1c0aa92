package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
)

// bodyLogWriter captura el cuerpo de la respuesta para registrarlo
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write implementa la interfaz ResponseWriter
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Logger middleware de registro de peticiones y respuestas
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		headers := make(map[string]string)
		for k, v := range c.Request.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			// Restaurar el cuerpo para el resto de la cadena
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		blw := &bodyLogWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = blw

		utils.LogApiRequest(
			method,
			path,
			c.Request.URL.Query(),
			string(requestBody),
			headers,
		)

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		// Las descargas de archivos no se registran con su cuerpo binario
		responseBody := blw.body.String()
		if strings.HasPrefix(path, "/api/export/") {
			responseBody = "[archivo]"
		}

		utils.LogApiResponse(
			method,
			path,
			statusCode,
			duration,
			responseBody,
		)
	}
}

// Recovery middleware de recuperación ante pánicos
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Pánico en el servidor")

		c.AbortWithStatusJSON(500, gin.H{
			"success": false,
			"error":   "Error interno del servidor",
		})
	})
}
