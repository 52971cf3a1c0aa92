package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError error de API con código de estado
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error implementa la interfaz error
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError crea un error de API
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError crea un error de recurso no encontrado
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" no existe", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateUnauthorizedError crea un error de acceso no autorizado
func CreateUnauthorizedError() *ApiError {
	return NewApiError("Acceso no autorizado", http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateForbiddenError crea un error de permisos insuficientes
func CreateForbiddenError() *ApiError {
	return NewApiError("Permisos insuficientes", http.StatusForbidden, "FORBIDDEN")
}

// CreateBadRequestError crea un error de petición inválida
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// CreateValidationError crea un error de validación de formulario
func CreateValidationError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "VALIDATION_ERROR")
}

// HandleError procesa un error y responde con el formato adecuado
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	errorMessage := err.Error()

	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, errorMessage)

	if apiErr, ok := err.(*ApiError); ok {
		response := gin.H{"success": false, "error": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.JSON(apiErr.StatusCode, response)
		return
	}

	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.StatusCode, gin.H{
			"success": false,
			"error":   appErr.Error(),
		})
		return
	}

	// Errores no previstos (base de datos, conectividad) se devuelven con el
	// mensaje subyacente, sin limpieza de estado parcial
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   errorMessage,
	})
}

// SuccessResponse respuesta exitosa
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse respuesta de error
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// AppError error de aplicación con causa subyacente
type AppError struct {
	Message    string
	StatusCode int
	Err        error
}

// Error implementa la interfaz error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap devuelve el error subyacente
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un error de aplicación
func NewAppError(message string, statusCode int, err error) *AppError {
	return &AppError{
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}
