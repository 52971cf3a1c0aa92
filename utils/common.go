package utils

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// LoginUser usuario autenticado extraído del token
type LoginUser struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// GetUser obtiene el usuario autenticado del contexto de la petición
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("acceso no autorizado")
	}

	claims, ok := currentUser.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("formato de credenciales inválido")
	}

	user := &LoginUser{}
	if id, ok := claims["id"].(string); ok {
		user.ID = id
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}
	if username, ok := claims["username"].(string); ok {
		user.Username = username
	}

	if user.ID == "" || user.Role == "" {
		return nil, fmt.Errorf("el token no contiene los campos requeridos")
	}

	return user, nil
}
