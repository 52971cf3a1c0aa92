package controllers

import (
	"context"
	"net/http"

	"github.com/MarcelaRV/seguimientos_end/models"
	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Login inicio de sesión
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
		return
	}

	ctx := context.Background()

	var user models.User
	err := repository.Collection(repository.UsersCollection).
		FindOne(ctx, bson.M{"username": input.Username}).
		Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !utils.VerifyPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"username": user.Username,
		"role":     string(user.Role),
	}, "Inicio de sesión exitoso")

	utils.SuccessResponse(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"username": user.Username,
			"role":     user.Role,
		},
	}, "")
}

// ValidateToken valida el token de la petición actual
func ValidateToken(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user}, "")
}
