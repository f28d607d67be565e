package controllers

import (
	"errors"
	"net/http"

	"cafeteria-backend/config"
	"cafeteria-backend/services"
	"cafeteria-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
	cfg  config.Config
}

func NewAuthController(auth *services.AuthService, cfg config.Config) *AuthController {
	return &AuthController{auth: auth, cfg: cfg}
}

type CredentialsInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (a *AuthController) Register(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "login and password are required"})
		return
	}

	id, err := a.auth.Register(input.Login, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, services.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "id": id})
}

func (a *AuthController) Login(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "login and password are required"})
		return
	}

	user, err := a.auth.Authenticate(input.Login, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "login failed"})
		return
	}

	token, err := utils.GenerateJWT(user, a.cfg.JWTSecret, a.cfg.JWTExpiresMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":              token,
		"token_type":         "Bearer",
		"expires_in_minutes": a.cfg.JWTExpiresMinutes,
	})
}
