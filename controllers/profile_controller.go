package controllers

import (
	"net/http"

	"cafeteria-backend/middlewares"
	"cafeteria-backend/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profiles  *services.ProfileService
	purchases *services.PurchaseService
}

func NewProfileController(profiles *services.ProfileService, purchases *services.PurchaseService) *ProfileController {
	return &ProfileController{profiles: profiles, purchases: purchases}
}

func (p *ProfileController) Me(c *gin.Context) {
	profile, err := p.profiles.Profile(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (p *ProfileController) Purchases(c *gin.Context) {
	views, err := p.purchases.ForUser(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load purchases"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": views})
}
