package controllers

import (
	"errors"
	"net/http"

	"cafeteria-backend/middlewares"
	"cafeteria-backend/services"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedback: feedback}
}

type FeedbackInput struct {
	MenuID uint   `json:"menu_id"`
	DishID uint   `json:"dish_id"`
	Text   string `json:"text"`
}

func (f *FeedbackController) Create(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "menu_id, dish_id and text are required"})
		return
	}

	created, err := f.feedback.Create(middlewares.UserID(c), input.MenuID, input.DishID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyFeedback):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "menu or dish not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not save feedback"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}
