package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"cafeteria-backend/services"

	"github.com/gin-gonic/gin"
)

type RequestController struct {
	requests *services.RequestService
}

func NewRequestController(requests *services.RequestService) *RequestController {
	return &RequestController{requests: requests}
}

type RequestInput struct {
	ProductID uint    `json:"product_id"`
	Amount    float64 `json:"amount"`
}

func (r *RequestController) List(c *gin.Context) {
	requests, err := r.requests.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (r *RequestController) Create(c *gin.Context) {
	var input RequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "product_id and amount are required"})
		return
	}

	created, err := r.requests.Create(input.ProductID, input.Amount)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *RequestController) Agree(c *gin.Context) {
	id, ok := r.requestID(c)
	if !ok {
		return
	}

	updated, err := r.requests.Agree(id)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *RequestController) Fulfill(c *gin.Context) {
	id, ok := r.requestID(c)
	if !ok {
		return
	}

	updated, err := r.requests.Fulfill(id)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *RequestController) requestID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request id"})
		return 0, false
	}
	return uint(id), true
}

func (r *RequestController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "request failed"})
	}
}
