package controllers

import (
	"net/http"
	"strings"
	"time"

	"cafeteria-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{menus: menus}
}

// ByQuery handles GET /menu?date=YYYY-MM-DD.
func (m *MenuController) ByQuery(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date parameter is required, format YYYY-MM-DD"})
		return
	}

	day, err := services.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format, use YYYY-MM-DD"})
		return
	}

	m.respond(c, day)
}

// ByPath handles GET /menu/:date. The literal segment "today" resolves to
// the current date (gin cannot route a static /menu/today next to the
// :date parameter).
func (m *MenuController) ByPath(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("date"))
	if raw == "today" {
		m.respond(c, time.Now().UTC())
		return
	}

	day, err := services.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format, use YYYY-MM-DD"})
		return
	}

	m.respond(c, day)
}

func (m *MenuController) respond(c *gin.Context, day time.Time) {
	views, err := m.menus.MenusForDate(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load menus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  services.DateOnly(day).Format("2006-01-02"),
		"menus": views,
	})
}
