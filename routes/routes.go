package routes

import (
	"net/http"

	"cafeteria-backend/config"
	"cafeteria-backend/controllers"
	"cafeteria-backend/middlewares"
	"cafeteria-backend/models"
	"cafeteria-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	menuSvc := services.NewMenuService(db)

	auth := controllers.NewAuthController(services.NewAuthService(db), cfg)
	menu := controllers.NewMenuController(menuSvc)
	profile := controllers.NewProfileController(
		services.NewProfileService(db),
		services.NewPurchaseService(db, menuSvc),
	)
	feedback := controllers.NewFeedbackController(services.NewFeedbackService(db))
	requests := controllers.NewRequestController(services.NewRequestService(db))

	r := gin.Default()

	// Static pages plus a catch-all for stylesheets, scripts and images.
	r.StaticFile("/", "./public/login.html")
	r.GET("/login", func(c *gin.Context) { c.File("./public/login.html") })
	r.GET("/register", func(c *gin.Context) { c.File("./public/register.html") })
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir("public"))))

	// Public auth routes
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	// Public menu routes
	menus := r.Group("/menu")
	{
		menus.GET("", menu.ByQuery)
		menus.GET("/:date", menu.ByPath) // also serves /menu/today
	}

	authed := middlewares.AuthRequired(cfg.JWTSecret)

	me := r.Group("/me", authed)
	{
		me.GET("", profile.Me)
		me.GET("/purchases", profile.Purchases)
	}

	r.POST("/feedback", authed, feedback.Create)

	staff := r.Group("/requests", authed, middlewares.RequireRoles(models.RoleCook, models.RoleAdmin))
	{
		staff.GET("", requests.List)
		staff.POST("", requests.Create)
		staff.PATCH("/:id/agree", middlewares.RequireRoles(models.RoleAdmin), requests.Agree)
		staff.PATCH("/:id/fulfill", middlewares.RequireRoles(models.RoleAdmin), requests.Fulfill)
	}

	return r
}
