package router

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/config"
	"github.com/yeremiapane/restaurant-api/controllers"
	"github.com/yeremiapane/restaurant-api/middlewares"
)

// resourceHandlers is the handler set every REST resource exposes.
type resourceHandlers interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupRouter builds the engine. limiter may be nil, which disables rate
// limiting.
func SetupRouter(db *gorm.DB, cfg *config.Config, limiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORS.AllowedOrigins))
	if limiter != nil {
		r.Use(limiter.RateLimit())
	}

	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      API ROUTES
	// ----------------------------------------------------------------
	api := r.Group(cfg.App.BasePath)
	if cfg.Auth.JWTSecret != "" {
		api.Use(middlewares.AuthMiddleware(cfg.Auth.JWTSecret))
	}
	{
		registerResource(api, "/menus", menuCtrl)
		registerResource(api, "/tables", tableCtrl)
		registerResource(api, "/reservations", reservationCtrl)
	}

	return r
}

func registerResource(group *gin.RouterGroup, path string, h resourceHandlers) {
	g := group.Group(path)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
