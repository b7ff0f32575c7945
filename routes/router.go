package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pkruszek/scout-assistant/config"
	"github.com/pkruszek/scout-assistant/internal/buyer"
	"github.com/pkruszek/scout-assistant/internal/contact"
	"github.com/pkruszek/scout-assistant/internal/middleware"
	"github.com/pkruszek/scout-assistant/internal/roster"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "scout-assistant",
			"docs":    "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes. Every endpoint is scoped by the scout nick header.
	api := r.Group("/api")
	api.Use(middleware.ScoutMiddleware())

	db := config.DB
	cfg := config.GetConfig()

	contact.RegisterContactRoutes(api, db)
	buyer.RegisterBuyerRoutes(api, db)
	roster.RegisterRosterRoutes(api, db, cfg)

	return r
}
