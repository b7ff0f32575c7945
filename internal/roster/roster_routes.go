package roster

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pkruszek/scout-assistant/config"
	"github.com/pkruszek/scout-assistant/internal/contact"
)

// RegisterRosterRoutes wires the roster import and browser endpoints.
func RegisterRosterRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	repo := NewRosterRepository(db)
	contactRepo := contact.NewContactRepository(db)
	controller := NewRosterController(repo, contactRepo, cfg)

	rosterGroup := router.Group("/roster")
	{
		rosterGroup.POST("/import", controller.ImportRoster)
		rosterGroup.GET("", controller.GetRoster)
		rosterGroup.DELETE("", controller.ClearRoster)
		rosterGroup.GET("/owners", controller.ListOwners)
		rosterGroup.GET("/players/:player_id/prefill", controller.PrefillFromPlayer)
	}
}
