package contact

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterContactRoutes wires the contact register endpoints. The parent
// group already carries the scout-identity middleware.
func RegisterContactRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewContactRepository(db)
	controller := NewContactController(repo)

	contacts := router.Group("/contacts")
	{
		contacts.POST("", controller.UpsertContact)
		contacts.GET("", controller.ListContacts)
		contacts.DELETE("/:manager_id", controller.DeleteContact)
	}
}
