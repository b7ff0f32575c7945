package buyer

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterBuyerRoutes wires the buyer register endpoints.
func RegisterBuyerRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewBuyerRepository(db)
	controller := NewBuyerController(repo)

	buyers := router.Group("/buyers")
	{
		buyers.POST("", controller.UpsertBuyer)
		buyers.GET("", controller.ListBuyers)
		buyers.DELETE("/:manager_id", controller.DeleteBuyer)
	}
}
