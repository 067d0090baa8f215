package routes

import (
	"log"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
)

// GetServices lists the motel's public amenities. A missing store
// answers 503, any other store failure a plain 500.
func GetServices(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	var items []models.Service
	if err := storage.DB.Where("is_active = ?", true).Order("sort_order ASC, name ASC").Find(&items).Error; err != nil {
		log.Printf("[services] listing failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(items)
}
