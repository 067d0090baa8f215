package routes

import (
	"encoding/json"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChambreInput struct {
	Number        string   `json:"number" validate:"required,max=16"`
	Name          string   `json:"name" validate:"required,max=128"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity" validate:"required,min=1"`
	BedCount      int      `json:"bedCount" validate:"min=1"`
	PricePerNight int64    `json:"pricePerNight" validate:"required,min=1"`
	Currency      string   `json:"currency"`
	Photos        []string `json:"photos"`
	Amenities     []string `json:"amenities"`
}

func GetChambres(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	var chambres []models.Chambre
	if err := storage.DB.Where("is_active = ?", true).Order("number ASC").Find(&chambres).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(chambres)
}

func GetChambre(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	id := ctx.Params().GetUintDefault("id", 0)
	if id == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid chambre ID.", ctx)
		return
	}

	var chambre models.Chambre
	if err := storage.DB.Preload("Reviews", "is_visible = ?", true).First(&chambre, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound(ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.JSON(chambre)
}

func CreateChambre(ctx iris.Context) {
	var input ChambreInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	photos, _ := json.Marshal(input.Photos)
	amenities, _ := json.Marshal(input.Amenities)

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	chambre := models.Chambre{
		Number:        input.Number,
		Name:          input.Name,
		Description:   input.Description,
		Capacity:      input.Capacity,
		BedCount:      input.BedCount,
		PricePerNight: input.PricePerNight,
		Currency:      currency,
		Photos:        datatypes.JSON(photos),
		Amenities:     datatypes.JSON(amenities),
		IsActive:      true,
	}

	if err := storage.DB.Create(&chambre).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "chambre.create", "chambre", chambre.ID, nil, chambre)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(chambre)
}

func UpdateChambre(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)
	if id == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid chambre ID.", ctx)
		return
	}

	var chambre models.Chambre
	if err := storage.DB.First(&chambre, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound(ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	var input ChambreInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before := chambre

	chambre.Number = input.Number
	chambre.Name = input.Name
	chambre.Description = input.Description
	chambre.Capacity = input.Capacity
	chambre.BedCount = input.BedCount
	chambre.PricePerNight = input.PricePerNight
	if input.Currency != "" {
		chambre.Currency = input.Currency
	}
	if input.Photos != nil {
		photos, _ := json.Marshal(input.Photos)
		chambre.Photos = datatypes.JSON(photos)
	}
	if input.Amenities != nil {
		amenities, _ := json.Marshal(input.Amenities)
		chambre.Amenities = datatypes.JSON(amenities)
	}

	if err := storage.DB.Save(&chambre).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "chambre.update", "chambre", chambre.ID, before, chambre)
	ctx.JSON(chambre)
}

// DeactivateChambre hides a room from the public site without touching
// its reservation history.
func DeactivateChambre(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)
	if id == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid chambre ID.", ctx)
		return
	}

	var chambre models.Chambre
	if err := storage.DB.First(&chambre, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound(ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	before := chambre
	chambre.IsActive = false
	if err := storage.DB.Save(&chambre).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "chambre.deactivate", "chambre", chambre.ID, before, chambre)
	ctx.StatusCode(iris.StatusNoContent)
}
