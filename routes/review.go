package routes

import (
	"log"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type ReviewInput struct {
	ChambreID     uint   `json:"chambreId" validate:"required"`
	ReservationID *uint  `json:"reservationId"`
	Title         string `json:"title" validate:"max=256"`
	Body          string `json:"body" validate:"required"`
	Stars         int    `json:"stars" validate:"required,min=1,max=5"`
}

// GetReviews lists visible reviews, optionally filtered by chambre.
func GetReviews(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	q := storage.DB.Where("is_visible = ?", true).Preload("User")
	if chambreID := ctx.URLParamIntDefault("chambreId", 0); chambreID > 0 {
		q = q.Where("chambre_id = ?", chambreID)
	}

	var reviews []models.Review
	if err := q.Order("created_at DESC").Find(&reviews).Error; err != nil {
		log.Printf("[reviews] listing failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(reviews)
}

func CreateReview(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	userID := ctx.Values().Get("userID").(uint)

	var input ReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var chambre models.Chambre
	if err := storage.DB.First(&chambre, input.ChambreID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Chambre not found.", ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	review := models.Review{
		UserID:    userID,
		ChambreID: input.ChambreID,
		Title:     input.Title,
		Body:      input.Body,
		Stars:     input.Stars,
		IsVisible: true,
	}

	// A review tied to the guest's own completed stay is a verified stay.
	if input.ReservationID != nil {
		var reservation models.Reservation
		err := storage.DB.Where("id = ? AND guest_id = ? AND chambre_id = ?",
			*input.ReservationID, userID, input.ChambreID).First(&reservation).Error
		if err == nil {
			review.ReservationID = input.ReservationID
			review.IsVerified = reservation.Status == models.ReservationCompleted
		}
	}

	if err := storage.DB.Create(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}
