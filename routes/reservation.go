package routes

import (
	"errors"
	"log"
	"time"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/services"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type ReservationInput struct {
	ChambreID       uint   `json:"chambreId" validate:"required"`
	DateArrivee     string `json:"dateArrivee" validate:"required"`
	DateDepart      string `json:"dateDepart" validate:"required"`
	GuestCount      int    `json:"guestCount" validate:"min=1"`
	GuestPhone      string `json:"guestPhone"`
	SpecialRequests string `json:"specialRequests"`
}

func CreateReservation(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	userIDValue := ctx.Values().Get("userID")
	userID, ok := userIDValue.(uint)
	if !ok {
		ctx.StatusCode(iris.StatusUnauthorized)
		ctx.JSON(iris.Map{"message": "User not authenticated"})
		return
	}

	var input ReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, err := time.Parse(dateLayout, input.DateArrivee)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateArrivee must be an ISO date (YYYY-MM-DD).", ctx)
		return
	}
	checkOut, err := time.Parse(dateLayout, input.DateDepart)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateDepart must be an ISO date (YYYY-MM-DD).", ctx)
		return
	}
	if !checkOut.After(checkIn) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateDepart must be after dateArrivee.", ctx)
		return
	}
	if checkIn.Before(services.TruncateToDay(time.Now())) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateArrivee must not be in the past.", ctx)
		return
	}

	if input.GuestPhone != "" && !utils.ValidatePhoneNumber(input.GuestPhone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "guestPhone is not a valid phone number.", ctx)
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
	if !chambre.IsActive {
		utils.CreateError(iris.StatusConflict, "Conflict", "Chambre is not open for booking.", ctx)
		return
	}
	if input.GuestCount > chambre.Capacity {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "guestCount exceeds chambre capacity.", ctx)
		return
	}

	checker := services.NewAvailabilityService(services.NewGormReservationSource(storage.DB))
	available, checkErr := checker.CheckRange(input.ChambreID, checkIn, checkOut)
	if checkErr != nil {
		if errors.Is(checkErr, services.ErrValidation) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", checkErr.Error(), ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	if !available {
		utils.CreateError(iris.StatusConflict, "Conflict", "The chambre is not available for the selected dates.", ctx)
		return
	}

	guestCount := input.GuestCount
	if guestCount == 0 {
		guestCount = 1
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	reservation := models.Reservation{
		Code:            utils.GenerateShortToken(6),
		ChambreID:       input.ChambreID,
		GuestID:         userID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestCount:      guestCount,
		GuestPhone:      utils.NormalizePhoneNumber(input.GuestPhone),
		TotalPrice:      int64(nights) * chambre.PricePerNight,
		Currency:        chambre.Currency,
		Status:          models.ReservationPending,
		SpecialRequests: input.SpecialRequests,
	}

	if err := storage.DB.Create(&reservation).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var guest models.User
	if err := storage.DB.First(&guest, userID).Error; err == nil && guest.Email != "" {
		mailer := services.NewMailer()
		go mailer.SendReservationConfirmation(guest.Email, reservation, chambre)
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(reservation)
}

func GetUserReservations(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	userID := ctx.Values().Get("userID").(uint)

	var reservations []models.Reservation
	if err := storage.DB.Where("guest_id = ?", userID).
		Preload("Chambre").
		Order("check_in DESC").
		Find(&reservations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(reservations)
}

// GetReservationByCode resolves a booking reference, e.g. from a
// confirmation email.
func GetReservationByCode(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	code := ctx.Params().Get("code")
	if code == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Reservation code is required.", ctx)
		return
	}

	var reservation models.Reservation
	if err := storage.DB.Where("code = ?", code).Preload("Chambre").First(&reservation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound(ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	userID := ctx.Values().Get("userID").(uint)
	if reservation.GuestID != userID {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"message": "You don't have access to this reservation"})
		return
	}

	ctx.JSON(reservation)
}

func CancelReservation(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	id := ctx.Params().GetUintDefault("id", 0)
	if id == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid reservation ID.", ctx)
		return
	}

	userID := ctx.Values().Get("userID").(uint)

	var reservation models.Reservation
	if err := storage.DB.Where("id = ? AND guest_id = ?", id, userID).First(&reservation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateNotFound(ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	if reservation.Status == models.ReservationCancelled {
		ctx.JSON(reservation)
		return
	}

	reservation.Status = models.ReservationCancelled
	if err := storage.DB.Save(&reservation).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	log.Printf("[reservation] %s cancelled by guest %d", reservation.Code, userID)
	ctx.JSON(reservation)
}
