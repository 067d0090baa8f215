package routes

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/Danieliragi/johnserviceMotel-sub002/services"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
)

const dateLayout = "2006-01-02"

// GetChambreAvailability answers the booking calendar.
//
// GET /api/availability?chambreId=3                       -> booked dates
// GET /api/availability?chambreId=3&dateArrivee=...&dateDepart=... -> boolean
func GetChambreAvailability(ctx iris.Context) {
	if !storage.Available() {
		utils.CreateServiceUnavailable(ctx, "Reservation store is not configured.")
		return
	}

	chambreIDStr := ctx.URLParam("chambreId")
	if chambreIDStr == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "chambreId is required.", ctx)
		return
	}
	chambreID, err := strconv.ParseUint(chambreIDStr, 10, 32)
	if err != nil || chambreID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "chambreId must be a positive integer.", ctx)
		return
	}

	arriveeStr := ctx.URLParam("dateArrivee")
	departStr := ctx.URLParam("dateDepart")

	checker := services.NewAvailabilityService(services.NewGormReservationSource(storage.DB))

	// Dates absent: list the already-booked dates for the picker.
	if arriveeStr == "" && departStr == "" {
		dates, datesErr := checker.UnavailableDates(uint(chambreID))
		if datesErr != nil {
			log.Printf("[availability] unavailable dates for chambre %d: %v", chambreID, datesErr)
			utils.CreateInternalServerError(ctx)
			return
		}

		formatted := make([]string, 0, len(dates))
		for _, d := range dates {
			formatted = append(formatted, d.Format(dateLayout))
		}
		ctx.JSON(iris.Map{"chambreId": chambreID, "unavailableDates": formatted})
		return
	}

	// One date without the other is not a checkable range.
	if arriveeStr == "" || departStr == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateArrivee and dateDepart must both be provided.", ctx)
		return
	}

	arrivee, arriveeErr := time.Parse(dateLayout, arriveeStr)
	if arriveeErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateArrivee must be an ISO date (YYYY-MM-DD).", ctx)
		return
	}
	depart, departErr := time.Parse(dateLayout, departStr)
	if departErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dateDepart must be an ISO date (YYYY-MM-DD).", ctx)
		return
	}

	available, checkErr := checker.CheckRange(uint(chambreID), arrivee, depart)
	if checkErr != nil {
		if errors.Is(checkErr, services.ErrValidation) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", checkErr.Error(), ctx)
			return
		}
		log.Printf("[availability] range check for chambre %d: %v", chambreID, checkErr)
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"chambreId":   chambreID,
		"dateArrivee": arriveeStr,
		"dateDepart":  departStr,
		"available":   available,
	})
}
