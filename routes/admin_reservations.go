package routes

import (
	"net/http"
	"time"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

var allowedReservationStatuses = []string{
	models.ReservationPending,
	models.ReservationConfirmed,
	models.ReservationCancelled,
	models.ReservationCompleted,
}

// GET /api/admin/reservations
func AdminListReservations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := ctx.URLParamDefault("status", "")
	chambreID := ctx.URLParamDefault("chambre_id", "")
	guestID := ctx.URLParamDefault("guest_id", "")
	dateFrom := ctx.URLParamDefault("date_from", "")
	dateTo := ctx.URLParamDefault("date_to", "")

	q := storage.DB.Model(&models.Reservation{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if chambreID != "" {
		q = q.Where("chambre_id = ?", chambreID)
	}
	if guestID != "" {
		q = q.Where("guest_id = ?", guestID)
	}
	if dateFrom != "" {
		if t, err := time.Parse(dateLayout, dateFrom); err == nil {
			q = q.Where("check_in >= ?", t)
		}
	}
	if dateTo != "" {
		if t, err := time.Parse(dateLayout, dateTo); err == nil {
			q = q.Where("check_out <= ?", t)
		}
	}

	var total int64
	q.Count(&total)

	var items []models.Reservation
	if err := q.Preload("Chambre").Preload("Guest").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// GET /api/admin/reservations/:id
func AdminGetReservation(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var res models.Reservation
	if err := storage.DB.Preload("Chambre").Preload("Guest").First(&res, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
		return
	}
	ctx.JSON(iris.Map{"data": res, "meta": iris.Map{}, "links": iris.Map{}})
}

// POST /api/admin/reservations/:id/cancel { reason }
func AdminCancelReservation(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.Reason == "" {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "reason required")
		return
	}
	var res models.Reservation
	if err := storage.DB.First(&res, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
		return
	}
	before := res
	res.Status = models.ReservationCancelled
	res.Note = body.Reason
	if err := storage.DB.Save(&res).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.Audit(ctx, "reservation.cancel", "reservation", res.ID, before, res)
	ctx.JSON(iris.Map{"data": res})
}

// PATCH /api/admin/reservations/:id/status { status }
func AdminUpdateReservationStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ReadJSON(&body); err != nil || !slices.Contains(allowedReservationStatuses, body.Status) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "valid status required")
		return
	}
	var res models.Reservation
	if err := storage.DB.First(&res, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
		return
	}
	before := res
	res.Status = body.Status
	if err := storage.DB.Save(&res).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.Audit(ctx, "reservation.status_update", "reservation", res.ID, before, res)
	ctx.JSON(iris.Map{"data": res})
}
