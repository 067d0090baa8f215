package routes

import (
	"net/http"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/payments?status=&reservation_code=&page=&per_page=
func AdminListPayments(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Payment{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if code := ctx.URLParamDefault("reservation_code", ""); code != "" {
		q = q.Where("reservation_code = ?", code)
	}

	var total int64
	q.Count(&total)

	var items []models.Payment
	if err := q.Preload("Reservation").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// GET /api/admin/payments/:id
func AdminGetPayment(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var payment models.Payment
	if err := storage.DB.Preload("Reservation").Preload("Invoice").First(&payment, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "payment not found")
		return
	}
	ctx.JSON(iris.Map{"data": payment, "meta": iris.Map{}, "links": iris.Map{}})
}
