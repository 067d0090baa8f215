package routes

import (
	"net/http"
	"strings"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/emails?status=&template=&recipient=&page=&per_page=
func AdminListEmailLogs(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.EmailLog{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if template := ctx.URLParamDefault("template", ""); template != "" {
		q = q.Where("template = ?", template)
	}
	if recipient := strings.TrimSpace(ctx.URLParamDefault("recipient", "")); recipient != "" {
		q = q.Where("lower(recipient) LIKE ?", "%"+strings.ToLower(recipient)+"%")
	}

	var total int64
	q.Count(&total)

	var items []models.EmailLog
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// GET /api/admin/emails/:id
func AdminGetEmailLog(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var entry models.EmailLog
	if err := storage.DB.First(&entry, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "email log not found")
		return
	}
	ctx.JSON(iris.Map{"data": entry, "meta": iris.Map{}, "links": iris.Map{}})
}
