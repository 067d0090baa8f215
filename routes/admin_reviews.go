package routes

import (
	"net/http"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/reviews?visible=&chambre_id=&page=&per_page=
func AdminListReviews(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Review{})
	if visible := ctx.URLParamDefault("visible", ""); visible != "" {
		q = q.Where("is_visible = ?", visible == "true")
	}
	if chambreID := ctx.URLParamDefault("chambre_id", ""); chambreID != "" {
		q = q.Where("chambre_id = ?", chambreID)
	}

	var total int64
	q.Count(&total)

	var items []models.Review
	if err := q.Preload("User").Preload("Chambre").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// PATCH /api/admin/reviews/:id/visibility { visible }
func AdminUpdateReviewVisibility(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		Visible *bool `json:"visible"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.Visible == nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "visible required")
		return
	}

	var review models.Review
	if err := storage.DB.First(&review, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "review not found")
		return
	}

	before := review
	review.IsVisible = *body.Visible
	if err := storage.DB.Save(&review).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "review.visibility_update", "review", review.ID, before, review)
	ctx.JSON(iris.Map{"data": review})
}

// DELETE /api/admin/reviews/:id
func AdminDeleteReview(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var review models.Review
	if err := storage.DB.First(&review, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "review not found")
		return
	}

	if err := storage.DB.Delete(&review).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "review.delete", "review", review.ID, review, nil)
	ctx.StatusCode(http.StatusNoContent)
}
