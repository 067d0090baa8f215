package routes

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type InvoiceInput struct {
	ReservationID *uint                `json:"reservationId"`
	Currency      string               `json:"currency"`
	Lines         []models.InvoiceLine `json:"lines" validate:"required,min=1,dive"`
	Note          string               `json:"note"`
}

// GET /api/admin/invoices?status=&reservation_id=&page=&per_page=
func AdminListInvoices(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Invoice{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if reservationID := ctx.URLParamDefault("reservation_id", ""); reservationID != "" {
		q = q.Where("reservation_id = ?", reservationID)
	}

	var total int64
	q.Count(&total)

	var items []models.Invoice
	if err := q.Preload("Reservation").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// GET /api/admin/invoices/:id
func AdminGetInvoice(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var invoice models.Invoice
	if err := storage.DB.Preload("Reservation").Preload("Reservation.Guest").First(&invoice, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "invoice not found")
		return
	}
	ctx.JSON(iris.Map{"data": invoice, "meta": iris.Map{}, "links": iris.Map{}})
}

// POST /api/admin/invoices
func AdminCreateInvoice(ctx iris.Context) {
	var input InvoiceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	for _, line := range input.Lines {
		if line.Quantity <= 0 || line.UnitAmount < 0 || strings.TrimSpace(line.Description) == "" {
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "each line needs a description, positive quantity and non-negative amount")
			return
		}
	}

	if input.ReservationID != nil {
		var reservation models.Reservation
		if err := storage.DB.First(&reservation, *input.ReservationID).Error; err != nil {
			utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
			return
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	lines, _ := json.Marshal(input.Lines)
	invoice := models.Invoice{
		Number:        "INV-" + strings.ToUpper(utils.GenerateShortToken(5)),
		ReservationID: input.ReservationID,
		Amount:        models.SumLines(input.Lines),
		Currency:      currency,
		Status:        models.InvoiceDraft,
		Lines:         datatypes.JSON(lines),
		Note:          input.Note,
	}

	if err := storage.DB.Create(&invoice).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "invoice.create", "invoice", invoice.ID, nil, invoice)
	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"data": invoice})
}

// PATCH /api/admin/invoices/:id — draft invoices only
func AdminUpdateInvoice(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var invoice models.Invoice
	if err := storage.DB.First(&invoice, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "invoice not found")
		return
	}
	if invoice.Status != models.InvoiceDraft {
		utils.JSONError(ctx, http.StatusConflict, "not_editable", "only draft invoices can be edited")
		return
	}

	var input InvoiceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before := invoice
	lines, _ := json.Marshal(input.Lines)
	invoice.Lines = datatypes.JSON(lines)
	invoice.Amount = models.SumLines(input.Lines)
	if input.Currency != "" {
		invoice.Currency = input.Currency
	}
	invoice.Note = input.Note

	if err := storage.DB.Save(&invoice).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "invoice.update", "invoice", invoice.ID, before, invoice)
	ctx.JSON(iris.Map{"data": invoice})
}

// POST /api/admin/invoices/:id/issue
func AdminIssueInvoice(ctx iris.Context) {
	transitionInvoice(ctx, models.InvoiceDraft, models.InvoiceIssued, "invoice.issue", func(i *models.Invoice) {
		now := time.Now()
		i.IssuedAt = &now
	})
}

// POST /api/admin/invoices/:id/mark-paid
func AdminMarkInvoicePaid(ctx iris.Context) {
	transitionInvoice(ctx, models.InvoiceIssued, models.InvoicePaid, "invoice.mark_paid", func(i *models.Invoice) {
		now := time.Now()
		i.PaidAt = &now
	})
}

// POST /api/admin/invoices/:id/void
func AdminVoidInvoice(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var invoice models.Invoice
	if err := storage.DB.First(&invoice, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "invoice not found")
		return
	}
	if invoice.Status == models.InvoicePaid {
		utils.JSONError(ctx, http.StatusConflict, "invalid_transition", "a paid invoice cannot be voided")
		return
	}

	before := invoice
	invoice.Status = models.InvoiceVoid
	if err := storage.DB.Save(&invoice).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "invoice.void", "invoice", invoice.ID, before, invoice)
	ctx.JSON(iris.Map{"data": invoice})
}

func transitionInvoice(ctx iris.Context, from, to, action string, mutate func(*models.Invoice)) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var invoice models.Invoice
	if err := storage.DB.First(&invoice, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "invoice not found")
		return
	}
	if invoice.Status != from {
		utils.JSONError(ctx, http.StatusConflict, "invalid_transition", "invoice is not in the "+from+" state")
		return
	}

	before := invoice
	invoice.Status = to
	mutate(&invoice)

	if err := storage.DB.Save(&invoice).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, action, "invoice", invoice.ID, before, invoice)
	ctx.JSON(iris.Map{"data": invoice})
}
