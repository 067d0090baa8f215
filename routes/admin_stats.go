package routes

import (
	"time"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"

	"github.com/kataras/iris/v12"
)

// GET /api/admin/stats — dashboard counters
func AdminStats(ctx iris.Context) {
	var userCount, chambreCount, reservationCount, pendingCount int64
	var invoiceCount, unpaidInvoiceCount, emailFailedCount int64
	var revenue int64

	storage.DB.Model(&models.User{}).Count(&userCount)
	storage.DB.Model(&models.Chambre{}).Where("is_active = ?", true).Count(&chambreCount)
	storage.DB.Model(&models.Reservation{}).Count(&reservationCount)
	storage.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationPending).Count(&pendingCount)
	storage.DB.Model(&models.Invoice{}).Count(&invoiceCount)
	storage.DB.Model(&models.Invoice{}).Where("status = ?", models.InvoiceIssued).Count(&unpaidInvoiceCount)
	storage.DB.Model(&models.EmailLog{}).Where("status = ?", models.EmailFailed).Count(&emailFailedCount)

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)
	storage.DB.Model(&models.Invoice{}).
		Where("status = ? AND paid_at >= ?", models.InvoicePaid, monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue)

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"users":               userCount,
			"activeChambres":      chambreCount,
			"reservations":        reservationCount,
			"pendingReservations": pendingCount,
			"invoices":            invoiceCount,
			"unpaidInvoices":      unpaidInvoiceCount,
			"failedEmails":        emailFailedCount,
			"revenueThisMonth":    revenue,
		},
	})
}
