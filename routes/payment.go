package routes

import (
	"log"
	"math"
	"os"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"
	"github.com/Danieliragi/johnserviceMotel-sub002/utils"

	"github.com/kataras/iris/v12"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

type PaymentIntentInput struct {
	Amount          float64 `json:"amount" validate:"required"`
	Currency        string  `json:"currency"`
	ReservationID   uint    `json:"reservationId"`
	ReservationCode string  `json:"reservationCode"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
}

// ToMinorUnits converts a major-currency amount (49.99) to integer minor
// units (4999), rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreatePaymentIntent forwards a validated amount to Stripe and returns
// the client secret. Pure passthrough: no retries, no idempotency key.
func CreatePaymentIntent(ctx iris.Context) {
	var input PaymentIntentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Amount must be strictly positive before anything leaves the server.
	if input.Amount <= 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "amount must be strictly positive.", ctx)
		return
	}

	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		utils.CreateServiceUnavailable(ctx, "Payment provider is not configured.")
		return
	}
	stripe.Key = secretKey

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	amount := ToMinorUnits(input.Amount)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if input.ReservationCode != "" {
		params.AddMetadata("reservation_code", input.ReservationCode)
	}
	if input.CheckIn != "" {
		params.AddMetadata("check_in", input.CheckIn)
	}
	if input.CheckOut != "" {
		params.AddMetadata("check_out", input.CheckOut)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("[payment] stripe intent creation failed: %v", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	// The back office lists payments from this table.
	if storage.Available() {
		payment := models.Payment{
			StripeIntentID:  intent.ID,
			ReservationCode: input.ReservationCode,
			Amount:          amount,
			Currency:        currency,
			Status:          "created",
		}
		if input.ReservationID != 0 {
			payment.ReservationID = &input.ReservationID
		}
		if err := storage.DB.Create(&payment).Error; err != nil {
			log.Printf("[payment] failed to record payment row: %v", err)
		}
	}

	ctx.JSON(iris.Map{"clientSecret": intent.ClientSecret})
}
